package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rental-project/rental-server/internal/models"
)

type CarQueries struct {
	db *sqlx.DB
}

func NewCarQueries(db *sqlx.DB) *CarQueries {
	return &CarQueries{db: db}
}

// ListCars returns all cars ordered by ticket number
func (q *CarQueries) ListCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	query := `SELECT * FROM cars ORDER BY ticket`
	err := q.db.SelectContext(ctx, &cars, query)
	return cars, err
}

// GetCarByID retrieves a car by ID
func (q *CarQueries) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	query := `SELECT * FROM cars WHERE id = $1`
	if err := q.db.GetContext(ctx, &car, query, id); err != nil {
		return nil, err
	}
	return &car, nil
}

// CreateCar inserts a new car and assigns the next ticket number.
// The counter row is incremented in the same transaction as the insert,
// so tickets stay strictly increasing and a failed insert does not burn
// a number.
func (q *CarQueries) CreateCar(ctx context.Context, car *models.Car) error {
	tx, err := q.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var ticket int64
	ticketQuery := `UPDATE counters SET value = value + 1 WHERE name = 'car_ticket' RETURNING value`
	if err := tx.GetContext(ctx, &ticket, ticketQuery); err != nil {
		return fmt.Errorf("failed to advance car ticket counter: %w", err)
	}
	car.Ticket = ticket

	query := `
		INSERT INTO cars (
			id, user_id, brand, model, type, production_year,
			vehicle_mileage, fuel_type, gearbox_type, num_of_passengers,
			price, hp, description, images, car_category, ticket
		) VALUES (
			:id, :user_id, :brand, :model, :type, :production_year,
			:vehicle_mileage, :fuel_type, :gearbox_type, :num_of_passengers,
			:price, :hp, :description, :images, :car_category, :ticket
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, car); err != nil {
		return fmt.Errorf("failed to insert car: %w", err)
	}
	return tx.Commit()
}

// UpdateCar overwrites every column of an existing car
func (q *CarQueries) UpdateCar(ctx context.Context, car *models.Car) error {
	query := `
		UPDATE cars SET
			user_id = :user_id, brand = :brand, model = :model, type = :type,
			production_year = :production_year, vehicle_mileage = :vehicle_mileage,
			fuel_type = :fuel_type, gearbox_type = :gearbox_type,
			num_of_passengers = :num_of_passengers, price = :price, hp = :hp,
			description = :description, images = :images,
			completed = :completed, car_category = :car_category,
			updated_at = now()
		WHERE id = :id
	`
	_, err := q.db.NamedExecContext(ctx, query, car)
	return err
}

// DeleteCar removes a car by ID
func (q *CarQueries) DeleteCar(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cars WHERE id = $1`
	_, err := q.db.ExecContext(ctx, query, id)
	return err
}
