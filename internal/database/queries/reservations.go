package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rental-project/rental-server/internal/models"
)

type ReservationQueries struct {
	db *sqlx.DB
}

func NewReservationQueries(db *sqlx.DB) *ReservationQueries {
	return &ReservationQueries{db: db}
}

// ListReservations returns all reservations
func (q *ReservationQueries) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	query := `SELECT * FROM reservations ORDER BY created_at`
	err := q.db.SelectContext(ctx, &reservations, query)
	return reservations, err
}

// GetReservationByID retrieves a reservation by ID
func (q *ReservationQueries) GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	query := `SELECT * FROM reservations WHERE id = $1`
	if err := q.db.GetContext(ctx, &reservation, query, id); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CreateReservation inserts a new reservation. The referenced car is not
// checked for existence; dangling references are tolerated here just as
// they were by the previous backend.
func (q *ReservationQueries) CreateReservation(ctx context.Context, r *models.Reservation) error {
	query := `
		INSERT INTO reservations (
			id, car_id, start_date, end_date, protection_package,
			selected_options, selected_payment_option, first_name, last_name,
			country, city, street, house_number, postal_code,
			driver_license_number, email, phone_number, promo_code,
			reservation_status, total_rental_price
		) VALUES (
			:id, :car_id, :start_date, :end_date, :protection_package,
			:selected_options, :selected_payment_option, :first_name, :last_name,
			:country, :city, :street, :house_number, :postal_code,
			:driver_license_number, :email, :phone_number, :promo_code,
			:reservation_status, :total_rental_price
		)
	`
	_, err := q.db.NamedExecContext(ctx, query, r)
	return err
}

// UpdateReservation overwrites every column of an existing reservation
func (q *ReservationQueries) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	query := `
		UPDATE reservations SET
			car_id = :car_id, start_date = :start_date, end_date = :end_date,
			protection_package = :protection_package,
			selected_options = :selected_options,
			selected_payment_option = :selected_payment_option,
			first_name = :first_name, last_name = :last_name,
			country = :country, city = :city, street = :street,
			house_number = :house_number, postal_code = :postal_code,
			driver_license_number = :driver_license_number,
			email = :email, phone_number = :phone_number,
			promo_code = :promo_code, reservation_status = :reservation_status,
			total_rental_price = :total_rental_price,
			updated_at = now()
		WHERE id = :id
	`
	_, err := q.db.NamedExecContext(ctx, query, r)
	return err
}

// DeleteReservation removes a reservation by ID
func (q *ReservationQueries) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`
	_, err := q.db.ExecContext(ctx, query, id)
	return err
}
