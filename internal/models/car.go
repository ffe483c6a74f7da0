package models

import (
	"time"

	"github.com/google/uuid"
)

// Car represents a rentable vehicle owned by a user
type Car struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          uuid.UUID   `json:"user" db:"user_id"`
	Brand           string      `json:"brand" db:"brand"`
	Model           string      `json:"model" db:"model"`
	Type            string      `json:"type" db:"type"`
	ProductionYear  int         `json:"productionYear" db:"production_year"`
	VehicleMileage  string      `json:"vehicleMileage" db:"vehicle_mileage"`
	FuelType        string      `json:"fuelType" db:"fuel_type"`
	GearboxType     string      `json:"gearboxType" db:"gearbox_type"`
	NumOfPassengers int         `json:"numOfPassengers" db:"num_of_passengers"`
	Price           float64     `json:"price" db:"price"`
	HP              int         `json:"hp" db:"hp"`
	Description     string      `json:"description" db:"description"`
	Images          StringArray `json:"images" db:"images"`
	Completed       bool        `json:"completed" db:"completed"`
	CarCategory     StringArray `json:"carCategory" db:"car_category"`
	Ticket          int64       `json:"ticket" db:"ticket"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}

// CarWithUsername is a car listing row with the owner's username attached
type CarWithUsername struct {
	Car
	Username string `json:"username"`
}
