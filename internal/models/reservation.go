package models

import (
	"time"

	"github.com/google/uuid"
)

// Reservation represents a rental booking for a car.
// CarID is a plain reference without a foreign key: a car may be deleted
// while reservations still point at it (behavior inherited from the
// previous backend and kept for compatibility).
type Reservation struct {
	ID                    uuid.UUID   `json:"id" db:"id"`
	CarID                 uuid.UUID   `json:"car" db:"car_id"`
	StartDate             time.Time   `json:"startDate" db:"start_date"`
	EndDate               time.Time   `json:"endDate" db:"end_date"`
	ProtectionPackage     string      `json:"protectionPackage" db:"protection_package"`
	SelectedOptions       StringArray `json:"selectedOptions" db:"selected_options"`
	SelectedPaymentOption string      `json:"selectedPaymentOption" db:"selected_payment_option"`
	FirstName             string      `json:"firstName" db:"first_name"`
	LastName              string      `json:"lastName" db:"last_name"`
	Country               string      `json:"country" db:"country"`
	City                  string      `json:"city" db:"city"`
	Street                string      `json:"street" db:"street"`
	HouseNumber           string      `json:"houseNumber" db:"house_number"`
	PostalCode            string      `json:"postalCode" db:"postal_code"`
	DriverLicenseNumber   string      `json:"driverLicenseNumber" db:"driver_license_number"`
	Email                 string      `json:"email" db:"email"`
	PhoneNumber           string      `json:"phoneNumber" db:"phone_number"`
	PromoCode             string      `json:"promoCode" db:"promo_code"`
	ReservationStatus     string      `json:"reservationStatus" db:"reservation_status"`
	TotalRentalPrice      float64     `json:"totalRentalPrice" db:"total_rental_price"`
	CreatedAt             time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time   `json:"updatedAt" db:"updated_at"`
}
