package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rental-project/rental-server/internal/logger"
	"github.com/rental-project/rental-server/internal/models"
)

// ReservationStore is the subset of the reservation queries the handler needs
type ReservationStore interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	CreateReservation(ctx context.Context, r *models.Reservation) error
	UpdateReservation(ctx context.Context, r *models.Reservation) error
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type ReservationHandler struct {
	reservations ReservationStore
	log          logger.Logger
}

func NewReservationHandler(reservations ReservationStore, log logger.Logger) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, log: log}
}

// ListReservations returns all reservations verbatim, no joins. The empty
// result is answered with 400 like every other listing.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservations.ListReservations(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list reservations", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(reservations) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No reservations found"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

type createReservationRequest struct {
	CarID                 uuid.UUID `json:"car" binding:"required"`
	StartDate             time.Time `json:"startDate" binding:"required"`
	EndDate               time.Time `json:"endDate" binding:"required"`
	ProtectionPackage     string    `json:"protectionPackage" binding:"required"`
	SelectedOptions       []string  `json:"selectedOptions" binding:"required"`
	SelectedPaymentOption string    `json:"selectedPaymentOption" binding:"required"`
	FirstName             string    `json:"firstName" binding:"required"`
	LastName              string    `json:"lastName" binding:"required"`
	Country               string    `json:"country" binding:"required"`
	City                  string    `json:"city" binding:"required"`
	Street                string    `json:"street" binding:"required"`
	HouseNumber           string    `json:"houseNumber" binding:"required"`
	PostalCode            string    `json:"postalCode" binding:"required"`
	DriverLicenseNumber   string    `json:"driverLicenseNumber" binding:"required"`
	Email                 string    `json:"email" binding:"required"`
	PhoneNumber           string    `json:"phoneNumber" binding:"required"`
	PromoCode             string    `json:"promoCode" binding:"required"`
	ReservationStatus     string    `json:"reservationStatus" binding:"required"`
	TotalRentalPrice      float64   `json:"totalRentalPrice" binding:"required"`
}

// CreateReservation stores a new booking. The referenced car id is taken
// as-is, without an existence check.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wszystkie pola są wymagane!"})
		return
	}

	reservation := &models.Reservation{
		ID:                    uuid.New(),
		CarID:                 req.CarID,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		ProtectionPackage:     req.ProtectionPackage,
		SelectedOptions:       req.SelectedOptions,
		SelectedPaymentOption: req.SelectedPaymentOption,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Country:               req.Country,
		City:                  req.City,
		Street:                req.Street,
		HouseNumber:           req.HouseNumber,
		PostalCode:            req.PostalCode,
		DriverLicenseNumber:   req.DriverLicenseNumber,
		Email:                 req.Email,
		PhoneNumber:           req.PhoneNumber,
		PromoCode:             req.PromoCode,
		ReservationStatus:     req.ReservationStatus,
		TotalRentalPrice:      req.TotalRentalPrice,
	}
	if err := h.reservations.CreateReservation(c.Request.Context(), reservation); err != nil {
		h.log.Error("failed to create reservation", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pomyślnie dodano nową rezerwację!"})
}

type updateReservationRequest struct {
	ID                    uuid.UUID `json:"id" binding:"required"`
	CarID                 uuid.UUID `json:"car" binding:"required"`
	StartDate             time.Time `json:"startDate" binding:"required"`
	EndDate               time.Time `json:"endDate" binding:"required"`
	ProtectionPackage     string    `json:"protectionPackage" binding:"required"`
	SelectedOptions       []string  `json:"selectedOptions" binding:"required,min=1"`
	SelectedPaymentOption string    `json:"selectedPaymentOption" binding:"required"`
	FirstName             string    `json:"firstName" binding:"required"`
	LastName              string    `json:"lastName" binding:"required"`
	Country               string    `json:"country" binding:"required"`
	City                  string    `json:"city" binding:"required"`
	Street                string    `json:"street" binding:"required"`
	HouseNumber           string    `json:"houseNumber" binding:"required"`
	PostalCode            string    `json:"postalCode" binding:"required"`
	DriverLicenseNumber   string    `json:"driverLicenseNumber" binding:"required"`
	Email                 string    `json:"email" binding:"required"`
	PhoneNumber           string    `json:"phoneNumber" binding:"required"`
	PromoCode             string    `json:"promoCode"`
	ReservationStatus     string    `json:"reservationStatus" binding:"required"`
	TotalRentalPrice      float64   `json:"totalRentalPrice" binding:"required"`
}

// UpdateReservation overwrites every field of an existing booking. Unlike
// creation, selectedOptions must be non-empty here and the promo code is
// optional. Inherited quirks.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	ctx := c.Request.Context()

	reservation, err := h.reservations.GetReservationByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Reservation not found"})
			return
		}
		h.log.Error("failed to load reservation", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	reservation.CarID = req.CarID
	reservation.StartDate = req.StartDate
	reservation.EndDate = req.EndDate
	reservation.ProtectionPackage = req.ProtectionPackage
	reservation.SelectedOptions = req.SelectedOptions
	reservation.SelectedPaymentOption = req.SelectedPaymentOption
	reservation.FirstName = req.FirstName
	reservation.LastName = req.LastName
	reservation.Country = req.Country
	reservation.City = req.City
	reservation.Street = req.Street
	reservation.HouseNumber = req.HouseNumber
	reservation.PostalCode = req.PostalCode
	reservation.DriverLicenseNumber = req.DriverLicenseNumber
	reservation.Email = req.Email
	reservation.PhoneNumber = req.PhoneNumber
	reservation.PromoCode = req.PromoCode
	reservation.ReservationStatus = req.ReservationStatus
	reservation.TotalRentalPrice = req.TotalRentalPrice

	if err := h.reservations.UpdateReservation(ctx, reservation); err != nil {
		h.log.Error("failed to update reservation", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf(
		"Rezerwacja z ID: '%s' została zaktualizowana.", reservation.ID,
	))
}

type deleteReservationRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// DeleteReservation removes a booking by id. The error messages reuse the
// car wording, faithfully to the previous backend.
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	var req deleteReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wymagane ID pojazdu."})
		return
	}

	ctx := c.Request.Context()

	reservation, err := h.reservations.GetReservationByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nie znaleziono pojazdu."})
			return
		}
		h.log.Error("failed to load reservation", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.reservations.DeleteReservation(ctx, req.ID); err != nil {
		h.log.Error("failed to delete reservation", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf(
		"Rezerwacja z ID %s został usunięty.", reservation.ID,
	))
}
