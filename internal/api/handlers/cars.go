package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rental-project/rental-server/internal/logger"
	"github.com/rental-project/rental-server/internal/models"
)

// CarStore is the subset of the car queries the handler needs
type CarStore interface {
	ListCars(ctx context.Context) ([]models.Car, error)
	GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	CreateCar(ctx context.Context, car *models.Car) error
	UpdateCar(ctx context.Context, car *models.Car) error
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

// UsernameStore resolves owner usernames for the car listing
type UsernameStore interface {
	GetUsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type CarHandler struct {
	cars      CarStore
	usernames UsernameStore
	log       logger.Logger
}

func NewCarHandler(cars CarStore, usernames UsernameStore, log logger.Logger) *CarHandler {
	return &CarHandler{cars: cars, usernames: usernames, log: log}
}

// ListCars returns all cars with the owner's username attached. The
// usernames are resolved with one batched lookup over the distinct owner
// ids instead of one query per car. An empty catalog is answered with 400,
// matching the list convention the SPA client expects.
func (h *CarHandler) ListCars(c *gin.Context) {
	ctx := c.Request.Context()

	cars, err := h.cars.ListCars(ctx)
	if err != nil {
		h.log.Error("failed to list cars", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(cars) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nie znaleziono pojazdów."})
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(cars))
	ownerIDs := make([]uuid.UUID, 0, len(cars))
	for _, car := range cars {
		if _, ok := seen[car.UserID]; !ok {
			seen[car.UserID] = struct{}{}
			ownerIDs = append(ownerIDs, car.UserID)
		}
	}

	usernames, err := h.usernames.GetUsernamesByIDs(ctx, ownerIDs)
	if err != nil {
		h.log.Error("failed to resolve owner usernames", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	carsWithUser := make([]models.CarWithUsername, len(cars))
	for i, car := range cars {
		carsWithUser[i] = models.CarWithUsername{
			Car:      car,
			Username: usernames[car.UserID],
		}
	}

	c.JSON(http.StatusOK, carsWithUser)
}

type createCarRequest struct {
	UserID          uuid.UUID `json:"user" binding:"required"`
	Brand           string    `json:"brand" binding:"required"`
	Model           string    `json:"model" binding:"required"`
	Type            string    `json:"type" binding:"required"`
	ProductionYear  int       `json:"productionYear" binding:"required"`
	VehicleMileage  string    `json:"vehicleMileage" binding:"required"`
	FuelType        string    `json:"fuelType" binding:"required"`
	GearboxType     string    `json:"gearboxType" binding:"required"`
	NumOfPassengers int       `json:"numOfPassengers" binding:"required"`
	Price           float64   `json:"price" binding:"required"`
	HP              int       `json:"hp" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	Images          []string  `json:"images" binding:"required,min=1"`
	CarCategory     []string  `json:"carCategory" binding:"required,min=1"`
}

// CreateCar adds a car to the catalog and assigns the next ticket number.
// Duplicate brands are allowed on purpose.
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req createCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wszystkie pola są wymagane!"})
		return
	}

	car := &models.Car{
		ID:              uuid.New(),
		UserID:          req.UserID,
		Brand:           req.Brand,
		Model:           req.Model,
		Type:            req.Type,
		ProductionYear:  req.ProductionYear,
		VehicleMileage:  req.VehicleMileage,
		FuelType:        req.FuelType,
		GearboxType:     req.GearboxType,
		NumOfPassengers: req.NumOfPassengers,
		Price:           req.Price,
		HP:              req.HP,
		Description:     req.Description,
		Images:          req.Images,
		CarCategory:     req.CarCategory,
	}
	if err := h.cars.CreateCar(c.Request.Context(), car); err != nil {
		h.log.Error("failed to create car", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pomyślnie dodano nowy pojazd!"})
}

type updateCarRequest struct {
	ID              uuid.UUID `json:"id" binding:"required"`
	UserID          uuid.UUID `json:"user" binding:"required"`
	Brand           string    `json:"brand" binding:"required"`
	Model           string    `json:"model" binding:"required"`
	Type            string    `json:"type" binding:"required"`
	ProductionYear  int       `json:"productionYear" binding:"required"`
	VehicleMileage  string    `json:"vehicleMileage" binding:"required"`
	FuelType        string    `json:"fuelType" binding:"required"`
	GearboxType     string    `json:"gearboxType" binding:"required"`
	NumOfPassengers int       `json:"numOfPassengers" binding:"required"`
	Price           float64   `json:"price" binding:"required"`
	HP              int       `json:"hp" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	Images          []string  `json:"images" binding:"required,min=1"`
	Completed       *bool     `json:"completed" binding:"required"`
	CarCategory     []string  `json:"carCategory" binding:"required,min=1"`
}

// UpdateCar overwrites every field of an existing car; partial updates are
// not supported.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	var req updateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wszystkie pola są wymagane!"})
		return
	}

	ctx := c.Request.Context()

	car, err := h.cars.GetCarByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nie znaleziono pojazdu."})
			return
		}
		h.log.Error("failed to load car", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	car.UserID = req.UserID
	car.Brand = req.Brand
	car.Model = req.Model
	car.Type = req.Type
	car.ProductionYear = req.ProductionYear
	car.VehicleMileage = req.VehicleMileage
	car.FuelType = req.FuelType
	car.GearboxType = req.GearboxType
	car.NumOfPassengers = req.NumOfPassengers
	car.Price = req.Price
	car.HP = req.HP
	car.Description = req.Description
	car.Images = req.Images
	car.Completed = *req.Completed
	car.CarCategory = req.CarCategory

	if err := h.cars.UpdateCar(ctx, car); err != nil {
		h.log.Error("failed to update car", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf("'%s' został zaktualizowany.", car.Brand))
}

type deleteCarRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// DeleteCar removes a car unconditionally. Reservations referencing it are
// left untouched; see the reservations queries for the rationale.
func (h *CarHandler) DeleteCar(c *gin.Context) {
	var req deleteCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wymagane ID pojazdu."})
		return
	}

	ctx := c.Request.Context()

	car, err := h.cars.GetCarByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nie znaleziono pojazdu."})
			return
		}
		h.log.Error("failed to load car", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.cars.DeleteCar(ctx, req.ID); err != nil {
		h.log.Error("failed to delete car", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf(
		"Pojazd '%s' z ID %s został usunięty.", car.Brand, car.ID,
	))
}
