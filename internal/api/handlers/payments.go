package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/rental-project/rental-server/internal/logger"
	"github.com/rental-project/rental-server/internal/services"
)

type PaymentHandler struct {
	checkout services.CheckoutService
	log      logger.Logger
}

func NewPaymentHandler(checkout services.CheckoutService, log logger.Logger) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, log: log}
}

type reservedCar struct {
	ID     string   `json:"_id"`
	Brand  string   `json:"brand"`
	Model  string   `json:"model"`
	Images []string `json:"images"`
}

// roundedTotalRentalPrice arrives as a number or a numeric string
// depending on the client code path, so it is accepted loosely and cast.
type checkoutSessionRequest struct {
	ReservedCar             *reservedCar `json:"reservedCar"`
	StartDate               string       `json:"startDate"`
	EndDate                 string       `json:"endDate"`
	RoundedTotalRentalPrice interface{}  `json:"roundedTotalRentalPrice"`
}

// CreateCheckoutSession asks the payment provider for a hosted checkout
// page for one rental and returns its URL. The unit amount is the ceiling
// of price*100 (PLN to grosze).
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req checkoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReservedCar == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data of reserved car."})
		return
	}

	price, err := cast.ToFloat64E(req.RoundedTotalRentalPrice)
	if err != nil || req.RoundedTotalRentalPrice == nil ||
		math.IsNaN(price) || math.IsInf(price, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roundedTotalRentalPrice."})
		return
	}

	url, err := h.checkout.CreateSession(c.Request.Context(), services.CheckoutItem{
		CarID:     req.ReservedCar.ID,
		Brand:     req.ReservedCar.Brand,
		Model:     req.ReservedCar.Model,
		Images:    req.ReservedCar.Images,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     price,
	})
	if err != nil {
		h.log.Error("failed to create checkout session", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
