package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rental-project/rental-server/internal/api/handlers"
	"github.com/rental-project/rental-server/internal/logger"
	"github.com/rental-project/rental-server/internal/services"
)

func newPaymentRouter(checkout services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewPaymentHandler(checkout, logger.Nop())
	r.POST("/payment/create-checkout-session", h.CreateCheckoutSession)
	return r
}

func validCheckoutBody(price any) map[string]any {
	return map[string]any{
		"reservedCar": map[string]any{
			"_id":    "66f0c2ab1f4e2a0012345678",
			"brand":  "Skoda",
			"model":  "Octavia",
			"images": []string{"https://cdn.example.com/cars/octavia.jpg"},
		},
		"startDate":               "10.09.2026",
		"endDate":                 "14.09.2026",
		"roundedTotalRentalPrice": price,
	}
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestCreateCheckoutSessionMissingReservedCar(t *testing.T) {
	checkout := &fakeCheckout{url: "https://checkout.stripe.com/pay/cs_test"}
	r := newPaymentRouter(checkout)

	body := validCheckoutBody(199.999)
	delete(body, "reservedCar")
	w := doJSON(t, r, http.MethodPost, "/payment/create-checkout-session", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid data of reserved car.", errorOf(t, w))
	assert.Empty(t, checkout.calls)
}

func TestCreateCheckoutSessionInvalidPrice(t *testing.T) {
	for name, price := range map[string]any{
		"non-numeric string": "abc",
		"missing":            nil,
	} {
		t.Run(name, func(t *testing.T) {
			checkout := &fakeCheckout{url: "https://checkout.stripe.com/pay/cs_test"}
			r := newPaymentRouter(checkout)

			body := validCheckoutBody(price)
			if price == nil {
				delete(body, "roundedTotalRentalPrice")
			}
			w := doJSON(t, r, http.MethodPost, "/payment/create-checkout-session", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid roundedTotalRentalPrice.", errorOf(t, w))
			assert.Empty(t, checkout.calls)
		})
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	checkout := &fakeCheckout{url: "https://checkout.stripe.com/pay/cs_test"}
	r := newPaymentRouter(checkout)

	w := doJSON(t, r, http.MethodPost, "/payment/create-checkout-session", validCheckoutBody(199.999))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test", body.URL)

	require.Len(t, checkout.calls, 1)
	item := checkout.calls[0]
	assert.Equal(t, "66f0c2ab1f4e2a0012345678", item.CarID)
	assert.Equal(t, "Skoda", item.Brand)
	assert.Equal(t, "Octavia", item.Model)
	assert.Equal(t, []string{"https://cdn.example.com/cars/octavia.jpg"}, item.Images)
	assert.Equal(t, "10.09.2026", item.StartDate)
	assert.Equal(t, "14.09.2026", item.EndDate)
	assert.InDelta(t, 199.999, item.Price, 1e-9)
}

func TestCreateCheckoutSessionStringPrice(t *testing.T) {
	checkout := &fakeCheckout{url: "https://checkout.stripe.com/pay/cs_test"}
	r := newPaymentRouter(checkout)

	w := doJSON(t, r, http.MethodPost, "/payment/create-checkout-session", validCheckoutBody("200"))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, checkout.calls, 1)
	assert.InDelta(t, 200, checkout.calls[0].Price, 1e-9)
}

func TestCreateCheckoutSessionProviderError(t *testing.T) {
	checkout := &fakeCheckout{err: errors.New("stripe unavailable")}
	r := newPaymentRouter(checkout)

	w := doJSON(t, r, http.MethodPost, "/payment/create-checkout-session", validCheckoutBody(100))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", errorOf(t, w))
}
