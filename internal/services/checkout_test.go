package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitAmount(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{price: 0, want: 0},
		{price: 1, want: 100},
		{price: 249.99, want: 24999},
		// Fractional grosze round up, never down.
		{price: 199.999, want: 20000},
		{price: 0.001, want: 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MinorUnitAmount(tc.price), "price %v", tc.price)
	}
}

func TestSessionParams(t *testing.T) {
	item := CheckoutItem{
		CarID:     "66f0c2ab1f4e2a0012345678",
		Brand:     "Skoda",
		Model:     "Octavia",
		Images:    []string{"https://cdn.example.com/cars/octavia.jpg"},
		StartDate: "10.09.2026",
		EndDate:   "14.09.2026",
		Price:     999.96,
	}

	params := SessionParams(item, "https://rental.example.com/checkout-success", "https://rental.example.com/shop")

	require.Len(t, params.PaymentMethodTypes, 3)
	methods := []string{
		*params.PaymentMethodTypes[0],
		*params.PaymentMethodTypes[1],
		*params.PaymentMethodTypes[2],
	}
	assert.Equal(t, []string{"card", "paypal", "blik"}, methods)

	require.NotNil(t, params.PhoneNumberCollection)
	assert.True(t, *params.PhoneNumberCollection.Enabled)

	require.Len(t, params.LineItems, 1)
	line := params.LineItems[0]
	assert.Equal(t, int64(1), *line.Quantity)

	price := line.PriceData
	require.NotNil(t, price)
	assert.Equal(t, "pln", *price.Currency)
	assert.Equal(t, int64(99996), *price.UnitAmount)

	product := price.ProductData
	require.NotNil(t, product)
	assert.Equal(t, "Płatność za wypożyczenie pojazdu: Skoda Octavia", *product.Name)
	assert.Equal(t,
		"Data rozpoczęcia okresu wypożyczenia: 10.09.2026 Data zakończenia okresu wypożyczenia: 14.09.2026",
		*product.Description)
	require.Len(t, product.Images, 1)
	assert.Equal(t, "https://cdn.example.com/cars/octavia.jpg", *product.Images[0])
	assert.Equal(t, map[string]string{"id": "66f0c2ab1f4e2a0012345678"}, product.Metadata)

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "https://rental.example.com/checkout-success", *params.SuccessURL)
	assert.Equal(t, "https://rental.example.com/shop", *params.CancelURL)
}
