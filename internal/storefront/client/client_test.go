package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"whatsorder/internal/storefront"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storefrontBody = `{
  "data": {
    "business": {"id": 7, "name": "Mama Cass Kitchen", "slug": "mama-cass-kitchen", "description": null, "logo_url": null, "whatsapp_number": "2348012345678"},
    "products": [{"id": 1, "business_id": 7, "category_id": null, "name": "Jollof Rice", "price": 1500, "image_url": null}],
    "services": [],
    "categories": []
  },
  "meta": {"request_id": "req-1"}
}`

func TestClient_LoadStorefront(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/businesses/mama-cass-kitchen":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(storefrontBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":"BUSINESS_NOT_FOUND","message":"Business not found"}}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/")

	sf, err := c.LoadStorefront(context.Background(), "mama-cass-kitchen")
	require.NoError(t, err)
	assert.Equal(t, "Mama Cass Kitchen", sf.Business.Name)
	require.Len(t, sf.Products, 1)
	assert.True(t, sf.Products[0].Price.Equal(decimal.NewFromInt(1500)))

	_, err = c.LoadStorefront(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrStorefrontNotFound)
}

func TestClient_LogOrder(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":1,"payment_status":"pending"}}`))
	}))
	defer srv.Close()

	err := New(srv.URL).LogOrder(context.Background(), &storefront.OrderLog{
		BusinessID:   7,
		TotalPrice:   decimal.NewFromInt(2500),
		ItemsSummary: "• 2x Jollof Rice — ₦3,000",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(7), got["businessId"])
	assert.Equal(t, float64(2500), got["totalPrice"])
	assert.NotContains(t, got, "customerNote")
}

func TestClient_LogOrderSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`))
	}))
	defer srv.Close()

	err := New(srv.URL).LogOrder(context.Background(), &storefront.OrderLog{BusinessID: 1, ItemsSummary: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}
