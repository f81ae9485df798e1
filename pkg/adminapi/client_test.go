package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seller_panel/internal/models"

	"github.com/stretchr/testify/assert"
)

func newTestClient(url string) *Client {
	return NewClient(url, 5*time.Second, "cancelled_date")
}

func TestDecodeListShapes(t *testing.T) {
	type row struct {
		ID int64 `json:"id"`
	}

	tests := []struct {
		name string
		body string
		keys []string
		want int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, nil, 2},
		{"data envelope", `{"data":[{"id":1}]}`, nil, 1},
		{"named key", `{"orders":[{"id":1},{"id":2},{"id":3}]}`, []string{"orders"}, 3},
		{"data wins over named key", `{"data":[{"id":1}],"items":[{"id":9},{"id":2}]}`, []string{"items"}, 1},
		{"non-list envelope yields empty", `{"data":"not-a-list"}`, nil, 0},
		{"empty body", ``, nil, 0},
		{"null body", `null`, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList[row]([]byte(tt.body), tt.keys...)
			assert.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestDecodeListRejectsMalformedJSON(t *testing.T) {
	_, err := decodeList[json.RawMessage]([]byte(`{broken`))
	assert.Error(t, err)
}

func TestExtractMessage(t *testing.T) {
	assert.Equal(t, "seller not found", extractMessage([]byte(`{"message":"seller not found"}`)))
	assert.Equal(t, "bad input", extractMessage([]byte(`{"error":"bad input"}`)))
	assert.Equal(t, "plain failure", extractMessage([]byte(`plain failure`)))
}

func TestSellerOrdersAbsenceIsEmpty(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusNoContent} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		orders, err := newTestClient(server.URL).SellerOrders(context.Background(), 5)
		server.Close()

		assert.NoError(t, err)
		assert.Empty(t, orders)
	}
}

func TestSellerOrdersServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database is down"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SellerOrders(context.Background(), 5)

	apiErr, ok := err.(*APIError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "database is down", apiErr.Message)
	}
}

func TestUpdateShippingWritesBothCancelledSpellings(t *testing.T) {
	var payload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/shipping/7/5", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).UpdateShipping(context.Background(), 7, 5, map[string]interface{}{
		"shipping_status": "Cancelled",
		"cancelled_date":  "2025-06-01T00:00:00Z",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2025-06-01T00:00:00Z", payload["cancelled_date"])
	assert.Equal(t, "2025-06-01T00:00:00Z", payload["canceled_date"])
	assert.Equal(t, "Cancelled", payload["shipping_status"])
}

func TestAltCancelledSpelling(t *testing.T) {
	assert.Equal(t, "canceled_date", altCancelledSpelling("cancelled_date"))
	assert.Equal(t, "cancelled_date", altCancelledSpelling("canceled_date"))
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Account suspended"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "a@b.c", "pw")

	apiErr, ok := err.(*APIError)
	if assert.True(t, ok) {
		assert.Equal(t, "Account suspended", apiErr.Message)
	}
}

func TestLoginFailureGenericFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "a@b.c", "pw")

	apiErr, ok := err.(*APIError)
	if assert.True(t, ok) {
		assert.Equal(t, "Invalid email or password", apiErr.Message)
	}
}

func TestSellerToleratesArrayWrapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"seller":{"id":5,"name":"Asha"},"company":{"company_name":"Asha Traders"}}]`))
	}))
	defer server.Close()

	profile, err := newTestClient(server.URL).Seller(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), profile.Seller.ID)
	assert.Equal(t, "Asha Traders", profile.Company.CompanyName)
}

func TestStocksPathSelection(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"items":[{"id":1,"seller_id":5,"product_id":2,"quantity":3}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	items, err := client.Stocks(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, []models.StockItem{{ID: 1, SellerID: 5, ProductID: 2, Quantity: 3}}, items)

	_, err = client.Stocks(context.Background(), 0)
	assert.NoError(t, err)

	assert.Equal(t, []string{"/stock/5", "/stock"}, paths)
}
