package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"seller_panel/internal/models"
	"seller_panel/pkg/adminapi"

	"github.com/stretchr/testify/assert"
)

// recordedRequest captures one call the fake admin API received.
type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// fakeAdminAPI is an httptest-backed admin API that records every request
// and serves canned responses per method+path.
type fakeAdminAPI struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
	statuses  map[string]int
	server    *httptest.Server
}

func newFakeAdminAPI() *fakeAdminAPI {
	f := &fakeAdminAPI{
		responses: make(map[string]string),
		statuses:  make(map[string]int),
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}
		key := r.Method + " " + r.URL.Path

		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
		status, hasStatus := f.statuses[key]
		response, hasResponse := f.responses[key]
		f.mu.Unlock()

		if hasStatus {
			w.WriteHeader(status)
		}
		if hasResponse {
			w.Write([]byte(response))
		} else if !hasStatus {
			w.Write([]byte(`{}`))
		}
	}))
	return f
}

func (f *fakeAdminAPI) respond(key, body string) {
	f.mu.Lock()
	f.responses[key] = body
	f.mu.Unlock()
}

func (f *fakeAdminAPI) status(key string, code int) {
	f.mu.Lock()
	f.statuses[key] = code
	f.mu.Unlock()
}

func (f *fakeAdminAPI) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *fakeAdminAPI) close() {
	f.server.Close()
}

func newOrderServiceForTest(f *fakeAdminAPI) (OrderService, ShippingService) {
	client := adminapi.NewClient(f.server.URL, 5*time.Second, "cancelled_date")
	shipping := NewShippingService(client)
	orders := NewOrderService(client, shipping)
	orders.(*orderService).now = func() time.Time {
		return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	}
	return orders, shipping
}

func TestUpdateLineItemStatusShippedSyncsAndOpensEditor(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.respond("GET /orderseller/5", `[{"id":7,"buyer_id":3,"order_type":"Order","products":[{"id":42,"seller_id":5,"order_status":"Shipped"}]}]`)
	fake.respond("GET /ordershipping/7", `[{"order_id":7,"seller_id":5,"courier_name":"BlueDart","shipping_status":"Shipped"}]`)

	orders, _ := newOrderServiceForTest(fake)
	ref := models.LineItemRef{LineItemID: 42, OrderID: 7, BuyerID: 3, SellerID: 5}

	result, err := orders.UpdateLineItemStatus(context.Background(), ref, "Shipped")

	assert.NoError(t, err)
	assert.True(t, result.OpenEditor)
	if assert.NotNil(t, result.ShippingForm) {
		assert.Equal(t, "BlueDart", result.ShippingForm.CourierName)
	}
	assert.Len(t, result.Orders, 1)

	reqs := fake.recorded()
	if assert.Len(t, reqs, 5) {
		assert.Equal(t, "PATCH", reqs[0].Method)
		assert.Equal(t, "/orderProduct/42", reqs[0].Path)
		assert.Equal(t, "Shipped", reqs[0].Body["order_status"])

		assert.Equal(t, "POST", reqs[1].Method)
		assert.Equal(t, "/shipping/", reqs[1].Path)

		assert.Equal(t, "PATCH", reqs[2].Method)
		assert.Equal(t, "/shipping/7/5", reqs[2].Path)
		assert.Equal(t, "Shipped", reqs[2].Body["shipping_status"])
		assert.NotEmpty(t, reqs[2].Body["estimated_delivery_date"])

		assert.Equal(t, "GET", reqs[3].Method)
		assert.Equal(t, "/orderseller/5", reqs[3].Path)

		assert.Equal(t, "GET", reqs[4].Method)
		assert.Equal(t, "/ordershipping/7", reqs[4].Path)
	}
}

func TestUpdateLineItemStatusDeliveredSetsActualDate(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.respond("GET /orderseller/5", `[]`)

	orders, _ := newOrderServiceForTest(fake)
	ref := models.LineItemRef{LineItemID: 42, OrderID: 7, BuyerID: 3, SellerID: 5}

	result, err := orders.UpdateLineItemStatus(context.Background(), ref, "delivered")

	assert.NoError(t, err)
	assert.False(t, result.OpenEditor)
	assert.Nil(t, result.ShippingForm)

	reqs := fake.recorded()
	if assert.Len(t, reqs, 4) {
		assert.Equal(t, "Delivered", reqs[0].Body["order_status"])
		assert.Equal(t, "/shipping/7/5", reqs[2].Path)
		assert.Equal(t, "Delivered", reqs[2].Body["shipping_status"])
		assert.NotEmpty(t, reqs[2].Body["actual_delivery_date"])
	}
}

func TestUpdateLineItemStatusConfirmedSkipsShippingSync(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.respond("GET /orderseller/5", `[]`)

	orders, _ := newOrderServiceForTest(fake)
	ref := models.LineItemRef{LineItemID: 42, OrderID: 7, BuyerID: 3, SellerID: 5}

	_, err := orders.UpdateLineItemStatus(context.Background(), ref, "Confirmed")

	assert.NoError(t, err)
	reqs := fake.recorded()
	if assert.Len(t, reqs, 2) {
		assert.Equal(t, "/orderProduct/42", reqs[0].Path)
		assert.Equal(t, "/orderseller/5", reqs[1].Path)
	}
}

func TestUpdateLineItemStatusRejectsUnknownStatus(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()

	orders, _ := newOrderServiceForTest(fake)
	ref := models.LineItemRef{LineItemID: 42, OrderID: 7, BuyerID: 3, SellerID: 5}

	_, err := orders.UpdateLineItemStatus(context.Background(), ref, "Lost")

	assert.Error(t, err)
	assert.Empty(t, fake.recorded())
}

func TestUpdateLineItemStatusPatchFailureStopsSync(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.status("PATCH /orderProduct/42", http.StatusInternalServerError)

	orders, _ := newOrderServiceForTest(fake)
	ref := models.LineItemRef{LineItemID: 42, OrderID: 7, BuyerID: 3, SellerID: 5}

	_, err := orders.UpdateLineItemStatus(context.Background(), ref, "Shipped")

	assert.Error(t, err)
	assert.Len(t, fake.recorded(), 1)
}

func TestUpdateLineItemStatusSyncFailureIsSwallowed(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.status("POST /shipping/", http.StatusConflict)
	fake.status("PATCH /shipping/7/5", http.StatusInternalServerError)
	fake.respond("GET /orderseller/5", `[]`)

	orders, _ := newOrderServiceForTest(fake)
	ref := models.LineItemRef{LineItemID: 42, OrderID: 7, BuyerID: 3, SellerID: 5}

	result, err := orders.UpdateLineItemStatus(context.Background(), ref, "Cancelled")

	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestListOrdersNormalizes(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.respond("GET /orderseller/5", `{"data":[
		{"id":1,"order_type":"ORDER","products":[{"id":10,"seller_id":5,"order_status":"pending"}]},
		{"id":2,"order_type":"Order","products":[{"id":11,"seller_id":8,"order_status":"New"}]}
	]}`)

	orders, _ := newOrderServiceForTest(fake)

	got, err := orders.ListOrders(context.Background(), 5)

	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Order", got[0].OrderType)
		assert.Equal(t, "Pending", got[0].Products[0].OrderStatus)
	}
}

func TestUpdateOrderTypeRefetchesOnFailure(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.status("PATCH /ordersOrderType", http.StatusInternalServerError)
	fake.respond("GET /orderseller/5", `[{"id":1,"order_type":"Order","products":[{"id":10,"seller_id":5}]}]`)

	orders, _ := newOrderServiceForTest(fake)

	got, err := orders.UpdateOrderType(context.Background(), 5, 1, "inquiry")

	assert.Error(t, err)
	assert.Len(t, got, 1)

	reqs := fake.recorded()
	if assert.Len(t, reqs, 2) {
		assert.Equal(t, "/ordersOrderType", reqs[0].Path)
		assert.Equal(t, "inquiry", reqs[0].Body["order_type"])
		assert.Equal(t, "/orderseller/5", reqs[1].Path)
	}
}

func TestBuyerNames(t *testing.T) {
	fake := newFakeAdminAPI()
	defer fake.close()
	fake.respond("GET /buyers", `{"buyers":[{"id":1,"name":"Ravi"},{"id":2,"name":"Meena"}]}`)

	orders, _ := newOrderServiceForTest(fake)

	names, err := orders.BuyerNames(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Ravi", 2: "Meena"}, names)
}
