package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateInputToTime(t *testing.T) {
	got := DateInputToTime("2025-03-14")
	if assert.NotNil(t, got) {
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), *got)
	}

	assert.Nil(t, DateInputToTime(""))
	assert.Nil(t, DateInputToTime("14/03/2025"))
	assert.Nil(t, DateInputToTime("not a date"))
}

func TestTimeToDateInputRoundTrip(t *testing.T) {
	assert.Equal(t, "", TimeToDateInput(nil))

	ts := time.Date(2025, 7, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-01", TimeToDateInput(&ts))
}

func TestShippingFormFromRecord(t *testing.T) {
	assert.Equal(t, DefaultShippingForm(), ShippingFormFromRecord(nil))

	est := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	rec := ShippingRecord{
		CourierName:       "BlueDart",
		TrackingNumber:    "BD123",
		DeliveryType:      "express",
		ShippingStatus:    "in transit",
		EstimatedDelivery: &est,
	}

	form := ShippingFormFromRecord(&rec)

	assert.Equal(t, "BlueDart", form.CourierName)
	assert.Equal(t, "BD123", form.TrackingNumber)
	assert.Equal(t, "Express", form.DeliveryType)
	assert.Equal(t, "In Transit", form.ShippingStatus)
	assert.Equal(t, "2025-05-02", form.EstimatedDelivery)
	assert.Equal(t, "", form.ActualDelivery)
}

func TestDefaultShippingForm(t *testing.T) {
	form := DefaultShippingForm()
	assert.Equal(t, "Standard", form.DeliveryType)
	assert.Equal(t, "Shipped", form.ShippingStatus)
}
