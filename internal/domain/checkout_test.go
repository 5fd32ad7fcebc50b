package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Тест: длительность аренды считается в миллисекундах и сохраняет
// дробную часть
func TestTotalHours(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 3, 19, 0, 0, 0, time.UTC)
	assert.Equal(t, 57.0, TotalHours(start, end))

	halfHour := time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, 0.5, TotalHours(start, halfHour))

	assert.Equal(t, 0.0, TotalHours(start, start))
}

func TestCheckoutSession_IsComplete(t *testing.T) {
	session := &CheckoutSession{
		VehicleID:    7,
		PackagePrice: 1000,
		StartDate:    "2025-01-01",
		EndDate:      "2025-01-03",
	}
	assert.True(t, session.IsComplete())

	testCases := []struct {
		name   string
		mutate func(*CheckoutSession)
	}{
		{"no vehicle", func(s *CheckoutSession) { s.VehicleID = 0 }},
		{"no price", func(s *CheckoutSession) { s.PackagePrice = 0 }},
		{"no start date", func(s *CheckoutSession) { s.StartDate = "" }},
		{"no end date", func(s *CheckoutSession) { s.EndDate = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			incomplete := *session
			tc.mutate(&incomplete)
			assert.False(t, incomplete.IsComplete())
		})
	}
}
