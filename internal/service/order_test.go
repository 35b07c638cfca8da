package service

import (
	"testing"
	"time"

	"shopbot/internal/domain"
	"shopbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_Checkout(t *testing.T) {
	t.Run("creates one order per cart line", func(t *testing.T) {
		orderRepo := new(testutil.MockOrderRepository)
		orderRepo.On("CreateFromCart", 1, "+998901234567", "Lat: 41.3, Lon: 69.2", "delivery", "cash").
			Return(2, nil)

		svc := NewOrderService(orderRepo)

		created, err := svc.Checkout(1, "+998901234567", "Lat: 41.3, Lon: 69.2", "delivery", "cash")

		assert.NoError(t, err)
		assert.Equal(t, 2, created)
		orderRepo.AssertExpectations(t)
	})

	t.Run("empty cart creates nothing", func(t *testing.T) {
		orderRepo := new(testutil.MockOrderRepository)
		orderRepo.On("CreateFromCart", 1, "p", "a", "pickup", "click").
			Return(0, domain.ErrEmptyCart)

		svc := NewOrderService(orderRepo)

		created, err := svc.Checkout(1, "p", "a", "pickup", "click")

		assert.ErrorIs(t, err, domain.ErrEmptyCart)
		assert.Zero(t, created)
	})

	t.Run("missing delivery type defaults to courier", func(t *testing.T) {
		orderRepo := new(testutil.MockOrderRepository)
		orderRepo.On("CreateFromCart", 1, "p", "a", domain.DeliveryCourier, "cash").
			Return(1, nil)

		svc := NewOrderService(orderRepo)

		_, err := svc.Checkout(1, "p", "a", "", "cash")

		assert.NoError(t, err)
		orderRepo.AssertExpectations(t)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("known status is forwarded", func(t *testing.T) {
		orderRepo := new(testutil.MockOrderRepository)
		orderRepo.On("UpdateStatus", 12, domain.OrderStatusProcessing).Return(nil)

		svc := NewOrderService(orderRepo)

		assert.NoError(t, svc.UpdateStatus(12, "processing"))
		orderRepo.AssertExpectations(t)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		orderRepo := new(testutil.MockOrderRepository)

		svc := NewOrderService(orderRepo)

		assert.Error(t, svc.UpdateStatus(12, "shipped"))
		orderRepo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestOrderService_Statistics(t *testing.T) {
	orderRepo := new(testutil.MockOrderRepository)
	// First call covers the 7-day window, second the 30-day window.
	orderRepo.On("Aggregate", mock.AnythingOfType("time.Time")).Return(3, 45000, nil).Once()
	orderRepo.On("Aggregate", mock.AnythingOfType("time.Time")).Return(11, 180000, nil).Once()

	svc := NewOrderService(orderRepo)

	stats, err := svc.Statistics()

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Last7DaysOrders)
	assert.Equal(t, 45000, stats.Last7DaysRevenue)
	assert.Equal(t, 11, stats.Last30DaysOrders)
	assert.Equal(t, 180000, stats.Last30DaysRevenue)

	calls := orderRepo.Calls
	assert.Len(t, calls, 2)
	since7 := calls[0].Arguments.Get(0).(time.Time)
	since30 := calls[1].Arguments.Get(0).(time.Time)
	assert.True(t, since30.Before(since7))
}
