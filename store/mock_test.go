package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cafe-admin-api/gateway"
	"cafe-admin-api/models"
)

// MockGateway implements the Gateway interface for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListFood(ctx context.Context) ([]models.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockGateway) AddFood(ctx context.Context, item models.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockGateway) UpdateFood(ctx context.Context, item models.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockGateway) DeleteFood(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockGateway) AddOrder(ctx context.Context, order models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockGateway) EditOrder(ctx context.Context, order models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockGateway) CancelOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) DeleteOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) CreatePaymentLink(ctx context.Context, req gateway.PaymentRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CheckPayment(ctx context.Context, linkID string) (string, error) {
	args := m.Called(ctx, linkID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SupportTicket), args.Error(1)
}

func (m *MockGateway) AddTicket(ctx context.Context, t models.SupportTicket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockGateway) UpdateTicket(ctx context.Context, t models.SupportTicket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockGateway) DeleteTicket(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) ListFeedback(ctx context.Context) ([]models.CustomerFeedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomerFeedback), args.Error(1)
}

func (m *MockGateway) AddFeedback(ctx context.Context, f models.CustomerFeedback) error {
	return m.Called(ctx, f).Error(0)
}
