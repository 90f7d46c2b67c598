package testutil

import (
	"context"
	"sync"

	domainErrors "github.com/cassiomorais/payment-gateway/internal/domain/errors"
	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/bank"
	"github.com/google/uuid"
)

// --- Payment Repository Mock ---

// MockPaymentRepository is a mock implementation of payment.Repository.
type MockPaymentRepository struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*payment.Payment

	CreateFunc  func(ctx context.Context, p *payment.Payment) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[uuid.UUID]*payment.Payment),
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[p.ID] = p
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return nil, domainErrors.ErrPaymentNotFound
	}
	return p, nil
}

// Size returns the number of stored payments.
func (m *MockPaymentRepository) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.payments)
}

// --- Bank Authorizer Mock ---

// MockAuthorizer is a mock implementation of bank.Authorizer.
type MockAuthorizer struct {
	mu    sync.Mutex
	calls []bank.AuthorizationRequest

	AuthorizeFunc func(ctx context.Context, req bank.AuthorizationRequest) (*bank.AuthorizationResponse, error)
}

func (m *MockAuthorizer) Authorize(ctx context.Context, req bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, req)
	}
	return &bank.AuthorizationResponse{Authorized: true, AuthorizationCode: uuid.New().String()}, nil
}

// Calls returns the authorization requests seen so far.
func (m *MockAuthorizer) Calls() []bank.AuthorizationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bank.AuthorizationRequest(nil), m.calls...)
}
