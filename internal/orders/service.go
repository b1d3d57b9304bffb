package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
)

type orderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]models.Order, error)
}

// Service exposes read operations for orders.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]OrderDTO, error)
}

type service struct {
	repo orderRepository
}

// NewService builds an order service with the provided repository.
func NewService(repo orderRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{repo: repo}, nil
}

// GetByID loads the order for the confirmation view.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return FromModel(order), nil
}

// ListByStore returns the store's recent orders, newest first.
func (s *service) ListByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]OrderDTO, error) {
	rows, err := s.repo.ListByStore(ctx, storeID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}
