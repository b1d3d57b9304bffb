package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type storeRepository interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	FindCustomization(ctx context.Context, storeID uuid.UUID) (*models.StoreCustomization, error)
	Update(ctx context.Context, store *models.Store) error
}

// Service exposes store operations.
type Service interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*StoreDTO, error)
	GetCustomization(ctx context.Context, storeID uuid.UUID) (*CustomizationDTO, error)
	Update(ctx context.Context, storeID uuid.UUID, input UpdateStoreInput) (*StoreDTO, error)
}

type service struct {
	repo storeRepository
}

// NewService builds a store service with the provided repository.
func NewService(repo storeRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("store repository required")
	}
	return &service{repo: repo}, nil
}

// UpdateStoreInput captures the allowed store fields for mutation.
type UpdateStoreInput struct {
	Name           *string
	Description    *string
	Phone          *string
	WhatsAppNumber *string
	Email          *string
	Address        *string
	UPIID          *string
	Category       *string
	Tags           *[]string
}

// GetActiveByID loads a publicly visible store. Missing or inactive rows
// surface as the terminal "store not found" condition.
func (s *service) GetActiveByID(ctx context.Context, id uuid.UUID) (*StoreDTO, error) {
	store, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}
	return FromModel(store), nil
}

// GetCustomization loads the store's presentation settings; an absent row
// means defaults, never an error.
func (s *service) GetCustomization(ctx context.Context, storeID uuid.UUID) (*CustomizationDTO, error) {
	store, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	customization, err := s.repo.FindCustomization(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultCustomization(store.Category), nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customization")
	}
	return CustomizationFromModel(store, customization), nil
}

// Update patches the store's profile; only fields present in the input
// change, everything else survives untouched.
func (s *service) Update(ctx context.Context, storeID uuid.UUID, input UpdateStoreInput) (*StoreDTO, error) {
	store, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = cloneStringPtr(input.Description)
	}
	if input.Phone != nil {
		store.Phone = cloneStringPtr(input.Phone)
	}
	if input.WhatsAppNumber != nil {
		store.WhatsAppNumber = cloneStringPtr(input.WhatsAppNumber)
	}
	if input.Email != nil {
		store.Email = cloneStringPtr(input.Email)
	}
	if input.Address != nil {
		store.Address = cloneStringPtr(input.Address)
	}
	if input.UPIID != nil {
		store.UPIID = cloneStringPtr(input.UPIID)
	}
	if input.Category != nil {
		store.Category = *input.Category
	}
	if input.Tags != nil {
		store.Tags = cloneTags(*input.Tags)
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update store")
	}
	return FromModel(store), nil
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cpy := *value
	return &cpy
}

func cloneTags(value []string) pq.StringArray {
	if value == nil {
		return nil
	}
	res := make(pq.StringArray, len(value))
	copy(res, value)
	return res
}
