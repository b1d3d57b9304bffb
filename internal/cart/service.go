package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
)

type cartRepository interface {
	Load(ctx context.Context, storeID uuid.UUID, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, storeID uuid.UUID, sessionID string) error
}

type productFinder interface {
	FindAvailableByID(ctx context.Context, storeID, productID uuid.UUID) (*models.Product, error)
}

// Service exposes cart operations for one store and shopper session.
type Service interface {
	Get(ctx context.Context, storeID uuid.UUID, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, storeID uuid.UUID, sessionID string, productID uuid.UUID) (*Cart, error)
	UpdateQuantity(ctx context.Context, storeID uuid.UUID, sessionID string, productID uuid.UUID, delta int) (*Cart, error)
	RemoveItem(ctx context.Context, storeID uuid.UUID, sessionID string, productID uuid.UUID) (*Cart, error)
	Clear(ctx context.Context, storeID uuid.UUID, sessionID string) error
}

type service struct {
	carts    cartRepository
	products productFinder
}

// NewService builds a cart service with its repositories.
func NewService(carts cartRepository, products productFinder) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{carts: carts, products: products}, nil
}

// Get loads the current cart, empty when the shopper has never added anything.
func (s *service) Get(ctx context.Context, storeID uuid.UUID, sessionID string) (*Cart, error) {
	c, err := s.carts.Load(ctx, storeID, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return c, nil
}

// AddItem puts one unit of the product into the cart. A line that already
// exists gains one more unit; a new line snapshots the product's current
// name, price and image.
func (s *service) AddItem(ctx context.Context, storeID uuid.UUID, sessionID string, productID uuid.UUID) (*Cart, error) {
	c, err := s.carts.Load(ctx, storeID, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	if c.ItemQuantity(productID) > 0 {
		c.AdjustQuantity(productID, 1)
	} else {
		product, err := s.products.FindAvailableByID(ctx, storeID, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		c.Add(Item{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  1,
		})
	}

	if err := s.carts.Save(ctx, c); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return c, nil
}

// UpdateQuantity applies a delta to an existing line. Dropping to zero or
// below removes the line. A product not in the cart is a no-op.
func (s *service) UpdateQuantity(ctx context.Context, storeID uuid.UUID, sessionID string, productID uuid.UUID, delta int) (*Cart, error) {
	c, err := s.carts.Load(ctx, storeID, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	if !c.AdjustQuantity(productID, delta) {
		return c, nil
	}

	if err := s.carts.Save(ctx, c); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return c, nil
}

// RemoveItem drops the product's line regardless of quantity.
func (s *service) RemoveItem(ctx context.Context, storeID uuid.UUID, sessionID string, productID uuid.UUID) (*Cart, error) {
	c, err := s.carts.Load(ctx, storeID, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	if !c.Remove(productID) {
		return c, nil
	}

	if err := s.carts.Save(ctx, c); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return c, nil
}

// Clear deletes the shopper's cart.
func (s *service) Clear(ctx context.Context, storeID uuid.UUID, sessionID string) error {
	if err := s.carts.Delete(ctx, storeID, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}
