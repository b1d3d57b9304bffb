package catalogue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bizgrow/bizgrow-backend/internal/products"
	"github.com/bizgrow/bizgrow-backend/internal/promotions"
	"github.com/bizgrow/bizgrow-backend/internal/stores"
	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
	"github.com/bizgrow/bizgrow-backend/pkg/pagination"
)

type storeService interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*stores.StoreDTO, error)
	GetCustomization(ctx context.Context, storeID uuid.UUID) (*stores.CustomizationDTO, error)
}

type productLister interface {
	ListAvailable(ctx context.Context, storeID uuid.UUID, params pagination.Params) ([]models.Product, string, error)
}

type promotionLister interface {
	ListActive(ctx context.Context, storeID uuid.UUID, now time.Time) ([]models.Promotion, error)
}

// CatalogueDTO is the full storefront payload rendered for one store.
type CatalogueDTO struct {
	Store         *stores.StoreDTO          `json:"store"`
	Customization *stores.CustomizationDTO  `json:"customization"`
	Products      []products.ProductDTO     `json:"products"`
	NextCursor    string                    `json:"next_cursor,omitempty"`
	Promotions    []promotions.PromotionDTO `json:"promotions"`
}

// Service assembles the storefront catalogue page.
type Service interface {
	Load(ctx context.Context, storeID uuid.UUID, params pagination.Params) (*CatalogueDTO, error)
}

type service struct {
	stores     storeService
	products   productLister
	promotions promotionLister
	now        func() time.Time
}

// NewService builds a catalogue service over its store, product and
// promotion dependencies.
func NewService(storeSvc storeService, productRepo productLister, promotionRepo promotionLister) (Service, error) {
	if storeSvc == nil {
		return nil, fmt.Errorf("store service required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if promotionRepo == nil {
		return nil, fmt.Errorf("promotion repository required")
	}
	return &service{
		stores:     storeSvc,
		products:   productRepo,
		promotions: promotionRepo,
		now:        time.Now,
	}, nil
}

// Load resolves the store first so an unknown or inactive store fails fast,
// then fetches customization, promotions and the product page concurrently.
func (s *service) Load(ctx context.Context, storeID uuid.UUID, params pagination.Params) (*CatalogueDTO, error) {
	store, err := s.stores.GetActiveByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	result := &CatalogueDTO{Store: store}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		customization, err := s.stores.GetCustomization(groupCtx, storeID)
		if err != nil {
			return err
		}
		result.Customization = customization
		return nil
	})
	group.Go(func() error {
		rows, next, err := s.products.ListAvailable(groupCtx, storeID, params)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
		}
		result.Products = products.FromModels(rows)
		result.NextCursor = next
		return nil
	})
	group.Go(func() error {
		rows, err := s.promotions.ListActive(groupCtx, storeID, s.now().UTC())
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list promotions")
		}
		result.Promotions = promotions.FromModels(rows)
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
