package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
)

type fakeRepo struct {
	store         *models.Store
	customization *models.StoreCustomization
	findErr       error
	updated       *models.Store
}

func (f *fakeRepo) FindActiveByID(_ context.Context, id uuid.UUID) (*models.Store, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.store == nil || f.store.ID != id || !f.store.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return f.store, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Store, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.store == nil || f.store.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.store, nil
}

func (f *fakeRepo) FindCustomization(_ context.Context, storeID uuid.UUID) (*models.StoreCustomization, error) {
	if f.customization == nil || f.customization.StoreID != storeID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.customization, nil
}

func (f *fakeRepo) Update(_ context.Context, store *models.Store) error {
	f.updated = store
	return nil
}

func strptr(v string) *string { return &v }

func seededStore() *models.Store {
	return &models.Store{
		ID:       uuid.New(),
		Name:     "Sharma Kirana",
		Slug:     "sharma-kirana",
		Category: "kirana",
		IsActive: true,
	}
}

func newStoreService(t *testing.T, repo *fakeRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestGetActiveByID(t *testing.T) {
	store := seededStore()
	svc := newStoreService(t, &fakeRepo{store: store})

	dto, err := svc.GetActiveByID(context.Background(), store.ID)
	if err != nil {
		t.Fatalf("get store: %v", err)
	}
	if dto.Name != "Sharma Kirana" || dto.Slug != "sharma-kirana" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if dto.CategoryLabel != "Kirana Store" {
		t.Fatalf("category label = %q", dto.CategoryLabel)
	}
}

func TestGetActiveByIDHidesInactiveStores(t *testing.T) {
	store := seededStore()
	store.IsActive = false
	svc := newStoreService(t, &fakeRepo{store: store})

	_, err := svc.GetActiveByID(context.Background(), store.ID)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetActiveByIDWrapsRepoFailure(t *testing.T) {
	svc := newStoreService(t, &fakeRepo{findErr: errors.New("connection reset")})

	_, err := svc.GetActiveByID(context.Background(), uuid.New())
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestGetCustomizationFallsBackToCategoryTheme(t *testing.T) {
	store := seededStore()
	svc := newStoreService(t, &fakeRepo{store: store})

	dto, err := svc.GetCustomization(context.Background(), store.ID)
	if err != nil {
		t.Fatalf("get customization: %v", err)
	}
	if dto.PrimaryColor == "" || dto.SecondaryColor == "" {
		t.Fatal("theme colors must always be set")
	}
	if !dto.ShowPrices || !dto.EnableWhatsAppOrders {
		t.Fatal("defaults must enable prices and whatsapp orders")
	}
}

func TestGetCustomizationPrefersStoredSettings(t *testing.T) {
	store := seededStore()
	repo := &fakeRepo{
		store: store,
		customization: &models.StoreCustomization{
			ID:                   uuid.New(),
			StoreID:              store.ID,
			PrimaryColor:         strptr("#112233"),
			WelcomeMessage:       strptr("Namaste!"),
			ShowPrices:           false,
			EnableWhatsAppOrders: true,
		},
	}
	svc := newStoreService(t, repo)

	dto, err := svc.GetCustomization(context.Background(), store.ID)
	if err != nil {
		t.Fatalf("get customization: %v", err)
	}
	if dto.PrimaryColor != "#112233" {
		t.Fatalf("primary color = %q", dto.PrimaryColor)
	}
	if dto.SecondaryColor == "" {
		t.Fatal("unset secondary color must fall back to the theme")
	}
	if dto.ShowPrices {
		t.Fatal("stored show_prices must win over the default")
	}
	if dto.WelcomeMessage == nil || *dto.WelcomeMessage != "Namaste!" {
		t.Fatal("welcome message not mapped")
	}
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	store := seededStore()
	store.Phone = strptr("+911112223334")
	repo := &fakeRepo{store: store}
	svc := newStoreService(t, repo)

	dto, err := svc.Update(context.Background(), store.ID, UpdateStoreInput{
		Name:           strptr("Sharma Super Kirana"),
		WhatsAppNumber: strptr("+919876543210"),
		Tags:           &[]string{"groceries", "daily"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Name != "Sharma Super Kirana" {
		t.Fatalf("name = %q", dto.Name)
	}
	if repo.updated == nil {
		t.Fatal("update must persist")
	}
	if repo.updated.Phone == nil || *repo.updated.Phone != "+911112223334" {
		t.Fatal("untouched fields must survive the patch")
	}
	if len(repo.updated.Tags) != 2 {
		t.Fatalf("tags = %v", repo.updated.Tags)
	}
}

func TestUpdateUnknownStore(t *testing.T) {
	svc := newStoreService(t, &fakeRepo{})

	_, err := svc.Update(context.Background(), uuid.New(), UpdateStoreInput{Name: strptr("x")})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
