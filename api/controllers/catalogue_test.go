package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	cataloguesvc "github.com/bizgrow/bizgrow-backend/internal/catalogue"
	"github.com/bizgrow/bizgrow-backend/internal/stores"
	"github.com/bizgrow/bizgrow-backend/pkg/pagination"
)

type fakeCatalogueService struct {
	lastStoreID uuid.UUID
	lastParams  pagination.Params
	page        *cataloguesvc.CatalogueDTO
	err         error
}

func (f *fakeCatalogueService) Load(_ context.Context, storeID uuid.UUID, params pagination.Params) (*cataloguesvc.CatalogueDTO, error) {
	f.lastStoreID = storeID
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func catalogueTestRouter(svc cataloguesvc.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/catalogue/{storeSlug}", GetCatalogue(svc, nil))
	return r
}

func TestGetCatalogueResolvesSlugWithSuffix(t *testing.T) {
	storeID := uuid.New()
	svc := &fakeCatalogueService{page: &cataloguesvc.CatalogueDTO{Store: &stores.StoreDTO{ID: storeID}}}
	router := catalogueTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/sharma-kirana-"+storeID.String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	if svc.lastStoreID != storeID {
		t.Fatalf("service saw %s, want %s", svc.lastStoreID, storeID)
	}
}

func TestGetCatalogueBareUUID(t *testing.T) {
	storeID := uuid.New()
	svc := &fakeCatalogueService{page: &cataloguesvc.CatalogueDTO{Store: &stores.StoreDTO{ID: storeID}}}
	router := catalogueTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/"+storeID.String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if svc.lastStoreID != storeID {
		t.Fatalf("service saw %s, want %s", svc.lastStoreID, storeID)
	}
}

func TestGetCatalogueUnresolvableSlug(t *testing.T) {
	svc := &fakeCatalogueService{}
	router := catalogueTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/just-a-name", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d", resp.Code)
	}
	if svc.lastStoreID != uuid.Nil {
		t.Fatal("service should not be called for unresolvable slugs")
	}
}

func TestGetCataloguePassesPagination(t *testing.T) {
	storeID := uuid.New()
	svc := &fakeCatalogueService{page: &cataloguesvc.CatalogueDTO{}}
	router := catalogueTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/"+storeID.String()+"?limit=10&cursor=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if svc.lastParams.Limit != 10 || svc.lastParams.Cursor != "abc" {
		t.Fatalf("params = %+v", svc.lastParams)
	}
}
