package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizgrow/bizgrow-backend/api/responses"
	"github.com/bizgrow/bizgrow-backend/api/validators"
	cataloguesvc "github.com/bizgrow/bizgrow-backend/internal/catalogue"
	"github.com/bizgrow/bizgrow-backend/internal/storeid"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
	"github.com/bizgrow/bizgrow-backend/pkg/logger"
	"github.com/bizgrow/bizgrow-backend/pkg/pagination"
)

// GetCatalogue serves the storefront page payload. The slug segment accepts
// both a bare store UUID and a share link like "sharma-kirana-<uuid>".
func GetCatalogue(svc cataloguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalogue service unavailable"))
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "storeSlug"))
		storeID, err := uuid.Parse(storeid.Resolve(raw))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "store not found"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithStoreID(ctx, storeID.String())
		}

		page, err := svc.Load(ctx, storeID, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
