package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"resource-directory/internal/models"
	"resource-directory/internal/services"
	"resource-directory/internal/utils"
)

type ResourceHandler struct {
	service *services.ResourceService
	logr    *zap.Logger
}

func NewResourceHandler(svc *services.ResourceService, logr *zap.Logger) *ResourceHandler {
	return &ResourceHandler{service: svc, logr: logr}
}

// SearchResources handles GET /resources?category_id=&lat=&long=
// Returns the resources in a category, nearest first when lat/long are given.
func (h *ResourceHandler) SearchResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := models.SearchParams{
		CategoryID: utils.QueryValue(q, "category_id"),
		Lat:        utils.QueryValue(q, "lat"),
		Long:       utils.QueryValue(q, "long"),
	}

	resources, err := h.service.Search(r.Context(), params)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logr.Error("failed to search resources",
			zap.String("category_id", params.CategoryID),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to retrieve resources")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resources": models.NewResourceSummaries(resources),
	})
}

// GetResourceByID handles GET /resources/{id}
func (h *ResourceHandler) GetResourceByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.service.GetResourceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logr.Error("failed to fetch resource", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to retrieve resource")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resource": detail,
	})
}

// ListCategories handles GET /categories
func (h *ResourceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logr.Error("failed to list categories", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to retrieve categories")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": models.NewCategoryViews(categories),
	})
}
