package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"resource-directory/internal/models"
)

// SearchValidator turns raw search parameters into a SearchQuery.
type SearchValidator struct {
	categories CategoryLookup
}

func NewSearchValidator(categories CategoryLookup) *SearchValidator {
	return &SearchValidator{categories: categories}
}

// Validate checks the rules in order: category_id required, coordinates
// both-or-neither and numeric, category_id resolvable. The category lookup
// runs last so malformed requests never touch storage.
func (v *SearchValidator) Validate(ctx context.Context, params models.SearchParams) (models.SearchQuery, error) {
	rawCategory := strings.TrimSpace(params.CategoryID)
	if rawCategory == "" {
		return models.SearchQuery{}, ErrMissingCategory
	}

	origin, err := parseOrigin(params.Lat, params.Long)
	if err != nil {
		return models.SearchQuery{}, err
	}

	categoryID, err := strconv.ParseInt(rawCategory, 10, 64)
	if err != nil || categoryID <= 0 {
		return models.SearchQuery{}, ErrUnknownCategory
	}

	exists, err := v.categories.CategoryExists(ctx, categoryID)
	if err != nil {
		return models.SearchQuery{}, storageError("category exists", err)
	}
	if !exists {
		return models.SearchQuery{}, ErrUnknownCategory
	}

	return models.SearchQuery{CategoryID: categoryID, Origin: origin}, nil
}

func parseOrigin(rawLat, rawLong string) (*models.Point, error) {
	rawLat = strings.TrimSpace(rawLat)
	rawLong = strings.TrimSpace(rawLong)

	switch {
	case rawLat == "" && rawLong == "":
		return nil, nil
	case rawLat == "" || rawLong == "":
		return nil, ErrIncompleteCoordinates
	}

	lat, err := parseCoordinate(rawLat)
	if err != nil {
		return nil, err
	}
	long, err := parseCoordinate(rawLong)
	if err != nil {
		return nil, err
	}

	return &models.Point{Lat: lat, Long: long}, nil
}

func parseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidCoordinates
	}
	return v, nil
}
