package repository

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/BruksfildServices01/barber-frontend/internal/models"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

// CatalogHTTPRepository reads barbers and products for the server-rendered pages.
type CatalogHTTPRepository struct {
	barbers  *upstream.Client
	products *upstream.Client
}

func NewCatalogHTTPRepository(barbers, products *upstream.Client) *CatalogHTTPRepository {
	return &CatalogHTTPRepository{barbers: barbers, products: products}
}

func (r *CatalogHTTPRepository) Barbers(ctx context.Context) ([]models.Barber, error) {
	resp, err := r.barbers.Fetch(ctx, upstream.Request{Method: http.MethodGet}, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Barber](resp.Body)
}

func (r *CatalogHTTPRepository) Products(ctx context.Context) ([]models.Product, error) {
	resp, err := r.products.Fetch(ctx, upstream.Request{Method: http.MethodGet}, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Product](resp.Body)
}

// decodeList takes a bare array or {"data": [...]}. Any other object yields an empty list.
func decodeList[T any](body []byte) ([]T, error) {
	var list []T
	if err := json.Unmarshal(body, &list); err == nil {
		if list == nil {
			list = []T{}
		}
		return list, nil
	}

	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data == nil {
		return []T{}, nil
	}
	return wrapped.Data, nil
}
