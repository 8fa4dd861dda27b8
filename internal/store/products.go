package store

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Product is a shop catalog item. Both image fields are strings for this
// resource kind: image_url is a single URL and images is a comma-joined
// list. The shop endpoints never learned the array encoding, so the client
// keeps sending the joined form.
type Product struct {
	ID              string  `json:"_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ImageURL        string  `json:"image_url"`
	Images          string  `json:"images"`
	IsDeleted       bool    `json:"is_deleted"`
	ShopID          string  `json:"shop_id"`
}

func (p Product) ItemID() string { return p.ID }

func (p Product) SearchText() string {
	return strings.Join([]string{p.Name, p.Description, strconv.FormatFloat(p.Price, 'f', -1, 64)}, " ")
}

type ProductPayload struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ImageURL        string  `json:"image_url"`
	Images          string  `json:"images"`
	ShopID          string  `json:"shop_id" validate:"required"`
}

type ProductStore struct {
	client *Client
}

func (s *ProductStore) List(ctx context.Context, shopID string) ([]Product, error) {
	q := url.Values{}
	if shopID != "" {
		q.Set("shop_id", shopID)
	}
	raw, err := s.client.request(ctx, http.MethodGet, "/product", q, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeList[Product](raw)
}

func (s *ProductStore) Create(ctx context.Context, payload ProductPayload) (*Product, error) {
	if err := Validate.Struct(payload); err != nil {
		return nil, err
	}
	raw, err := s.client.request(ctx, http.MethodPost, "/product", nil, payload, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](raw)
}

func (s *ProductStore) Update(ctx context.Context, id string, payload ProductPayload) (*Product, error) {
	if err := Validate.Struct(payload); err != nil {
		return nil, err
	}
	raw, err := s.client.request(ctx, http.MethodPut, "/product/"+id, nil, payload, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](raw)
}

func (s *ProductStore) SetAvailability(ctx context.Context, id string, deleted bool) error {
	body := map[string]bool{"is_deleted": deleted}
	return s.client.doJSON(ctx, http.MethodPut, "/product/"+id, nil, body, nil, true)
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/product/"+id, nil, nil, nil, true)
}
