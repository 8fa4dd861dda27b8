package store

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Dish is a restaurant menu item. Note image_url is a comma-joined string of
// URLs here; that is the historical encoding for this resource kind and the
// backend expects it back in the same form.
type Dish struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discounted_price"`
	ImageURL        string   `json:"image_url"`
	IsActive        bool     `json:"is_active"`
	IsDeleted       bool     `json:"is_deleted"`
	RestaurantID    string   `json:"restaurant_id"`
	Filter          []string `json:"filter"`
}

func (d Dish) ItemID() string { return d.ID }

func (d Dish) SearchText() string {
	return strings.Join([]string{d.Name, d.Description, strconv.FormatFloat(d.Price, 'f', -1, 64)}, " ")
}

// DishPayload is the create/update body for dishes. filter goes out as a
// true array, image_url stays a comma-joined string.
type DishPayload struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discounted_price"`
	ImageURL        string   `json:"image_url"`
	IsActive        bool     `json:"is_active"`
	RestaurantID    string   `json:"restaurant_id" validate:"required"`
	Filter          []string `json:"filter"`
}

type DishStore struct {
	client *Client
}

// List fetches the restaurant's dishes. The endpoint is public; scoping is
// just the restaurant_id query parameter.
func (s *DishStore) List(ctx context.Context, restaurantID string) ([]Dish, error) {
	q := url.Values{}
	if restaurantID != "" {
		q.Set("restaurant_id", restaurantID)
	}
	raw, err := s.client.request(ctx, http.MethodGet, "/dish", q, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeList[Dish](raw)
}

func (s *DishStore) Create(ctx context.Context, payload DishPayload) (*Dish, error) {
	if err := Validate.Struct(payload); err != nil {
		return nil, err
	}
	raw, err := s.client.request(ctx, http.MethodPost, "/dish", nil, payload, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Dish](raw)
}

func (s *DishStore) Update(ctx context.Context, id string, payload DishPayload) (*Dish, error) {
	if err := Validate.Struct(payload); err != nil {
		return nil, err
	}
	raw, err := s.client.request(ctx, http.MethodPut, "/dish/"+id, nil, payload, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Dish](raw)
}

// SetAvailability flips the soft-delete flag. This is the availability
// toggle, not a removal; see Delete for the hard delete.
func (s *DishStore) SetAvailability(ctx context.Context, id string, deleted bool) error {
	body := map[string]bool{"is_deleted": deleted}
	return s.client.doJSON(ctx, http.MethodPut, "/dish/"+id, nil, body, nil, true)
}

func (s *DishStore) Delete(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/dish/"+id, nil, nil, nil, true)
}
