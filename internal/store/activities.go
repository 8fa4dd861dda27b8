package store

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// Activity is a bookable activity listing ("task" on the wire). Unlike the
// shop/restaurant kinds, its list fields are true JSON arrays.
type Activity struct {
	ID                 string         `json:"_id"`
	Name               string         `json:"name"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Price              float64        `json:"price"`
	DiscountPercentage float64        `json:"discount_percentage"`
	Available          bool           `json:"available"`
	IsDeleted          bool           `json:"is_deleted"`
	ImageURL           []string       `json:"image_url"`
	Slots              []string       `json:"slots"`
	WhatsIncluded      []string       `json:"whatsincluded"`
	AdditionalInfo     AdditionalInfo `json:"additional_info"`
	ActivityID         string         `json:"activity_id"`
}

// AdditionalInfo holds the free-text detail fields of an activity listing.
// Absent fields decode to "" so edit forms never see missing keys.
type AdditionalInfo struct {
	Duration       string `json:"duration"`
	AgeRequirement string `json:"agerequirement"`
	DressCode      string `json:"dresscode"`
	Accessibility  string `json:"accessibility"`
	Difficulty     string `json:"difficulty"`
}

func (a Activity) ItemID() string { return a.ID }

func (a Activity) SearchText() string {
	// some listings carry title, older ones only name
	return strings.Join([]string{a.Title, a.Name, a.Description, strconv.FormatFloat(a.Price, 'f', -1, 64)}, " ")
}

type ActivityPayload struct {
	Name               string         `json:"name" validate:"required"`
	Description        string         `json:"description" validate:"required"`
	WhatsIncluded      []string       `json:"whatsincluded"`
	AdditionalInfo     AdditionalInfo `json:"additional_info"`
	Price              float64        `json:"price"`
	Slots              []string       `json:"slots"`
	DiscountPercentage float64        `json:"discount_percentage"`
	ActivityID         string         `json:"activity_id" validate:"required"`
	ImageURL           []string       `json:"image_url"`
}

type ActivityStore struct {
	client *Client
}

func (s *ActivityStore) List(ctx context.Context) ([]Activity, error) {
	raw, err := s.client.request(ctx, http.MethodGet, "/task", nil, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeList[Activity](raw)
}

func (s *ActivityStore) Create(ctx context.Context, payload ActivityPayload) (*Activity, error) {
	if err := Validate.Struct(payload); err != nil {
		return nil, err
	}
	raw, err := s.client.request(ctx, http.MethodPost, "/task", nil, payload, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Activity](raw)
}

func (s *ActivityStore) Update(ctx context.Context, id string, payload ActivityPayload) (*Activity, error) {
	if err := Validate.Struct(payload); err != nil {
		return nil, err
	}
	raw, err := s.client.request(ctx, http.MethodPut, "/task/"+id, nil, payload, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Activity](raw)
}

func (s *ActivityStore) SetAvailability(ctx context.Context, id string, deleted bool) error {
	body := map[string]bool{"is_deleted": deleted}
	return s.client.doJSON(ctx, http.MethodPut, "/task/"+id, nil, body, nil, true)
}

// Delete removes the listing for good. Earlier portal builds only pretended
// to delete activities; this is the real DELETE.
func (s *ActivityStore) Delete(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/task/"+id, nil, nil, nil, true)
}
