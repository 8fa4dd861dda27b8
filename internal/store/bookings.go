package store

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Booking statuses as the backend spells them.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// Booking is one reservation row. The customer fields arrive nested under
// booking_id (a populated reference on the backend).
type Booking struct {
	ID       string  `json:"_id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Guests   int     `json:"guests"`
	Status   string  `json:"status"`
	Customer Contact `json:"booking_id"`
}

type Contact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (b Booking) ItemID() string { return b.ID }

func (b Booking) SearchText() string {
	return strings.Join([]string{b.Customer.Name, b.Customer.Email, b.Customer.PhoneNumber}, " ")
}

// bookingDateLayouts are the formats seen in reservation data over time.
// Date parses them in order; RFC3339 first since new rows are ISO.
var bookingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"Mon Jan 02 2006",
	"January 2, 2006",
}

// ParsedDate returns the booking date as a time.Time, or false when the raw
// string matches none of the known layouts. Rows with unparsable dates are
// kept, just not date-filterable.
func (b Booking) ParsedDate() (time.Time, bool) {
	raw := strings.TrimSpace(b.Date)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BookingBuckets mirrors the reservation listing response: active rows the
// partner still needs to act on, and the settled rest.
type BookingBuckets struct {
	Active   []Booking `json:"active"`
	Inactive []Booking `json:"inactive"`
}

type BookingStore struct {
	client *Client
}

func (s *BookingStore) ListForBusiness(ctx context.Context, businessID, businessType string) (*BookingBuckets, error) {
	raw, err := s.client.request(ctx, http.MethodGet, "/reservation/business/"+businessID+"/"+businessType, nil, nil, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[BookingBuckets](raw)
}

func (s *BookingStore) UpdateStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return s.client.doJSON(ctx, http.MethodPut, "/reservation/"+id, nil, body, nil, true)
}
