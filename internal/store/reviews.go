package store

import (
	"context"
	"net/http"
	"strings"
)

// Review is customer feedback tied to a past booking. booking_id is the
// populated booking reference carrying the reviewer's contact details.
type Review struct {
	ID          string  `json:"_id"`
	Rating      float64 `json:"rating"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	Booking     Contact `json:"booking_id"`
}

func (r Review) ItemID() string { return r.ID }

func (r Review) SearchText() string {
	return strings.Join([]string{r.Title, r.Description, r.Booking.Name}, " ")
}

type ReviewStore struct {
	client *Client
}

func (s *ReviewStore) List(ctx context.Context, businessType, businessID string) ([]Review, error) {
	raw, err := s.client.request(ctx, http.MethodGet, "/review/"+businessType+"/"+businessID, nil, nil, true)
	if err != nil {
		return nil, err
	}
	return decodeList[Review](raw)
}

// AverageRating is the headline figure shown above a review list. Zero when
// there are no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
