package store

import (
	"context"
	"io"

	"github.com/vijayguhan10/fourtrip-partner/internal/session"
)

// Storage aggregates every remote resource the partner portal works with.
// The backing "database" is the FourTrip backend; each store wraps the REST
// contract of one resource kind, including its historical payload encoding.
type Storage struct {
	Auth interface {
		Login(ctx context.Context, phone, password string, role session.Role) (*LoginResult, error)
		Profile(ctx context.Context) (*Profile, error)
		UpdateProfile(ctx context.Context, partnerID string, patch ProfilePatch) error
		Register(ctx context.Context, role session.Role, payload RegisterPayload) error
	}
	Dishes interface {
		List(ctx context.Context, restaurantID string) ([]Dish, error)
		Create(ctx context.Context, payload DishPayload) (*Dish, error)
		Update(ctx context.Context, id string, payload DishPayload) (*Dish, error)
		SetAvailability(ctx context.Context, id string, deleted bool) error
		Delete(ctx context.Context, id string) error
	}
	Products interface {
		List(ctx context.Context, shopID string) ([]Product, error)
		Create(ctx context.Context, payload ProductPayload) (*Product, error)
		Update(ctx context.Context, id string, payload ProductPayload) (*Product, error)
		SetAvailability(ctx context.Context, id string, deleted bool) error
		Delete(ctx context.Context, id string) error
	}
	Activities interface {
		List(ctx context.Context) ([]Activity, error)
		Create(ctx context.Context, payload ActivityPayload) (*Activity, error)
		Update(ctx context.Context, id string, payload ActivityPayload) (*Activity, error)
		SetAvailability(ctx context.Context, id string, deleted bool) error
		Delete(ctx context.Context, id string) error
	}
	Bookings interface {
		ListForBusiness(ctx context.Context, businessID, businessType string) (*BookingBuckets, error)
		UpdateStatus(ctx context.Context, id, status string) error
	}
	Reviews interface {
		List(ctx context.Context, businessType, businessID string) ([]Review, error)
	}
	Locations interface {
		List(ctx context.Context) ([]Location, error)
		Search(ctx context.Context, term string) ([]Location, error)
	}
	Uploads interface {
		Upload(ctx context.Context, name string, r io.Reader) (string, error)
		UploadAll(ctx context.Context, files []File) (*UploadResult, error)
	}
}

func NewStorage(c *Client) (Storage, error) {
	locations, err := newLocationStore(c)
	if err != nil {
		return Storage{}, err
	}
	return Storage{
		Auth:       &AuthStore{c},
		Dishes:     &DishStore{c},
		Products:   &ProductStore{c},
		Activities: &ActivityStore{c},
		Bookings:   &BookingStore{c},
		Reviews:    &ReviewStore{c},
		Locations:  locations,
		Uploads:    &UploadStore{c},
	}, nil
}
