package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vijayguhan10/fourtrip-partner/internal/session"
)

// invalidCredentialsMessage is the backend's login failure signal. There is
// no distinct status code contract; the literal message is the contract.
const invalidCredentialsMessage = "Invalid phone number or password"

type LoginResult struct {
	Token     string
	PartnerID string
}

// Profile is the authenticated partner's business record.
type Profile struct {
	ID            string        `json:"_id"`
	RoleID        string        `json:"role_id"`
	CanReserve    bool          `json:"canReserve"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	PhoneNumber   string        `json:"phone_number"`
	BusinessName  string        `json:"business_name"`
	OwnerName     string        `json:"owner_name"`
	ImageURL      []string      `json:"image_url"`
	LogoURL       string        `json:"logo_url"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Pincode       string        `json:"pincode"`
	BusinessHours BusinessHours `json:"businessHours"`
	LocationID    string        `json:"location_id"`
}

type BusinessHours struct {
	Days        []string `json:"days"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
}

// ProfilePatch is a partial profile update. Optional password rotation rides
// along as currentPassword/newPassword entries.
type ProfilePatch map[string]any

// RegisterPayload is the business onboarding form, posted to the vertical's
// own signup path.
type RegisterPayload struct {
	Name          string        `json:"name" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	PhoneNumber   string        `json:"phone_number" validate:"required,len=10,numeric"`
	Password      string        `json:"password" validate:"required,min=6,max=72"`
	BusinessName  string        `json:"business_name" validate:"required"`
	OwnerName     string        `json:"owner_name" validate:"required"`
	ImageURL      []string      `json:"image_url"`
	LogoURL       string        `json:"logo_url"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Pincode       string        `json:"pincode"`
	BusinessHours BusinessHours `json:"businessHours"`
	LocationID    string        `json:"location_id" validate:"required"`
	IsNew         bool          `json:"isNew"`
}

type AuthStore struct {
	client *Client
}

type loginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

// Login exchanges phone/password for a bearer token scoped to role. The
// caller is responsible for starting the session afterwards.
func (s *AuthStore) Login(ctx context.Context, phone, password string, role session.Role) (*LoginResult, error) {
	req := loginRequest{PhoneNumber: phone, Password: password, Role: role.Label()}
	if err := Validate.Struct(req); err != nil {
		return nil, err
	}

	var res struct {
		Token   string `json:"token"`
		Message string `json:"message"`
		User    struct {
			ID string `json:"_id"`
		} `json:"user"`
	}
	if err := s.client.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &res, false); err != nil {
		return nil, err
	}

	if res.Message == invalidCredentialsMessage {
		return nil, ErrInvalidCredentials
	}
	if res.Token == "" || res.User.ID == "" {
		return nil, fmt.Errorf("login response missing token or user id: %w", ErrShapeMismatch)
	}

	return &LoginResult{Token: res.Token, PartnerID: res.User.ID}, nil
}

// Profile fetches the signed-in partner's business record.
func (s *AuthStore) Profile(ctx context.Context) (*Profile, error) {
	raw, err := s.client.request(ctx, http.MethodGet, "/auth/profile", nil, nil, true)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Profile](raw)
}

// UpdateProfile applies a partial update to the partner record, including
// the canReserve toggle and optional password rotation.
func (s *AuthStore) UpdateProfile(ctx context.Context, partnerID string, patch ProfilePatch) error {
	return s.client.doJSON(ctx, http.MethodPut, "/auth/"+partnerID, nil, patch, nil, true)
}

// Register creates a new partner account on the vertical's signup path.
func (s *AuthStore) Register(ctx context.Context, role session.Role, payload RegisterPayload) error {
	if err := Validate.Struct(payload); err != nil {
		return err
	}
	payload.IsNew = true
	return s.client.doJSON(ctx, http.MethodPost, "/"+string(role), nil, payload, nil, false)
}
