package store

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/vijayguhan10/fourtrip-partner/internal/session"
)

func TestLoginSuccess(t *testing.T) {
	var got loginRequest
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		decodeBody(t, r, &got)
		w.Write([]byte(`{"token":"tok-1","user":{"_id":"partner-1"},"message":"Login successful"}`))
	}))

	auth := &AuthStore{c}
	res, err := auth.Login(context.Background(), "9812345678", "secret", session.RoleShop)
	if err != nil {
		t.Fatal(err)
	}
	if res.Token != "tok-1" || res.PartnerID != "partner-1" {
		t.Fatalf("got %+v", res)
	}
	// the role goes out capitalized
	if got.Role != "Shop" {
		t.Fatalf("role sent as %q", got.Role)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the backend reports bad credentials with 200 and a message
		w.Write([]byte(`{"message":"Invalid phone number or password"}`))
	}))

	auth := &AuthStore{c}
	_, err := auth.Login(context.Background(), "9812345678", "wrong", session.RoleRestaurant)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginMissingTokenIsShapeMismatch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","user":{"_id":"partner-1"}}`))
	}))

	auth := &AuthStore{c}
	_, err := auth.Login(context.Background(), "9812345678", "secret", session.RoleRestaurant)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestLoginValidatesInput(t *testing.T) {
	hit := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))

	auth := &AuthStore{c}
	if _, err := auth.Login(context.Background(), "", "secret", session.RoleRestaurant); err == nil {
		t.Fatal("blank phone should fail validation")
	}
	if hit {
		t.Fatal("invalid login must not reach the backend")
	}
}

func TestProfileFetch(t *testing.T) {
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/profile" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"_id":"partner-1","role_id":"biz-9","canReserve":true,
			"business_name":"Everest Kitchen","owner_name":"Anita",
			"businessHours":{"days":["Mon","Tue"],"openingTime":"10:00","closingTime":"21:00"}
		}`))
	}))
	signIn(t, sess)

	auth := &AuthStore{c}
	profile, err := auth.Profile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if profile.RoleID != "biz-9" || !profile.CanReserve {
		t.Fatalf("got %+v", profile)
	}
	if profile.BusinessHours.OpeningTime != "10:00" {
		t.Fatalf("business hours not decoded: %+v", profile.BusinessHours)
	}
}

func TestUpdateProfilePatch(t *testing.T) {
	var got map[string]any
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/auth/partner-1" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		decodeBody(t, r, &got)
		w.Write([]byte(`{}`))
	}))
	signIn(t, sess)

	auth := &AuthStore{c}
	err := auth.UpdateProfile(context.Background(), "partner-1", ProfilePatch{"canReserve": false})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := got["canReserve"].(bool); !ok || v {
		t.Fatalf("patch body %v", got)
	}
}

func TestRegisterPostsToRolePath(t *testing.T) {
	var gotPath string
	var got RegisterPayload
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		decodeBody(t, r, &got)
		w.Write([]byte(`{"success":true}`))
	}))

	auth := &AuthStore{c}
	payload := RegisterPayload{
		Name:         "Anita",
		Email:        "anita@example.com",
		PhoneNumber:  "9812345678",
		Password:     "secret1",
		BusinessName: "Everest Kitchen",
		OwnerName:    "Anita",
		LocationID:   "loc-1",
	}
	if err := auth.Register(context.Background(), session.RoleRestaurant, payload); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/restaurant" {
		t.Fatalf("posted to %s", gotPath)
	}
	if !got.IsNew {
		t.Fatal("registration should always go out flagged as new")
	}
}
