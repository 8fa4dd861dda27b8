package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vijayguhan10/fourtrip-partner/internal/session"
	"go.uber.org/zap"
)

// newTestClient stands up a fake backend and a client pointed at it. The
// returned session store is empty; call signIn to add a credential.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.NewStore(session.NewMemStorage())
	c := NewClient(srv.URL, sess, zap.NewNop().Sugar())
	return c, sess
}

func signIn(t *testing.T, sess *session.Store) {
	t.Helper()
	if err := sess.Start(session.RoleRestaurant, "tok-abc", "partner-1"); err != nil {
		t.Fatal(err)
	}
}

func TestRequestInjectsBearerToken(t *testing.T) {
	var gotAuth string
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	signIn(t, sess)

	if _, err := c.request(context.Background(), http.MethodGet, "/auth/profile", nil, nil, true); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("got Authorization %q", gotAuth)
	}
}

func TestRequestWithoutSessionNeverSent(t *testing.T) {
	hit := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))

	_, err := c.request(context.Background(), http.MethodGet, "/auth/profile", nil, nil, true)
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("got %v, want ErrAuthRequired", err)
	}
	if hit {
		t.Fatal("unauthenticated call must not reach the backend")
	}
}

func TestRequestErrorCarriesStatusAndBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("something broke\n"))
	}))

	_, err := c.request(context.Background(), http.MethodGet, "/dish", nil, nil, false)
	if err == nil {
		t.Fatal("expected error for 500")
	}
	if !strings.Contains(err.Error(), "http 500") || !strings.Contains(err.Error(), "something broke") {
		t.Fatalf("error should carry status and body, got %q", err)
	}
}

func TestDecodeListShapes(t *testing.T) {
	type item struct {
		ID string `json:"_id"`
	}

	t.Run("bare array", func(t *testing.T) {
		got, err := decodeList[item]([]byte(`[{"_id":"1"},{"_id":"2"}]`))
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[1].ID != "2" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("success envelope", func(t *testing.T) {
		got, err := decodeList[item]([]byte(`{"success":true,"data":[{"_id":"1"}]}`))
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].ID != "1" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("data-only envelope", func(t *testing.T) {
		got, err := decodeList[item]([]byte(`{"data":[{"_id":"1"}]}`))
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("anything else", func(t *testing.T) {
		if _, err := decodeList[item]([]byte(`{"rows":[]}`)); !errors.Is(err, ErrShapeMismatch) {
			t.Fatalf("got %v, want ErrShapeMismatch", err)
		}
	})
}

func TestDecodeEntityShapes(t *testing.T) {
	type entity struct {
		Name string `json:"name"`
	}

	got, err := decodeEntity[entity]([]byte(`{"name":"momo"}`))
	if err != nil || got.Name != "momo" {
		t.Fatalf("bare object: got %+v, %v", got, err)
	}

	got, err = decodeEntity[entity]([]byte(`{"success":true,"data":{"name":"momo"}}`))
	if err != nil || got.Name != "momo" {
		t.Fatalf("envelope: got %+v, %v", got, err)
	}

	if _, err := decodeEntity[entity]([]byte(`[1,2]`)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

// decodeBody reads the request body the fake backend captured.
func decodeBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Errorf("decode request body: %v", err)
	}
}
