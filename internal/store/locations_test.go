package store

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
)

func TestLocationListCached(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"data":[{"_id":"1","name":"Pokhara","type":"city"},{"_id":"2","name":"Kathmandu","type":"city"}]}`))
	}))

	locations, err := newLocationStore(c)
	if err != nil {
		t.Fatal(err)
	}

	got, err := locations.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Pokhara" {
		t.Fatalf("got %+v", got)
	}

	// cache writes are buffered; settle before the second read
	locations.cache.Wait()

	if _, err := locations.List(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("backend hit %d times, want 1", n)
	}
}

func TestLocationSearch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"_id":"1","name":"Pokhara","type":"city"},
			{"_id":"2","name":"Kathmandu","type":"city"},
			{"_id":"3","name":"Kavre","type":"district"}
		]}`))
	}))

	locations, err := newLocationStore(c)
	if err != nil {
		t.Fatal(err)
	}

	got, err := locations.Search(context.Background(), " ka ")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Kathmandu" || got[1].Name != "Kavre" {
		t.Fatalf("got %+v", got)
	}

	all, err := locations.Search(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("blank term should return everything, got %d", len(all))
	}
}
