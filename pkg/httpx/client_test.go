package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetJSON(t *testing.T) {
	t.Run("decodes a bare boolean body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("true"))
		}))
		defer srv.Close()

		var got bool
		if err := New(srv.URL, time.Second).GetJSON(context.Background(), "/flag", &got); err != nil {
			t.Fatalf("GetJSON: %v", err)
		}
		if !got {
			t.Fatal("got false, want true")
		}
	})

	t.Run("non-2xx becomes a StatusError with the message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"bad credentials"}`))
		}))
		defer srv.Close()

		err := New(srv.URL, time.Second).GetJSON(context.Background(), "/login", nil)

		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected StatusError, got %v", err)
		}
		if se.StatusCode != http.StatusUnauthorized || se.Message != "bad credentials" {
			t.Fatalf("got %+v", se)
		}
	})
}

func TestPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := New(srv.URL, time.Second).PostJSON(context.Background(), "/things", map[string]string{"a": "b"}, &out)
	if err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if !out.OK {
		t.Fatal("response not decoded")
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(srv.URL, time.Second).GetJSON(ctx, "/slow", nil); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
