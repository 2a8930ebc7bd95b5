package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

type fakeTokens struct {
	token string
}

func (f fakeTokens) Get() (string, bool) {
	return f.token, f.token != ""
}

func TestClient_AttachesBearerToken(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		auth         bool
		expectedAuth string
	}{
		{
			name:         "auth request with token",
			token:        "tok-1",
			auth:         true,
			expectedAuth: "Bearer tok-1",
		},
		{
			name:         "auth request without token goes out bare",
			token:        "",
			auth:         true,
			expectedAuth: "",
		},
		{
			name:         "unauthenticated request never carries the token",
			token:        "tok-1",
			auth:         false,
			expectedAuth: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth, gotContentType string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotContentType = r.Header.Get("Content-Type")
				w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, fakeTokens{token: tt.token})
			if _, err := c.Request(context.Background(), http.MethodGet, "/x", nil, tt.auth); err != nil {
				t.Fatalf("Request() error = %v", err)
			}

			if gotAuth != tt.expectedAuth {
				t.Errorf("Authorization = %q, want %q", gotAuth, tt.expectedAuth)
			}
			if gotContentType != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", gotContentType)
			}
		})
	}
}

func TestClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"title is required"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Request(context.Background(), http.MethodPost, "/posts", map[string]string{}, true)

	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("error = %v, want *HTTPError", err)
	}
	if he.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", he.Status)
	}
	if he.Error() != "title is required" {
		t.Errorf("Error() = %q, want the server message", he.Error())
	}
	if !IsStatus(err, 422) {
		t.Error("IsStatus(err, 422) = false, want true")
	}
	if IsStatus(err, 404) {
		t.Error("IsStatus(err, 404) = true, want false")
	}
}

func TestClient_HTTPErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Request(context.Background(), http.MethodGet, "/x", nil, false)

	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("error = %v, want *HTTPError", err)
	}
	if he.Error() != "api request failed (500)" {
		t.Errorf("Error() = %q, want the templated fallback", he.Error())
	}
}

func TestClient_EmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	raw, err := c.Request(context.Background(), http.MethodDelete, "/posts/1", nil, true)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if raw != nil {
		t.Errorf("raw = %s, want nil for empty success body", raw)
	}
}

func TestClient_NonJSONSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	raw, err := c.Request(context.Background(), http.MethodGet, "/x", nil, false)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if raw != nil {
		t.Errorf("raw = %s, want nil for non-JSON success body", raw)
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient(srv.URL, nil)
	_, err := c.Request(context.Background(), http.MethodGet, "/x", nil, false)

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
	if ne.Unwrap() == nil {
		t.Error("Unwrap() = nil, want the transport error")
	}
}

func TestClient_GetEncodesQuery(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	q := url.Values{}
	q.Set("search", "hello world")
	q.Set("limit", "40")
	if _, err := c.Get(context.Background(), "/posts", q, false); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if gotQuery.Get("search") != "hello world" {
		t.Errorf("search = %q, want %q", gotQuery.Get("search"), "hello world")
	}
	if gotQuery.Get("limit") != "40" {
		t.Errorf("limit = %q, want %q", gotQuery.Get("limit"), "40")
	}
}
