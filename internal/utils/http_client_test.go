package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(0)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)

	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", got)
	}
}

func TestHTTPClient_CookiesAreSentBack(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/set" {
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc", Path: "/"})
			return
		}
		if c, err := r.Cookie("sid"); err == nil {
			gotCookie = c.Value
		}
	}))
	defer srv.Close()

	client := NewHTTPClient(time.Second)

	if _, err := client.R().Get(srv.URL + "/set"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.R().Get(srv.URL + "/check"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCookie != "abc" {
		t.Errorf("expected cookie 'abc' to be sent back, got '%s'", gotCookie)
	}
}
