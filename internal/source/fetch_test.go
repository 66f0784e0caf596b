package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

func TestSheetFetcherOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("SERVIDOR,PLAYER\nEU22,Kursliov\n"))
	}))
	defer srv.Close()

	text, err := NewSheetFetcher(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if text != "SERVIDOR,PLAYER\nEU22,Kursliov\n" {
		t.Errorf("unexpected body: %q", text)
	}
}

func TestSheetFetcherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewSheetFetcher(srv.URL).Fetch(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", statusErr.Code)
	}
}

func TestSheetFetcherRestrictedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><a href="https://accounts.google.com/signin">entrar</a></body></html>`))
	}))
	defer srv.Close()

	_, err := NewSheetFetcher(srv.URL).Fetch(context.Background())
	if !errors.Is(err, ErrRestricted) {
		t.Fatalf("expected ErrRestricted, got %v", err)
	}
}

func TestRestrictedMarkers(t *testing.T) {
	cases := []struct {
		body string
		want bool
	}{
		{"SERVIDOR,PLAYER\nEU22,x\n", false},
		{"Você precisa de permissão para acessar", true},
		{"this sheet is restricted", true},
		{"Sign in to continue", true},
		{"Não foi possível abrir o arquivo", true},
		{`<html><head></head>accounts.google.com</html>`, true},
		{"accounts.google.com mentioned in a note column", false}, // no HTML marker
	}

	for _, c := range cases {
		if got := Restricted(c.body); got != c.want {
			t.Errorf("Restricted(%q) = %v, want %v", c.body, got, c.want)
		}
	}
}

func TestSampleIsIndependentCopy(t *testing.T) {
	a := Sample()
	if len(a) != 5 {
		t.Fatalf("expected 5 sample records, got %d", len(a))
	}

	a[0][model.FieldPlayer] = "mutated"
	b := Sample()
	if b[0].Field(model.FieldPlayer) == "mutated" {
		t.Error("Sample must return an independent copy")
	}
}
