package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("no token"), http.StatusUnauthorized},
		{"persistence", Persistence("create product", errors.New("conn refused")), http.StatusInternalServerError},
		{"ledger", Ledger("registerProduct", errors.New("timeout")), http.StatusInternalServerError},
		{"untagged", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestKindMatching(t *testing.T) {
	err := Persistence("save", errors.New("disk full"))
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected persistence kind")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		t.Fatalf("kind matched the wrong sentinel")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("register: %w", NotFound("no product"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found kind through wrapping")
	}
	if Status(err) != http.StatusNotFound {
		t.Fatalf("expected 404 through wrapping, got %d", Status(err))
	}
}

func TestPublicMessage_HidesPersistenceCause(t *testing.T) {
	err := Persistence("create product", errors.New("pq: password authentication failed"))
	msg := PublicMessage(err)
	if msg != "storage operation failed" {
		t.Fatalf("unexpected public message: %q", msg)
	}
	if strings.Contains(msg, "pq:") {
		t.Fatalf("public message leaks the cause: %q", msg)
	}
	// The full text stays available for logs.
	if !strings.Contains(err.Error(), "password authentication failed") {
		t.Fatalf("internal message lost the cause: %q", err.Error())
	}
}

func TestPublicMessage_KeepsClientFacingText(t *testing.T) {
	if got := PublicMessage(NotFound("product not found: AGR-1")); got != "product not found: AGR-1" {
		t.Fatalf("unexpected public message: %q", got)
	}
	if got := PublicMessage(Validation("productName is required")); got != "productName is required" {
		t.Fatalf("unexpected public message: %q", got)
	}
	if got := PublicMessage(nil); got != "" {
		t.Fatalf("expected empty message for nil, got %q", got)
	}
}
