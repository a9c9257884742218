package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth_Info(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/info", http.NoBody)
	w := httptest.NewRecorder()

	health(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("health() status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if body != "Health Ok!" {
		t.Errorf("health() body = %q, want %q", body, "Health Ok!")
	}
}

func TestHealth_RegisterRoutes(t *testing.T) {
	h := NewHealth()

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/info", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("registered /info status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "Health Ok!" {
		t.Errorf("registered /info body = %q, want %q", w.Body.String(), "Health Ok!")
	}
}
