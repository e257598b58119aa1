package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/cryptoassets/portal/internal/api/middleware"
)

func requestWithSymbol(symbol string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rctx := chi.NewRouteContext()
	if symbol != "" {
		rctx.URLParams.Add("symbol", symbol)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestValidateSymbolMiddleware(t *testing.T) {
	t.Run("passes through a valid symbol", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})

		mw := middleware.ValidateSymbolMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithSymbol("BTC"))

		if !handlerCalled {
			t.Error("Expected next handler to be called")
		}
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("normalizes case before validating", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})

		mw := middleware.ValidateSymbolMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithSymbol("btc"))

		if !handlerCalled {
			t.Error("Expected lowercase symbol to pass after normalization")
		}
	})

	t.Run("returns 400 for a malformed symbol", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
		})

		mw := middleware.ValidateSymbolMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithSymbol("B!C"))

		if handlerCalled {
			t.Error("Expected next handler NOT to be called")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for a missing symbol", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
		})

		mw := middleware.ValidateSymbolMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithSymbol(""))

		if handlerCalled {
			t.Error("Expected next handler NOT to be called")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
