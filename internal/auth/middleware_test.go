package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func guardedRouter(tokens *Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireToken(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return r
}

func TestRequireToken_MissingHeader(t *testing.T) {
	r := guardedRouter(NewIssuer("user", "k", time.Hour))

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireToken_InvalidToken(t *testing.T) {
	r := guardedRouter(NewIssuer("user", "k", time.Hour))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireToken_WrongTier(t *testing.T) {
	admin := NewIssuer("admin", "admin-secret", time.Hour)
	r := guardedRouter(NewIssuer("user", "user-secret", time.Hour))

	tok, err := admin.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong-tier token, got %d", w.Code)
	}
}

func TestRequireToken_Valid(t *testing.T) {
	tokens := NewIssuer("user", "k", time.Hour)
	r := guardedRouter(tokens)

	tok, err := tokens.Issue("64f1b2c3d4e5f60708090a0b")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	// Raw header value, no Bearer prefix.
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	want := `"userId":"64f1b2c3d4e5f60708090a0b"`
	if body := w.Body.String(); !strings.Contains(body, want) {
		t.Fatalf("expected body to contain %s, got %s", want, body)
	}
}
