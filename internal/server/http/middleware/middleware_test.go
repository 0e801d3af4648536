package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/mkarev/shopapi/internal/domain/errors"
	"github.com/mkarev/shopapi/internal/domain/model"
	pkgAuth "github.com/mkarev/shopapi/internal/pkg/auth"
	"github.com/mkarev/shopapi/internal/server/http/dto"
	testhelpers "github.com/mkarev/shopapi/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWith(t *testing.T, mw gin.HandlerFunc, req *http.Request, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Use(mw)
	if handler == nil {
		handler = func(c *gin.Context) { c.Status(http.StatusOK) }
	}
	router.Handle(req.Method, req.URL.Path, handler)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var msg dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &msg); err != nil {
		t.Fatalf("failed to decode message body %q: %v", resp.Body.String(), err)
	}
	return msg.Message
}

func TestAuthRequiredMissingToken(t *testing.T) {
	reached := false
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	resp := serveWith(t, AuthRequired(testhelpers.TokenParserStub{}), req, func(c *gin.Context) {
		reached = true
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
	if got := messageOf(t, resp); got != "Unauthorized" {
		t.Fatalf("unexpected message %q", got)
	}
	if reached {
		t.Fatal("handler must not run without a token")
	}
}

func TestAuthRequiredBearerToken(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	resp := serveWith(t, AuthRequired(testhelpers.TokenParserStub{ID: userID}), req, func(c *gin.Context) {
		val, ok := c.Get(UserIDContextKey)
		if !ok {
			t.Fatal("expected user id in context")
		}
		if got, _ := val.(uuid.UUID); got != userID {
			t.Fatalf("expected %s in context, got %s", userID, got)
		}
		c.Status(http.StatusOK)
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthRequiredCookieToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie-token"})

	resp := serveWith(t, AuthRequired(testhelpers.TokenParserStub{ID: uuid.New()}), req, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthRequiredFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "invalid token", err: pkgAuth.ErrInvalidToken, status: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "parser failure", err: errors.New("key store down"), status: http.StatusInternalServerError, message: "key store down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			req.Header.Set("Authorization", "Bearer broken")
			resp := serveWith(t, AuthRequired(testhelpers.TokenParserStub{Err: tt.err}), req, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := messageOf(t, resp); got != tt.message {
				t.Fatalf("unexpected message %q", got)
			}
		})
	}
}

func adminChain(parser TokenParser, users UserDirectory, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(AuthRequired(parser), AdminRequired(users))
	router.GET("/orders", handler)
	return router
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	adminID := uuid.New()
	directory := testhelpers.IdentityStub{User: &model.User{ID: adminID, Login: "admin", Role: model.RoleAdmin}}

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()
	adminChain(testhelpers.TokenParserStub{ID: adminID}, directory, func(c *gin.Context) {
		c.Status(http.StatusOK)
	}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAdminRequiredRejectsCustomerBeforeHandler(t *testing.T) {
	reached := false
	directory := testhelpers.IdentityStub{User: &model.User{ID: uuid.New(), Login: "user", Role: model.RoleCustomer}}

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()
	adminChain(testhelpers.TokenParserStub{ID: uuid.New()}, directory, func(c *gin.Context) {
		reached = true
	}).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
	var msg dto.MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil || msg.Message != "Forbidden" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
	if reached {
		t.Fatal("guarded handler must not run for non-admin callers")
	}
}

func TestAdminRequiredFailures(t *testing.T) {
	tests := []struct {
		name      string
		directory testhelpers.IdentityStub
		status    int
	}{
		{name: "unknown user", directory: testhelpers.IdentityStub{UserByIDFn: func(context.Context, uuid.UUID) (*model.User, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusUnauthorized},
		{name: "directory failure", directory: testhelpers.IdentityStub{UserByIDFn: func(context.Context, uuid.UUID) (*model.User, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			req.Header.Set("Authorization", "Bearer t")
			w := httptest.NewRecorder()
			adminChain(testhelpers.TokenParserStub{ID: uuid.New()}, tt.directory, func(c *gin.Context) {
				c.Status(http.StatusOK)
			}).ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestAdminRequiredWithoutAuthContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	resp := serveWith(t, AdminRequired(testhelpers.IdentityStub{}), req, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestSetAuthCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SetAuthCookie(c, "abc")

	if got := w.Header().Get("Authorization"); got != "Bearer abc" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), authCookieName+"=abc") {
		t.Fatalf("expected auth cookie, got %q", w.Header().Get("Set-Cookie"))
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"address":"123 Main St"}`)); err != nil {
		t.Fatalf("failed to compress body: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", &buf)
	req.Header.Set("Content-Encoding", "gzip")

	resp := serveWith(t, DecompressRequest(), req, func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		if string(body) != `{"address":"123 Main St"}` {
			t.Fatalf("unexpected body %q", body)
		}
		if c.GetHeader("Content-Encoding") != "" {
			t.Fatal("expected content encoding header to be dropped")
		}
		c.Status(http.StatusOK)
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestDecompressRequestRejectsBrokenPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")

	resp := serveWith(t, DecompressRequest(), req, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestDecompressRequestPassthrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("plain"))
	resp := serveWith(t, DecompressRequest(), req, func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		if string(body) != "plain" {
			t.Fatalf("unexpected body %q", body)
		}
		c.Status(http.StatusOK)
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	resp := serveWith(t, RequestLogger(logger), req, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log record: %v", err)
	}
	if record["method"] != http.MethodGet || record["path"] != "/products" {
		t.Fatalf("unexpected log record %v", record)
	}
	if record["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status in log record %v", record)
	}
}
