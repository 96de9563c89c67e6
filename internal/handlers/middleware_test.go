package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notesapi/internal/models"
	"notesapi/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.identityMiddleware, func(c *gin.Context) {
		uid, _ := currentUserID(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": uid})
	})
	return r
}

// Every identity failure must produce the same status and body so callers
// cannot tell a missing header from a forged token from a deleted user.
func TestIdentityMiddleware_UniformFailure(t *testing.T) {
	cases := []struct {
		name   string
		header string
		auth   *mockAuth
	}{
		{
			name:   "missing header",
			header: "",
			auth:   &mockAuth{},
		},
		{
			name:   "invalid scheme",
			header: "Token abc",
			auth:   &mockAuth{},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			auth:   &mockAuth{},
		},
		{
			name:   "invalid or expired token",
			header: "Bearer expired",
			auth:   &mockAuth{resolveErr: service.ErrUnauthenticated},
		},
		{
			name:   "subject no longer resolves",
			header: "Bearer dangling",
			auth:   &mockAuth{resolveErr: service.ErrUnauthenticated},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{Authorization: tc.auth}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401 (body=%s)", w.Code, w.Body.String())
			}

			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != errCredentials {
				t.Fatalf("error message: got %q, want %q", out.Error, errCredentials)
			}
		})
	}
}

func TestIdentityMiddleware_SuccessSetsUserIDAndProceeds(t *testing.T) {
	auth := &mockAuth{resolveUser: &models.User{ID: 123, Username: "alice"}}
	s := &service.Service{Authorization: auth}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool `json:"ok"`
		UserID int  `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 123 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastResolveToken != "good-token" {
		t.Fatalf("ResolveUser got %q, want %q", auth.lastResolveToken, "good-token")
	}
}
