package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/domain/user"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := newTestService(t)

	router := gin.New()
	router.GET("/agent-only", JWTAuthMiddleware(svc), RoleAuthMiddleware(string(user.RoleAgent)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, svc
}

func tokenFor(t *testing.T, svc *JWTService, role user.Role) string {
	t.Helper()
	u := newTestUser(t)
	u.Role = role

	token, err := svc.GenerateToken(u)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}
	return token
}

func TestRoleMiddlewareAllowsAgent(t *testing.T) {
	router, svc := newProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agent-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, svc, user.RoleAgent))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("agente deveria acessar, status %d", w.Code)
	}
}

func TestRoleMiddlewareRejectsCustomer(t *testing.T) {
	router, svc := newProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agent-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, svc, user.RoleCustomer))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("cliente deveria receber 403, status %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router, _ := newProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agent-only", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("sem token deveria receber 401, status %d", w.Code)
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	router, svc := newProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agent-only", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tokenFor(t, svc, user.RoleAgent)})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("cookie de sessão deveria autenticar, status %d", w.Code)
	}
}
