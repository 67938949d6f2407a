package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skyvoyage/booking-api/internal/domain/user"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro ao criar serviço: %v", err)
	}
	return svc
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("alice", "alice@example.com", "senha123")
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}
	return u
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)
	u := newTestUser(t)

	token, err := svc.GenerateToken(u)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}

	if claims.UserID != u.ID {
		t.Errorf("user_id esperado %s, obtido %s", u.ID, claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("username esperado alice, obtido %s", claims.Username)
	}
	if claims.Role != string(user.RoleCustomer) {
		t.Errorf("papel esperado customer, obtido %s", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.ValidateToken("nao-e-um-token"); err == nil {
		t.Fatal("token inválido deveria ser rejeitado")
	}
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := NewJWTService(); err != ErrMissingJWTKey {
		t.Errorf("erro esperado ErrMissingJWTKey, obtido %v", err)
	}
}

func TestTokenFromRequestSources(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    string
		wantErr bool
	}{
		{
			name: "cabeçalho Bearer",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer token-do-header")
			},
			want: "token-do-header",
		},
		{
			name: "cookie de sessão",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-do-cookie"})
			},
			want: "token-do-cookie",
		},
		{
			name: "parâmetro de query",
			prepare: func(r *http.Request) {
				q := r.URL.Query()
				q.Set("token", "token-da-query")
				r.URL.RawQuery = q.Encode()
			},
			want: "token-da-query",
		},
		{
			name: "cabeçalho tem precedência sobre o cookie",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer token-do-header")
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-do-cookie"})
			},
			want: "token-do-header",
		},
		{
			name: "cabeçalho malformado",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "token-sem-esquema")
			},
			wantErr: true,
		},
		{
			name:    "sem credencial",
			prepare: func(r *http.Request) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			tt.prepare(r)

			got, err := TokenFromRequest(r)
			if tt.wantErr {
				if err == nil {
					t.Fatal("erro esperado")
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if got != tt.want {
				t.Errorf("token esperado %s, obtido %s", tt.want, got)
			}
		})
	}
}
