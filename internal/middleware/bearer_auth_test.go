package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/symposio/media-service-go/internal/api_context"
)

func newTestKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemBytes)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func baseClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":   "core",
		"aud":   "medias",
		"sub":   "user-42",
		"roles": []string{"editor"},
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(5 * time.Minute).Unix(),
	}
}

func TestWithBearerAuth_PassthroughWhenUnconfigured(t *testing.T) {
	called := false
	h := WithBearerAuth("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/medias/abc", nil))

	if !called {
		t.Error("next handler not reached without a configured key")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusOK)
	}
}

func TestWithBearerAuth_ValidToken(t *testing.T) {
	key, pubPEM := newTestKeyPair(t)

	var gotUser string
	var gotRoles []string
	h := WithBearerAuth(pubPEM)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = api_context.AuthUserIDFromContext(r.Context())
		gotRoles, _ = api_context.AuthRolesFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/medias/abc", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, baseClaims()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if gotUser != "user-42" {
		t.Errorf("auth user = %q; want user-42", gotUser)
	}
	if len(gotRoles) != 1 || gotRoles[0] != "editor" {
		t.Errorf("roles = %v; want [editor]", gotRoles)
	}
}

func TestWithBearerAuth_Rejections(t *testing.T) {
	key, pubPEM := newTestKeyPair(t)
	otherKey, _ := newTestKeyPair(t)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "missing header",
			token: func(t *testing.T) string { return "" },
		},
		{
			name:  "garbage token",
			token: func(t *testing.T) string { return "not.a.jwt" },
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				return signToken(t, otherKey, baseClaims())
			},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := baseClaims()
				c["iss"] = "someone-else"
				return signToken(t, key, c)
			},
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				c := baseClaims()
				c["aud"] = "billing"
				return signToken(t, key, c)
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := baseClaims()
				c["iat"] = time.Now().Add(-time.Hour).Unix()
				c["exp"] = time.Now().Add(-time.Minute).Unix()
				return signToken(t, key, c)
			},
		},
		{
			name: "missing sub",
			token: func(t *testing.T) string {
				c := baseClaims()
				delete(c, "sub")
				return signToken(t, key, c)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			h := WithBearerAuth(pubPEM)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/medias/abc", nil)
			if tok := tc.token(t); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
			}
			if called {
				t.Error("next handler must not run for a rejected token")
			}
		})
	}
}
