package middleware

import (
	"StuffKeeper/internal/identity"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// next-хендлер отвечает 200, если в контексте есть токен, иначе 204
func credentialProbe(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := identity.CredentialFromContext(r.Context()); ok {
			*got = c
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// Тест: валидный bearer-токен попадает в контекст
func TestWithAuth_ValidTokenSetsCredential(t *testing.T) {
	const secret = "test-secret"
	token := signToken(t, secret, jwt.MapClaims{"sub": "u-1", "exp": time.Now().Add(time.Hour).Unix()})

	var got string
	h := WithAuth(secret, "", "")(credentialProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
	if got != token {
		t.Fatalf("credential mismatch: %q", got)
	}
}

// Тест: схема Bearer распознаётся без учёта регистра
func TestWithAuth_SchemeCaseInsensitive(t *testing.T) {
	const secret = "test-secret"
	token := signToken(t, secret, jwt.MapClaims{"sub": "u-1"})

	var got string
	h := WithAuth(secret, "", "")(credentialProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: без заголовка запрос остаётся анонимным
func TestWithAuth_NoHeaderLeavesAnonymous(t *testing.T) {
	var got string
	h := WithAuth("any-secret", "", "")(credentialProbe(&got))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected anonymous request, got %d", rr.Code)
	}
}

func TestWithAuth_RejectedTokens(t *testing.T) {
	const secret = "secret-B"
	cases := map[string]string{
		"wrong secret":   signToken(t, "secret-A", jwt.MapClaims{"sub": "u-1"}),
		"expired":        signToken(t, secret, jwt.MapClaims{"sub": "u-1", "exp": time.Now().Add(-time.Minute).Unix()}),
		"wrong issuer":   signToken(t, secret, jwt.MapClaims{"sub": "u-1", "iss": "someone-else", "aud": "stuff-api"}),
		"wrong audience": signToken(t, secret, jwt.MapClaims{"sub": "u-1", "iss": "idp", "aud": "other-api"}),
		"garbage":        "not-a-jwt",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			var got string
			h := WithAuth(secret, "idp", "stuff-api")(credentialProbe(&got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusNoContent {
				t.Fatalf("token must be ignored, got %d", rr.Code)
			}
		})
	}
}

func TestWithAuth_NoneAlgorithmRejected(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	var got string
	h := WithAuth("secret", "", "")(credentialProbe(&got))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("alg none must be rejected, got %d", rr.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "unauthorized" {
		t.Fatalf("unexpected body: %v", body)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(identity.WithCredential(req.Context(), "tok"))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with credential, got %d", rr.Code)
	}
}
