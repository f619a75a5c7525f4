package handlers_test

import (
	"StuffKeeper/internal/config"
	"StuffKeeper/internal/handlers"
	"StuffKeeper/internal/identity"
	"StuffKeeper/internal/repo"
	"StuffKeeper/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type caller struct {
	ID, GivenName, FamilyName, Email string
}

var (
	alice = caller{ID: "idp-alice", GivenName: "Alice", FamilyName: "Liddell", Email: "alice@example.com"}
	bob   = caller{ID: "idp-bob", GivenName: "Bob", FamilyName: "Builder", Email: "bob@example.com"}
)

func (c caller) token(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         c.ID,
		"name":        c.GivenName + " " + c.FamilyName,
		"given_name":  c.GivenName,
		"family_name": c.FamilyName,
		"email":       c.Email,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

// newTestServer собирает полный роутер поверх отдельной in-memory SQLite базы.
func newTestServer(t *testing.T, env string) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := repo.InitDB(dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{AuthSecret: testSecret, Environment: env}
	logger := zap.NewNop().Sugar()

	resolver := identity.NewResolver(identity.NewClaimsSource(), nil, nil, logger)
	users := repo.NewUserRepository(db)
	stuffs := repo.NewStuffRepository(db)

	h := handlers.NewHandler(
		service.NewUserService(users, resolver, nil),
		service.NewStuffService(stuffs, users, resolver, nil),
		logger,
		cfg,
	)
	return h.Router
}

// do выполняет запрос; token == "": анонимный запрос.
func do(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[handlers.ErrorResponse](t, rr).Error
}
