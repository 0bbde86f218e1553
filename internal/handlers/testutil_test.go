package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tdinh-lab/stock-advisor/internal/db"
	"github.com/tdinh-lab/stock-advisor/internal/services"
)

// setupRouter builds the full router over a fresh in-memory database.
func setupRouter(t *testing.T) *mux.Router {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database := &db.DB{DB: gdb}
	require.NoError(t, db.Migrate(database))
	t.Cleanup(func() { database.Close() })

	market := services.NewMarketService()
	users := services.NewUserService(database)
	portfolios := services.NewPortfolioService(database, market)

	return NewRouter(users, portfolios, market, zap.NewNop())
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, router *mux.Router) int {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/register", map[string]any{
		"username": "alice",
		"password": "secret",
		"name":     "Alice",
		"email":    "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	user := decodeBody(t, rec)["user"].(map[string]any)
	return int(user["id"].(float64))
}

func createPortfolio(t *testing.T, router *mux.Router, userID int) int {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/portfolios", map[string]any{
		"user_id": userID,
		"name":    "Growth",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	portfolio := decodeBody(t, rec)["portfolio"].(map[string]any)
	return int(portfolio["id"].(float64))
}
