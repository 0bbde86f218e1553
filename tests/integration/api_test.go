package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tdinh-lab/stock-advisor/internal/db"
	"github.com/tdinh-lab/stock-advisor/internal/handlers"
	"github.com/tdinh-lab/stock-advisor/internal/services"
)

func newServer(t *testing.T, database *db.DB) *httptest.Server {
	t.Helper()

	market := services.NewMarketService()
	users := services.NewUserService(database)
	portfolios := services.NewPortfolioService(database, market)

	server := httptest.NewServer(handlers.CORS(handlers.NewRouter(users, portfolios, market, zap.NewNop())))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	resp, err := http.Post(url, "application/json", &buf)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestEndToEndPortfolioFlow(t *testing.T) {
	tdb := setupTestDB(t)
	defer tdb.cleanup(t)

	require.NoError(t, db.Seed(tdb.database))
	server := newServer(t, tdb.database)

	// Seeded admin can log in and sees the demo portfolios.
	resp := postJSON(t, server.URL+"/api/login", map[string]any{
		"username": "admin",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	admin := decode(t, resp)["user"].(map[string]any)
	require.Len(t, admin["portfolios"].([]any), 2)

	// Register a fresh user.
	resp = postJSON(t, server.URL+"/api/register", map[string]any{
		"username": "bob",
		"password": "hunter2",
		"name":     "Bob",
		"email":    "bob@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bob := decode(t, resp)["user"].(map[string]any)
	bobID := int(bob["id"].(float64))

	// Create a portfolio and upsert the same symbol twice.
	resp = postJSON(t, server.URL+"/api/portfolios", map[string]any{
		"user_id": bobID,
		"name":    "Starter",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	portfolio := decode(t, resp)["portfolio"].(map[string]any)
	portfolioID := int(portfolio["id"].(float64))

	resp = postJSON(t, server.URL+"/api/stocks", map[string]any{
		"portfolio_id":   portfolioID,
		"symbol":         "NVDA",
		"shares":         1.5,
		"purchase_price": 700,
		"purchase_date":  "2024-01-02",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decode(t, resp)["stock"].(map[string]any)

	resp = postJSON(t, server.URL+"/api/stocks", map[string]any{
		"portfolio_id":   portfolioID,
		"symbol":         "NVDA",
		"shares":         3,
		"purchase_price": 750,
		"purchase_date":  "2024-03-02",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	second := decode(t, resp)["stock"].(map[string]any)
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, 3.0, second["shares"])

	// Login returns the updated tree.
	resp = postJSON(t, server.URL+"/api/login", map[string]any{
		"username": "bob",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decode(t, resp)["user"].(map[string]any)
	portfolios := user["portfolios"].([]any)
	require.Len(t, portfolios, 1)
	require.Len(t, portfolios[0].(map[string]any)["stocks"].([]any), 1)

	// Cascade delete.
	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/portfolios/"+strconv.Itoa(portfolioID), nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, delResp.StatusCode)
	delResp.Body.Close()

	resp = postJSON(t, server.URL+"/api/login", map[string]any{
		"username": "bob",
		"password": "hunter2",
	})
	user = decode(t, resp)["user"].(map[string]any)
	assert.Empty(t, user["portfolios"].([]any))
}

func TestSeedIsIdempotentAgainstPostgres(t *testing.T) {
	tdb := setupTestDB(t)
	defer tdb.cleanup(t)

	require.NoError(t, db.Seed(tdb.database))
	require.NoError(t, db.Seed(tdb.database))

	server := newServer(t, tdb.database)
	resp := postJSON(t, server.URL+"/api/login", map[string]any{
		"username": "admin",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	admin := decode(t, resp)["user"].(map[string]any)
	assert.Len(t, admin["portfolios"].([]any), 2)
}
