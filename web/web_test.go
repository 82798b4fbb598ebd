package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"ramen-kiosk/config"
	"ramen-kiosk/database"
	"ramen-kiosk/logger"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger(logging.ERROR)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		DBPath:      filepath.Join(t.TempDir(), "test.db"),
		TokenSecret: "test-secret",
		TokenTTL:    30 * time.Minute,
	}
	db, err := database.InitDB(cfg.DBPath, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return NewServer(cfg, db).initRouter()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func loginToken(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/token", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(t, w, &resp)
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func menuItemIds(t *testing.T, engine *gin.Engine) map[string]int {
	t.Helper()
	w := doJSON(t, engine, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menu map[string][]struct {
		Id   int    `json:"id"`
		Name string `json:"name"`
	}
	decode(t, w, &menu)

	ids := make(map[string]int)
	for category, entries := range menu {
		require.NotEmpty(t, entries, category)
		ids[category] = entries[0].Id
	}
	return ids
}

func TestKioskEndToEnd(t *testing.T) {
	engine := setupTestRouter(t)

	// Register a customer and an admin.
	w := doJSON(t, engine, http.MethodPost, "/register", "", gin.H{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/register", "", gin.H{
		"username": "boss", "password": "pw2", "is_admin": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Duplicate registration is rejected.
	w = doJSON(t, engine, http.MethodPost, "/register", "", gin.H{
		"username": "alice", "password": "pw1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad credentials are rejected.
	w = doJSON(t, engine, http.MethodPost, "/token", "", gin.H{
		"username": "alice", "password": "nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	aliceToken := loginToken(t, engine, "alice", "pw1")
	bossToken := loginToken(t, engine, "boss", "pw2")

	// The menu is public and carries all four categories.
	ids := menuItemIds(t, engine)
	require.Len(t, ids, 4)

	item := gin.H{
		"flavor_id":      ids["flavor"],
		"soup_base_id":   ids["soup_base"],
		"meat_id":        ids["meat"],
		"spicy_level_id": ids["spicy_level"],
		"quantity":       1,
	}

	// Two cart lines for alice.
	for i := 0; i < 2; i++ {
		w = doJSON(t, engine, http.MethodPost, "/add-to-cart", aliceToken, item)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var cart []map[string]any
	w = doJSON(t, engine, http.MethodGet, "/cart", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	assert.Len(t, cart, 2)

	// Checkout drains the cart.
	w = doJSON(t, engine, http.MethodPost, "/place-order", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/cart", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	assert.Empty(t, cart)

	// Admin sees the two orders in the sales view.
	var sales []map[string]any
	w = doJSON(t, engine, http.MethodGet, "/sales", bossToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &sales)
	assert.Len(t, sales, 2)
	for _, sale := range sales {
		assert.Equal(t, "alice", sale["username"])
	}
}

func TestAuthGating(t *testing.T) {
	engine := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/register", "", gin.H{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	aliceToken := loginToken(t, engine, "alice", "pw1")

	// No token at all.
	w = doJSON(t, engine, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Nonsense token.
	w = doJSON(t, engine, http.MethodGet, "/cart", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated but not admin.
	for _, probe := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/sales", nil},
		{http.MethodGet, "/inventory", nil},
		{http.MethodPut, "/inventory/Noodles", gin.H{"quantity": 1}},
	} {
		w = doJSON(t, engine, probe.method, probe.path, aliceToken, probe.body)
		assert.Equal(t, http.StatusForbidden, w.Code, probe.path)
	}
}

func TestInventoryAdminFlow(t *testing.T) {
	engine := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/register", "", gin.H{
		"username": "boss", "password": "pw2", "is_admin": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	bossToken := loginToken(t, engine, "boss", "pw2")

	w = doJSON(t, engine, http.MethodPut, "/inventory/Noodles", bossToken, gin.H{"quantity": 42})
	require.Equal(t, http.StatusOK, w.Code)

	var counters []map[string]any
	w = doJSON(t, engine, http.MethodGet, "/inventory", bossToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &counters)

	found := false
	for _, counter := range counters {
		if counter["item_name"] == "Noodles" {
			found = true
			assert.EqualValues(t, 42, counter["quantity"])
		}
	}
	assert.True(t, found)
}

func TestCartQuantityEndpointRejectsNonPositive(t *testing.T) {
	engine := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/register", "", gin.H{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := loginToken(t, engine, "alice", "pw1")

	ids := menuItemIds(t, engine)
	w = doJSON(t, engine, http.MethodPost, "/add-to-cart", token, gin.H{
		"flavor_id":      ids["flavor"],
		"soup_base_id":   ids["soup_base"],
		"meat_id":        ids["meat"],
		"spicy_level_id": ids["spicy_level"],
	})
	require.Equal(t, http.StatusOK, w.Code)

	var cart []map[string]any
	w = doJSON(t, engine, http.MethodGet, "/cart", token, nil)
	decode(t, w, &cart)
	require.Len(t, cart, 1)
	cartItemId := int(cart[0]["cart_item_id"].(float64))

	w = doJSON(t, engine, http.MethodPut,
		"/cart/"+strconv.Itoa(cartItemId)+"?new_quantity=0", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodPut,
		"/cart/"+strconv.Itoa(cartItemId)+"?new_quantity=3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Deleting someone else's line surfaces as not found.
	w = doJSON(t, engine, http.MethodDelete, "/cart/99999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
