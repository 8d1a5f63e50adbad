package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-admin-api/auth"
	"cafe-admin-api/gateway"
	"cafe-admin-api/handlers"
	"cafe-admin-api/logger"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
	"cafe-admin-api/routes"
	"cafe-admin-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubIdentity struct{}

func (stubIdentity) Login(context.Context, gateway.LoginRequest) (models.SessionUser, error) {
	return models.SessionUser{ID: "u1", Name: "Ada", Email: "ada@cafe.io"}, nil
}

func (stubIdentity) Register(context.Context, gateway.RegisterRequest) (models.SessionUser, error) {
	return models.SessionUser{}, &gateway.APIError{StatusCode: 400, Code: "auth/email-already-in-use"}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Kind    string            `json:"kind"`
		Title   string            `json:"title"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
	ValidNextStates []string `json:"valid_next_states"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	kv := persist.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Save(ctx, persist.KeyFoodItems, []models.FoodItem{
		{ID: "f1", Name: "Latte", Description: "Milky", Price: 3.5, Category: models.CategoryBeverages, Available: true},
		{ID: "f2", Name: "Croissant", Description: "Buttery", Price: 2.25, Category: models.CategoryPastries},
	}))
	require.NoError(t, kv.Save(ctx, persist.KeyOrders, []models.Order{{
		ID: "o1", CustomerName: "Ada", TableNumber: "4", Status: models.StatusCancelled,
		Items:     []models.OrderItem{{FoodID: "f1", Name: "Latte", Quantity: 1, Price: 3.5}},
		CreatedAt: models.NewTimestamp(time.Now().Add(-time.Hour)),
	}}))

	log := logger.Discard()
	s := store.New(nil, kv, kv, log, store.Options{Mode: store.ModeLocal})
	require.NoError(t, s.Refresh(ctx))
	tokens := auth.NewTokens("test-secret", time.Hour)
	authSvc := auth.NewService(stubIdentity{}, kv, tokens, log)

	r := gin.New()
	routes.SetupRoutes(r, handlers.New(s, authSvc, log), tokens)
	return &testServer{t: t, router: r}
}

func (ts *testServer) do(method, path string, body any) (int, envelope) {
	ts.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (ts *testServer) login() {
	code, env := ts.do(http.MethodPost, "/api/auth/login", models.TokenPair{IDToken: "id", RefreshToken: "refresh"})
	require.Equal(ts.t, http.StatusOK, code)
	var session auth.Session
	require.NoError(ts.t, json.Unmarshal(env.Data, &session))
	ts.token = session.Token
}

func TestHealth(t *testing.T) {
	ts := newServer(t)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"local"`)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	ts := newServer(t)
	code, env := ts.do(http.MethodGet, "/api/food", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.OK)
	assert.Equal(t, "auth", env.Error.Kind)
}

func TestSignupErrorMessage(t *testing.T) {
	ts := newServer(t)
	code, env := ts.do(http.MethodPost, "/api/auth/register", auth.SignupRequest{
		Name: "Ada", Email: "ada@cafe.io", Phone: "5551234567", Password: "secret1", ConfirmPassword: "secret1",
		Tokens: models.TokenPair{IDToken: "id", RefreshToken: "refresh"},
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Account already exists. Try again with different Email.", env.Error.Message)
}

func TestFoodListFilters(t *testing.T) {
	ts := newServer(t)
	ts.login()

	code, env := ts.do(http.MethodGet, "/api/food?category=Pastries", nil)
	require.Equal(t, http.StatusOK, code)
	var body struct {
		Count      int               `json:"count"`
		Items      []models.FoodItem `json:"items"`
		Categories []string          `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "Croissant", body.Items[0].Name)
	assert.Equal(t, []string{"all", "Beverages", "Pastries"}, body.Categories)
}

func TestAddFoodValidation(t *testing.T) {
	ts := newServer(t)
	ts.login()

	code, env := ts.do(http.MethodPost, "/api/food", gin.H{"name": "", "price": -1, "category": "Beverages", "description": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation", env.Error.Kind)
	assert.Equal(t, "Add Failed", env.Error.Title)
	assert.Equal(t, "Price must be a positive number", env.Error.Fields["price"])
	assert.Contains(t, env.Error.Fields, "name")
}

func TestDeleteReferencedFoodConflicts(t *testing.T) {
	ts := newServer(t)
	ts.login()

	code, env := ts.do(http.MethodDelete, "/api/food/f1", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "domain", env.Error.Kind)
	assert.Equal(t, "Delete Failed", env.Error.Title)

	code, _ = ts.do(http.MethodDelete, "/api/food/f2", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestInvalidTransitionIs422(t *testing.T) {
	ts := newServer(t)
	ts.login()

	code, env := ts.do(http.MethodPut, "/api/orders/o1/status", gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.OK)
	assert.Empty(t, env.ValidNextStates)
	assert.Contains(t, env.Error.Message, "none (terminal state)")
}

func TestOrderFlowOverHTTP(t *testing.T) {
	ts := newServer(t)
	ts.login()

	code, env := ts.do(http.MethodPost, "/api/orders", gin.H{
		"customerName": "Grace", "tableNumber": "7",
		"items": []gin.H{{"foodId": "f1", "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, code)
	var order models.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, 7.0, order.TotalAmount)

	code, _ = ts.do(http.MethodPut, "/api/orders/"+order.ID+"/status", gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, code)

	code, env = ts.do(http.MethodGet, "/api/orders/"+order.ID+"/history", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"changedBy":"ada@cafe.io"`)

	code, env = ts.do(http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, code)
	var stats struct {
		TotalOrders   int `json:"totalOrders"`
		PendingOrders int `json:"pendingOrders"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
}

func TestRemoteOnlyFeedbackOpsInLocalMode(t *testing.T) {
	ts := newServer(t)
	ts.login()

	code, env := ts.do(http.MethodPost, "/api/feedback", gin.H{
		"customerName": "Ada", "email": "ada@cafe.io", "rating": 5, "category": "service",
		"description": "Lovely", "wouldRecommend": true,
	})
	require.Equal(t, http.StatusCreated, code)
	var fb models.CustomerFeedback
	require.NoError(t, json.Unmarshal(env.Data, &fb))

	code, _ = ts.do(http.MethodPut, "/api/feedback/"+fb.ID+"/status", gin.H{"status": "archived"})
	assert.Equal(t, http.StatusOK, code)
	code, env = ts.do(http.MethodPut, "/api/feedback/"+fb.ID+"/status", gin.H{"status": "new"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "domain", env.Error.Kind)

	code, _ = ts.do(http.MethodDelete, "/api/feedback/"+fb.ID, nil)
	assert.Equal(t, http.StatusOK, code)
}
