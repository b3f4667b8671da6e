package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/api"
	"github.com/panpal-app/backend/internal/planner"
	"github.com/panpal-app/backend/internal/router"
	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/shopping"
	"github.com/panpal-app/backend/internal/testhelpers"
)

// testApp is the full HTTP surface wired against in-memory SQLite, with
// no Redis, no S3 and no rate limiter.
type testApp struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.OpenSQLite(t)
	logger := zap.NewNop()

	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db)
	catalogService := service.NewCatalogService(db, nil, logger)
	checkInService := service.NewCheckInService(db, nil, logger)

	planStore := service.NewPlanRepository(db)
	listStore := service.NewShoppingListRepository(db)

	mealPlanner := planner.New(catalogService, planStore, profileService, logger)
	shoppingService := shopping.NewService(listStore, planStore, logger)

	engine := router.SetupRouter(logger, router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Profile:  api.NewProfileHandler(profileService),
		MealPlan: api.NewMealPlanHandler(mealPlanner, profileService),
		Recipe:   api.NewRecipeHandler(catalogService),
		Shopping: api.NewShoppingHandler(shoppingService),
		CheckIn:  api.NewCheckInHandler(checkInService),
		Health:   api.NewHealthHandler(nil, nil),
	}, authService, nil, nil)

	return &testApp{router: engine, db: db}
}

// request performs an in-process HTTP call. body may be nil, a raw
// string, or any JSON-marshalable value.
func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func registerBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":               email,
		"password":            "password123",
		"name":                "Tester",
		"age":                 30,
		"gender":              "male",
		"height_cm":           180,
		"weight_kg":           80,
		"goal":                "maintain",
		"cuisine_preferences": []string{"Chinese", "Western"},
		"cooking_time":        ">30",
		"budget":              "standard",
	}
}

// registerUser signs up a user through the API and returns the token.
func (a *testApp) registerUser(t *testing.T, email string) string {
	t.Helper()

	w := a.request(t, http.MethodPost, "/api/v1/auth/register", "", registerBody(email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
