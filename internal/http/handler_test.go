package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"promarket.com/promarket/internal/audit"
	"promarket.com/promarket/internal/constants"
	"promarket.com/promarket/internal/files"
	model "promarket.com/promarket/internal/models"
	repository "promarket.com/promarket/internal/repositories"
	"promarket.com/promarket/internal/services"
)

type apiTest struct {
	e  *echo.Echo
	db *gorm.DB
}

func setupAPI(t *testing.T) *apiTest {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err, "failed to connect database")

	err = db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Application{},
		&model.Review{},
		&model.PaymentTransaction{},
		&model.FileResource{},
	)
	require.NoError(t, err, "failed to migrate database")

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	users := repository.NewUserRepository(db)
	jobs := repository.NewJobRepository(db)
	apps := repository.NewApplicationRepository(db)
	reviews := repository.NewReviewRepository(db)
	payments := repository.NewPaymentRepository(db)
	fileRepo := repository.NewFileRepository(db)
	logger := zap.NewNop()
	sink := audit.NoopSink{}

	authService := services.NewAuthService(users, "test-secret", time.Hour, logger)
	userService := services.NewUserService(users, logger)
	jobService := services.NewJobService(db, jobs, apps, users, payments, reviews, sink, logger, 0.10)
	dashboardService := services.NewDashboardService(users, jobs, apps, reviews, payments)

	e := echo.New()
	handler := NewHandler(authService, userService, jobService, dashboardService, fileRepo, files.NewMemoryStore(), sink)
	Register(e, handler, authService)

	return &apiTest{e: e, db: db}
}

func (a *apiTest) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "response was not JSON: %s", rec.Body.String())
	return out
}

func (a *apiTest) registerUser(t *testing.T, email string, role constants.Role) (id, token string) {
	rec := a.request(t, http.MethodPost, "/auth/register", "", map[string]any{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  "hunter2secret",
		"role":      string(role),
	})
	require.Equal(t, http.StatusOK, rec.Code, "register failed: %s", rec.Body.String())

	body := decodeJSON(t, rec)
	user := body["user"].(map[string]any)
	return user["id"].(string), body["token"].(string)
}

func (a *apiTest) createJob(t *testing.T, token string, budget float64) string {
	rec := a.request(t, http.MethodPost, "/jobs", token, map[string]any{
		"title":       "Garden Cleanup",
		"description": "Clear the backyard before winter",
		"budget":      budget,
		"deadline":    time.Now().Add(14 * 24 * time.Hour).Format(time.RFC3339),
		"location":    "Springfield",
		"skills":      []string{"gardening"},
	})
	require.Equal(t, http.StatusOK, rec.Code, "create job failed: %s", rec.Body.String())
	return decodeJSON(t, rec)["id"].(string)
}

func TestRegisterConflict(t *testing.T) {
	api := setupAPI(t)

	api.registerUser(t, "jane@example.com", constants.RoleRequester)

	rec := api.request(t, http.MethodPost, "/auth/register", "", map[string]any{
		"firstName": "Other",
		"lastName":  "Person",
		"email":     "jane@example.com",
		"password":  "anotherpassword",
		"role":      "TASKER",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	api := setupAPI(t)

	rec := api.request(t, http.MethodPost, "/auth/register", "", map[string]any{
		"firstName": "Short",
		"lastName":  "Password",
		"email":     "short@example.com",
		"password":  "short",
		"role":      "TASKER",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.request(t, http.MethodPost, "/auth/register", "", map[string]any{
		"firstName": "Bad",
		"lastName":  "Role",
		"email":     "badrole@example.com",
		"password":  "hunter2secret",
		"role":      "WIZARD",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginAndVerify(t *testing.T) {
	api := setupAPI(t)
	api.registerUser(t, "jane@example.com", constants.RoleRequester)

	rec := api.request(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "hunter2secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeJSON(t, rec)["token"].(string)

	rec = api.request(t, http.MethodGet, "/auth/verify", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.request(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJobLifecycleOverHTTP(t *testing.T) {
	api := setupAPI(t)

	_, reqToken := api.registerUser(t, "req@example.com", constants.RoleRequester)
	taskerID, taskerToken := api.registerUser(t, "tasker@example.com", constants.RoleTasker)
	jobID := api.createJob(t, reqToken, 200)

	rec := api.request(t, http.MethodPost, "/jobs/"+jobID+"/apply", taskerToken, map[string]any{
		"proposal":       "I can do this next week",
		"proposedAmount": 180,
	})
	require.Equal(t, http.StatusOK, rec.Code, "apply failed: %s", rec.Body.String())
	appID := decodeJSON(t, rec)["id"].(string)

	rec = api.request(t, http.MethodPost, "/jobs/"+jobID+"/apply", taskerToken, map[string]any{
		"proposal":       "again",
		"proposedAmount": 170,
	})
	assert.Equal(t, http.StatusConflict, rec.Code, "duplicate apply must conflict")

	acceptPath := fmt.Sprintf("/jobs/%s/applications/%s/accept", jobID, appID)
	rec = api.request(t, http.MethodPost, acceptPath, taskerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, "tasker must not accept applications")

	rec = api.request(t, http.MethodPost, acceptPath, reqToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, "accept failed: %s", rec.Body.String())

	rec = api.request(t, http.MethodGet, "/jobs/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	job := decodeJSON(t, rec)
	assert.Equal(t, string(constants.JobInProgress), job["status"])
	assert.Equal(t, taskerID, job["assignedTaskerId"])

	rec = api.request(t, http.MethodPost, "/jobs/"+jobID+"/complete", reqToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, "complete failed: %s", rec.Body.String())
	completed := decodeJSON(t, rec)
	assert.Equal(t, string(constants.JobCompleted), completed["status"])
	assert.NotEmpty(t, completed["completedAt"])

	rec = api.request(t, http.MethodPost, "/jobs/"+jobID+"/reviews", reqToken, map[string]any{
		"revieweeId": taskerID,
		"rating":     5,
		"comment":    "great work",
	})
	assert.Equal(t, http.StatusOK, rec.Code, "review failed: %s", rec.Body.String())
}

func TestJobUpdateAuthorization(t *testing.T) {
	api := setupAPI(t)

	_, ownerToken := api.registerUser(t, "owner@example.com", constants.RoleRequester)
	_, strangerToken := api.registerUser(t, "stranger@example.com", constants.RoleRequester)
	jobID := api.createJob(t, ownerToken, 200)

	update := map[string]any{
		"title":       "Garden Cleanup (updated)",
		"description": "Now with hedge trimming",
		"budget":      250,
		"deadline":    time.Now().Add(21 * 24 * time.Hour).Format(time.RFC3339),
	}

	rec := api.request(t, http.MethodPut, "/jobs/"+jobID, strangerToken, update)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.request(t, http.MethodPut, "/jobs/"+jobID, "", update)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.request(t, http.MethodPut, "/jobs/"+jobID, ownerToken, update)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobListingEnvelope(t *testing.T) {
	api := setupAPI(t)

	_, token := api.registerUser(t, "req@example.com", constants.RoleRequester)
	for i := 0; i < 3; i++ {
		api.createJob(t, token, 100)
	}

	rec := api.request(t, http.MethodGet, "/jobs?page=0&size=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decodeJSON(t, rec)
	assert.Len(t, page["content"], 2)
	assert.EqualValues(t, 0, page["number"])
	assert.EqualValues(t, 2, page["size"])
	assert.EqualValues(t, 3, page["totalElements"])
	assert.EqualValues(t, 2, page["totalPages"])
}

func TestJobSearchFilters(t *testing.T) {
	api := setupAPI(t)

	_, token := api.registerUser(t, "req@example.com", constants.RoleRequester)
	api.createJob(t, token, 150)

	rec := api.request(t, http.MethodGet, "/jobs/search?search=garden&minBudget=100&maxBudget=200", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeJSON(t, rec)["totalElements"])

	rec = api.request(t, http.MethodGet, "/jobs?minBudget=not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.request(t, http.MethodGet, "/jobs?status=SIDEWAYS", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminSurfaceRequiresAdminRole(t *testing.T) {
	api := setupAPI(t)

	_, requesterToken := api.registerUser(t, "req@example.com", constants.RoleRequester)
	_, adminToken := api.registerUser(t, "admin@example.com", constants.RoleAdmin)

	rec := api.request(t, http.MethodGet, "/admin/users", requesterToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.request(t, http.MethodGet, "/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decodeJSON(t, rec)["totalElements"])

	rec = api.request(t, http.MethodGet, "/admin/analytics", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.request(t, http.MethodGet, "/admin/export/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "users.csv")
}

func TestSuspendedUserIsRejected(t *testing.T) {
	api := setupAPI(t)

	userID, userToken := api.registerUser(t, "banned@example.com", constants.RoleTasker)
	_, adminToken := api.registerUser(t, "admin@example.com", constants.RoleAdmin)

	rec := api.request(t, http.MethodPut, "/admin/users/"+userID, adminToken, map[string]any{
		"firstName": "Test",
		"lastName":  "User",
		"role":      "TASKER",
		"status":    "SUSPENDED",
	})
	require.Equal(t, http.StatusOK, rec.Code, "suspend failed: %s", rec.Body.String())

	rec = api.request(t, http.MethodGet, "/user/profile", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDashboardEndpoints(t *testing.T) {
	api := setupAPI(t)

	_, reqToken := api.registerUser(t, "req@example.com", constants.RoleRequester)
	_, taskerToken := api.registerUser(t, "tasker@example.com", constants.RoleTasker)
	_, adminToken := api.registerUser(t, "admin@example.com", constants.RoleAdmin)
	api.createJob(t, reqToken, 200)

	rec := api.request(t, http.MethodGet, "/dashboard/requester", reqToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeJSON(t, rec)["totalJobs"])

	rec = api.request(t, http.MethodGet, "/dashboard/tasker", taskerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decodeJSON(t, rec)["totalApplications"])

	rec = api.request(t, http.MethodGet, "/dashboard/admin", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, decodeJSON(t, rec)["totalUsers"])

	rec = api.request(t, http.MethodGet, "/dashboard/admin", taskerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserReviewsEndpoint(t *testing.T) {
	api := setupAPI(t)

	_, reqToken := api.registerUser(t, "req@example.com", constants.RoleRequester)
	taskerID, taskerToken := api.registerUser(t, "tasker@example.com", constants.RoleTasker)
	jobID := api.createJob(t, reqToken, 200)

	rec := api.request(t, http.MethodPost, "/jobs/"+jobID+"/apply", taskerToken, map[string]any{
		"proposal":       "proposal",
		"proposedAmount": 180,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	appID := decodeJSON(t, rec)["id"].(string)

	rec = api.request(t, http.MethodPost, fmt.Sprintf("/jobs/%s/applications/%s/accept", jobID, appID), reqToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.request(t, http.MethodPost, "/jobs/"+jobID+"/complete", reqToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.request(t, http.MethodPost, "/jobs/"+jobID+"/reviews", reqToken, map[string]any{
		"revieweeId": taskerID,
		"rating":     5,
		"comment":    "great work",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.request(t, http.MethodGet, "/users/"+taskerID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeJSON(t, rec)
	assert.EqualValues(t, 1, summary["totalReviews"])
	assert.EqualValues(t, 5, summary["averageRating"])
	assert.Len(t, summary["reviews"], 1)

	rec = api.request(t, http.MethodGet, "/users/no-such-user/reviews", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMockedCollaboratorEndpoints(t *testing.T) {
	api := setupAPI(t)
	_, token := api.registerUser(t, "user@example.com", constants.RoleTasker)

	rec := api.request(t, http.MethodGet, "/messages", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = api.request(t, http.MethodGet, "/notifications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = api.request(t, http.MethodPut, "/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "all-read", decodeJSON(t, rec)["status"])

	rec = api.request(t, http.MethodPost, "/auth/forgot-password", "", map[string]any{
		"email": "whoever@example.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
