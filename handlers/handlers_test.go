package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/routes"
)

const testSecret = "test-secret"

// fakeMailer records outbound mail instead of delivering it
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenService
	mail   *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenDatabase(":memory:")
	require.NoError(t, err)

	tokens := auth.NewTokenService(testSecret, time.Hour)
	mail := &fakeMailer{}

	r := gin.New()
	routes.SetupRoutes(r, db, tokens, mail, "http://localhost:8080")

	return &testEnv{db: db, router: r, tokens: tokens, mail: mail}
}

// do performs a request against the test router; body is JSON-encoded when
// non-nil, token (when set) goes in the Authorization header.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// registerUser creates a user account through the API and returns a login
// token for it
func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, "POST", "/api/v1/auth/register", "", gin.H{
		"username": "tester",
		"email":    email,
		"password": "hunter22",
		"address":  "12 Main St",
		"phone":    "5551234",
		"answer":   "blue",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// registerAdmin creates an admin account through the API and returns a login
// token for it
func (e *testEnv) registerAdmin(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, "POST", "/api/v1/admin/register", "", gin.H{
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, "POST", "/api/v1/admin/login", "", gin.H{
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createRestaurant inserts a restaurant directly and returns its id
func (e *testEnv) createRestaurant(t *testing.T, title string) uint {
	t.Helper()
	restaurant := models.Restaurant{Title: title, Address: "1 Food Ct", IsOpen: true}
	require.NoError(t, e.db.Create(&restaurant).Error)
	return restaurant.ID
}
