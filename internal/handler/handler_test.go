package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stayloop/stayloop/internal/facade"
	"github.com/stayloop/stayloop/internal/handler"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/pkg/logger"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-do-not-use-in-production"

// HandlerSuite spins up the full route table over a SQLite-backed facade.
// Each test starts from a clean database.
type HandlerSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	facade *facade.Facade
	router *gin.Engine
}

func (s *HandlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.facade = facade.NewGorm(s.testDB.DB)
}

func (s *HandlerSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest rebuilds the router so tests that swap in extra deps (a
// revocation store, a rate limiter) never leak into their neighbors.
func (s *HandlerSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
	s.router = handler.NewRouter(handler.RouterDeps{
		Facade:    s.facade,
		JWTSecret: testJWTSecret,
		JWTExpiry: time.Hour,
	})
}

// request performs a JSON request against the suite router. An empty
// token leaves the Authorization header unset.
func (s *HandlerSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	s.T().Helper()

	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// parse decodes a JSON object response body.
func (s *HandlerSuite) parse(w *httptest.ResponseRecorder) map[string]any {
	s.T().Helper()
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// parseList decodes a JSON array response body.
func (s *HandlerSuite) parseList(w *httptest.ResponseRecorder) []map[string]any {
	s.T().Helper()
	var body []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *HandlerSuite) errorMessage(w *httptest.ResponseRecorder) string {
	s.T().Helper()
	msg, _ := s.parse(w)["error"].(string)
	return msg
}
