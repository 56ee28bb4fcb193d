package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/placement-portal/internal/auth"
	"github.com/justsurfingit/placement-portal/internal/handlers"
	"github.com/justsurfingit/placement-portal/internal/metrics"
	"github.com/justsurfingit/placement-portal/internal/models"
	"github.com/justsurfingit/placement-portal/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type companyStore struct {
	mu        sync.Mutex
	companies []models.Company
}

func (s *companyStore) FindAll(ctx context.Context) ([]models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Company(nil), s.companies...), nil
}

func (s *companyStore) FindByName(ctx context.Context, name string) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, errors.NotFoundf("company %q", name)
}

func (s *companyStore) Insert(ctx context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	company.ID = uint(len(s.companies) + 1)
	company.Normalize()
	s.companies = append(s.companies, *company)
	return nil
}

type adminStore struct {
	admins []models.Admin
}

func (s *adminStore) FindAll(ctx context.Context) ([]models.Admin, error) {
	return s.admins, nil
}

func (s *adminStore) Insert(ctx context.Context, admin *models.Admin) error {
	admin.ID = uint(len(s.admins) + 1)
	s.admins = append(s.admins, *admin)
	return nil
}

type testServer struct {
	router *gin.Engine
	issuer *auth.Issuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	issuer, err := auth.NewIssuer("test-secret", 0)
	require.NoError(t, err)

	router := NewRouter(Dependencies{
		CompanyHandler: handlers.NewCompanyHandler(services.NewCompanyService(&companyStore{}), log),
		AdminHandler:   handlers.NewAdminHandler(services.NewAdminService(&adminStore{}), log),
		Verifier:       issuer,
		Metrics:        metrics.NewCollector(),
		Log:            log,
	})
	return &testServer{router: router, issuer: issuer}
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAcmeScenario(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/addCompany", `{"name": "Acme"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Company
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))
	assert.Equal(t, "Acme", created.Name)

	rec = s.do(http.MethodPost, "/api/addCompany", `{"name": "Acme"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Company already exists", decodeEnvelope(t, rec).Message)

	rec = s.do(http.MethodGet, "/api/companies", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var companies []models.Company
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &companies))
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].Name)
}

func TestCompanyRoutesArePublic(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/companies", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/addCompany", `{}`, "").Code)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/admins", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token required", decodeEnvelope(t, rec).Message)

	rec = s.do(http.MethodGet, "/api/admins", "", "forged.token.value")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, rec).Message)

	student, err := s.issuer.GenerateToken(map[string]any{"id": "s-1", "role": "student"}, 0)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/admins", "", student).Code)

	admin, err := s.issuer.GenerateToken(map[string]any{"id": "a-1", "email": "tpo@college.edu", "role": RoleAdmin}, 0)
	require.NoError(t, err)
	rec = s.do(http.MethodPost, "/api/addAdmin", `{"name": "R. Iyer", "designation": "Placement Officer"}`, admin)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/admins", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var admins []models.Admin
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &admins))
	assert.Len(t, admins, 1)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = s.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "placement_http_requests_total"))
}
