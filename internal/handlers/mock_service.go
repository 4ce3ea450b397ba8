package handlers

import (
	"context"
	"encoding/base64"

	"resource_api/internal/models"
	"resource_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	identity models.Identity
	authErr  error

	authCalls int
	lastCreds service.Credentials
}

func (m *mockAuth) Authenticate(ctx context.Context, creds service.Credentials) (models.Identity, error) {
	m.authCalls++
	m.lastCreds = creds
	return m.identity, m.authErr
}

func (m *mockAuth) Register(ctx context.Context, username, password string) (int, error) {
	return 0, nil
}

type mockResources struct {
	listResp   []models.Resource
	listErr    error
	getResp    models.Resource
	getErr     error
	createResp models.Resource
	createErr  error
	updateResp models.Resource
	updateErr  error
	deleteErr  error

	listCalls   int
	getCalls    int
	createCalls int
	updateCalls int
	deleteCalls int

	lastLimit  int
	lastID     int
	lastNew    models.NewResource
	lastUpdate models.UpdateResource
}

func (m *mockResources) calls() int {
	return m.listCalls + m.getCalls + m.createCalls + m.updateCalls + m.deleteCalls
}

func (m *mockResources) List(ctx context.Context, limit int) ([]models.Resource, error) {
	m.listCalls++
	m.lastLimit = limit
	return m.listResp, m.listErr
}

func (m *mockResources) Get(ctx context.Context, id int) (models.Resource, error) {
	m.getCalls++
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *mockResources) Create(ctx context.Context, in models.NewResource) (models.Resource, error) {
	m.createCalls++
	m.lastNew = in
	return m.createResp, m.createErr
}

func (m *mockResources) Update(ctx context.Context, id int, in models.UpdateResource) (models.Resource, error) {
	m.updateCalls++
	m.lastID = id
	m.lastUpdate = in
	return m.updateResp, m.updateErr
}

func (m *mockResources) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Config{})
	return h.InitRoutes()
}

// newAuthedService returns a service whose guard accepts every well-formed header.
func newAuthedService(res *mockResources) (*service.Service, *mockAuth) {
	auth := &mockAuth{identity: models.Identity{UserID: 1, Username: "admin"}}
	return &service.Service{Resources: res, Authorization: auth}, auth
}

func basicToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
