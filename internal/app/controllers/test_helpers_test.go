package controllers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/uniconnect/backend/internal/app/controllers"
	"github.com/uniconnect/backend/internal/app/models"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/app/routes"
	"github.com/uniconnect/backend/internal/middleware"
	"github.com/uniconnect/backend/internal/pkg/auth"
)

// Stub services with overridable behavior per test.

type stubStudentService struct {
	registerFn func(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error)
	loginFn    func(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentAuthResponse, error)
	getByIDFn  func(ctx context.Context, id int64) (*models.Student, error)
	updateFn   func(ctx context.Context, id int64, updates *dto.UpdateStudentRequest) (*models.Student, error)
}

func (s *stubStudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	return s.registerFn(ctx, req)
}

func (s *stubStudentService) Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentAuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubStudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubStudentService) Update(ctx context.Context, id int64, updates *dto.UpdateStudentRequest) (*models.Student, error) {
	return s.updateFn(ctx, id, updates)
}

type stubCollegeService struct {
	registerFn func(ctx context.Context, req *dto.RegisterCollegeRequest) (*models.College, error)
	loginFn    func(ctx context.Context, req *dto.CollegeLoginRequest) (*dto.CollegeAuthResponse, error)
	getByIDFn  func(ctx context.Context, id int64) (*models.College, error)
	updateFn   func(ctx context.Context, id int64, updates *dto.UpdateCollegeRequest) (*models.College, error)
}

func (s *stubCollegeService) Register(ctx context.Context, req *dto.RegisterCollegeRequest) (*models.College, error) {
	return s.registerFn(ctx, req)
}

func (s *stubCollegeService) Login(ctx context.Context, req *dto.CollegeLoginRequest) (*dto.CollegeAuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubCollegeService) GetByID(ctx context.Context, id int64) (*models.College, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCollegeService) Update(ctx context.Context, id int64, updates *dto.UpdateCollegeRequest) (*models.College, error) {
	return s.updateFn(ctx, id, updates)
}

type stubEventService struct {
	createFn        func(ctx context.Context, callerCollegeID int64, req *dto.CreateEventRequest) (*models.Event, error)
	getByIDFn       func(ctx context.Context, id int64) (*models.Event, error)
	listFn          func(ctx context.Context, filter dto.EventFilter) ([]*models.Event, error)
	listByCollegeFn func(ctx context.Context, collegeID int64) ([]*models.Event, error)
	updateFn        func(ctx context.Context, id, callerCollegeID int64, updates *dto.UpdateEventRequest) (*models.Event, error)
	deleteFn        func(ctx context.Context, id, callerCollegeID int64) error
}

func (s *stubEventService) Create(ctx context.Context, callerCollegeID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	return s.createFn(ctx, callerCollegeID, req)
}

func (s *stubEventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubEventService) List(ctx context.Context, filter dto.EventFilter) ([]*models.Event, error) {
	return s.listFn(ctx, filter)
}

func (s *stubEventService) ListByCollege(ctx context.Context, collegeID int64) ([]*models.Event, error) {
	return s.listByCollegeFn(ctx, collegeID)
}

func (s *stubEventService) Update(ctx context.Context, id, callerCollegeID int64, updates *dto.UpdateEventRequest) (*models.Event, error) {
	return s.updateFn(ctx, id, callerCollegeID, updates)
}

func (s *stubEventService) Delete(ctx context.Context, id, callerCollegeID int64) error {
	return s.deleteFn(ctx, id, callerCollegeID)
}

type stubAuthService struct {
	issueFn   func(ctx context.Context, accountID int64, role string) (*dto.TokenResponse, error)
	refreshFn func(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

func (s *stubAuthService) IssueTokens(ctx context.Context, accountID int64, role string) (*dto.TokenResponse, error) {
	return s.issueFn(ctx, accountID, role)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	return s.refreshFn(ctx, refreshToken)
}

type testEnv struct {
	router     *gin.Engine
	jwtService *auth.JWTService

	students *stubStudentService
	colleges *stubCollegeService
	events   *stubEventService
	auths    *stubAuthService
}

// newTestEnv wires the real routes and middleware around stub services
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})

	env := &testEnv{
		jwtService: jwtService,
		students:   &stubStudentService{},
		colleges:   &stubCollegeService{},
		events:     &stubEventService{},
		auths:      &stubAuthService{},
	}

	logger := zerolog.Nop()
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewStudentController(env.students, logger),
		controllers.NewCollegeController(env.colleges, env.events, logger),
		controllers.NewEventController(env.events, logger),
		controllers.NewAuthController(env.auths, logger),
		middleware.NewAuthMiddleware(jwtService),
	)
	env.router = router
	return env
}

// bearerToken mints a valid access token for the given identity
func (e *testEnv) bearerToken(t *testing.T, accountID int64, role string) string {
	t.Helper()
	accessToken, _, _, _, err := e.jwtService.GenerateTokenPair(accountID, role)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	return "Bearer " + accessToken
}

func decodeMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal message body: %v", err)
	}
	return body.Message
}
