package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankoffice/internal/config"
	"bankoffice/internal/database"
	"bankoffice/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// UserHandlerTestSuite is the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	security := &config.SecurityConfig{
		BCryptCost:        bcrypt.MinCost,
		PasswordMinLength: 8,
	}
	repo := repositories.NewUserRepository(s.db.DB, security)
	s.handler = NewUserHandler(repo, nil)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.db.Close()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) postChangePassword(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/Users/ChangePassword", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	require.NoError(s.T(), s.handler.ChangePassword(c))
	return rec
}

// TestChangePassword_Success replaces the password
func (s *UserHandlerTestSuite) TestChangePassword_Success() {
	database.CreateTestUser(s.T(), s.db, "asha", "old-password")

	rec := s.postChangePassword(`{"username":"asha","newPassword":"brand-new-secret"}`)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), "Password changed successfully.")
}

// TestChangePassword_TooShort returns 400 with the length message
func (s *UserHandlerTestSuite) TestChangePassword_TooShort() {
	database.CreateTestUser(s.T(), s.db, "asha", "old-password")

	rec := s.postChangePassword(`{"username":"asha","newPassword":"short"}`)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(s.T(), "Password must be at least 8 characters long.", errorMessage(s.T(), rec))
}

// TestChangePassword_UnknownUser returns 404
func (s *UserHandlerTestSuite) TestChangePassword_UnknownUser() {
	rec := s.postChangePassword(`{"username":"nobody","newPassword":"brand-new-secret"}`)

	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
	assert.Equal(s.T(), "User not found.", errorMessage(s.T(), rec))
}

// TestChangePassword_MissingFields returns 400
func (s *UserHandlerTestSuite) TestChangePassword_MissingFields() {
	rec := s.postChangePassword(`{"username":"","newPassword":""}`)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}
