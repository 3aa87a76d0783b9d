package repositories

import (
	"testing"

	"bankoffice/internal/config"
	"bankoffice/internal/database"
	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// UserRepositoryTestSuite is the test suite for the user repository
type UserRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

// SetupTest runs before each test
func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	security := &config.SecurityConfig{
		BCryptCost:        bcrypt.MinCost,
		PasswordMinLength: 8,
	}
	s.repo = NewUserRepository(s.db.DB, security)
}

// TearDownTest runs after each test
func (s *UserRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

// TestGetByUsername returns only active users
func (s *UserRepositoryTestSuite) TestGetByUsername() {
	database.CreateTestUser(s.T(), s.db, "asha", "old-password")

	user, err := s.repo.GetByUsername("asha")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "asha", user.Username)

	_, err = s.repo.GetByUsername("nobody")
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsCode(err, apperrors.UserNotFound))
}

// TestGetByUsername_Inactive treats a deactivated user as missing
func (s *UserRepositoryTestSuite) TestGetByUsername_Inactive() {
	user := database.CreateTestUser(s.T(), s.db, "asha", "old-password")
	require.NoError(s.T(), s.db.Model(&models.User{}).
		Where("user_id = ?", user.UserID).
		Update("is_active", false).Error)

	_, err := s.repo.GetByUsername("asha")
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsCode(err, apperrors.UserNotFound))
}

// TestChangePassword stores a bcrypt hash and stamps the change time
func (s *UserRepositoryTestSuite) TestChangePassword() {
	database.CreateTestUser(s.T(), s.db, "asha", "old-password")

	err := s.repo.ChangePassword("asha", "brand-new-secret")
	require.NoError(s.T(), err)

	var stored models.User
	require.NoError(s.T(), s.db.Where("username = ?", "asha").First(&stored).Error)
	assert.NotEqual(s.T(), "brand-new-secret", stored.Password)
	assert.NoError(s.T(), bcrypt.CompareHashAndPassword(
		[]byte(stored.Password), []byte("brand-new-secret")))
	require.NotNil(s.T(), stored.LastPasswordChange)
	assert.False(s.T(), stored.LastPasswordChange.IsZero())
}

// TestChangePassword_TooShort enforces the minimum length before any lookup
func (s *UserRepositoryTestSuite) TestChangePassword_TooShort() {
	err := s.repo.ChangePassword("asha", "short")
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsCode(err, apperrors.UserPasswordTooShort))
	assert.Equal(s.T(), "Password must be at least 8 characters long.", err.Error())
}

// TestChangePassword_UnknownUser reports not found
func (s *UserRepositoryTestSuite) TestChangePassword_UnknownUser() {
	err := s.repo.ChangePassword("nobody", "brand-new-secret")
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsCode(err, apperrors.UserNotFound))
}
