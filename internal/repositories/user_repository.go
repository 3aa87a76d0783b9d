package repositories

import (
	"errors"
	"fmt"
	"time"

	"bankoffice/internal/config"
	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userRepository implements UserRepositoryInterface
type userRepository struct {
	db       *gorm.DB
	security *config.SecurityConfig
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, security *config.SecurityConfig) UserRepositoryInterface {
	return &userRepository{
		db:       db,
		security: security,
	}
}

// GetByUsername retrieves an active user by username
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND is_active = ?", username, true).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewDomain(apperrors.UserNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ChangePassword replaces a user's password hash and stamps the change
// time. The plaintext never reaches storage.
func (r *userRepository) ChangePassword(username, newPassword string) error {
	if len(newPassword) < r.security.PasswordMinLength {
		return apperrors.NewDomainf(apperrors.UserPasswordTooShort,
			"Password must be at least %d characters long.", r.security.PasswordMinLength)
	}

	user, err := r.GetByUsername(username)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), r.security.BCryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	if err := r.db.Model(&models.User{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{
			"password":             string(hash),
			"last_password_change": now,
		}).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
