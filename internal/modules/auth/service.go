package auth

import (
	"errors"
	"time"

	"github.com/flightfolio/core/internal/models"
	"github.com/flightfolio/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrBadCredentials = errors.New("invalid username or password")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies the password and issues a JWT. Last-login bookkeeping is
// best-effort; a failed update does not block the login.
func (s *Service) Login(username, password, ip string) (string, *models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := jwt.Sign(user.ID, 7*24*time.Hour)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	_ = s.db.Model(&user).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	}).Error
	user.LastLoginTime = &now
	user.LastLoginIP = ip

	return token, &user, nil
}

// Register creates the owner account. This is a single-user app: once any
// account exists, registration is closed.
func (s *Service) Register(username, password, name, mail string) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("an account already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username: username,
		Password: string(hash),
		Name:     name,
		Mail:     mail,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
