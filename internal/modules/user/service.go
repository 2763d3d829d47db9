package user

import (
	"errors"
	"strings"
	"time"

	"github.com/flightfolio/core/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// apiTokenPrefix marks personal API tokens so the auth middleware can tell
// them apart from JWTs.
const apiTokenPrefix = "ffo"

var errUserNotFound = errors.New("user not found")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfileDTO patches profile fields; nil fields are untouched.
type UpdateProfileDTO struct {
	Name        *string `json:"name"`
	Avatar      *string `json:"avatar"`
	Mail        *string `json:"mail"`
	HomeAirport *string `json:"home_airport"`
	Password    *string `json:"password"`
}

func (s *Service) UpdateProfile(id string, dto *UpdateProfileDTO) (*models.UserModel, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
	}
	if dto.Mail != nil {
		updates["mail"] = *dto.Mail
	}
	if dto.HomeAirport != nil {
		updates["home_airport"] = strings.ToUpper(strings.TrimSpace(*dto.HomeAirport))
	}
	if dto.Password != nil {
		if len(*dto.Password) < 8 {
			return nil, errors.New("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		return user, nil
	}
	return user, s.db.Model(user).Updates(updates).Error
}

func (s *Service) ListTokens(userID string) ([]models.APIToken, error) {
	var tokens []models.APIToken
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tokens).Error
	return tokens, err
}

// CreateToken mints a prefixed random token. It is shown once in full.
func (s *Service) CreateToken(userID, name string, expiredAt *time.Time) (*models.APIToken, error) {
	token := models.APIToken{
		UserID:    userID,
		Token:     apiTokenPrefix + strings.ReplaceAll(uuid.New().String(), "-", ""),
		Name:      strings.TrimSpace(name),
		ExpiredAt: expiredAt,
	}
	if err := s.db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *Service) DeleteToken(userID, id string) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.APIToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("token not found")
	}
	return nil
}
