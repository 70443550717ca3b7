package services

import (
	"errors"
	"net/mail"
	"strings"

	"fitnessapi/config"
	"fitnessapi/logger"
	"fitnessapi/middleware"
	"fitnessapi/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// UserService implements registration and authentication. Registering a user
// also creates the profile and the user-wide exercise default values.
type UserService struct {
	db  *gorm.DB
	cfg *config.Config
	log *logger.Logger
}

func NewUserService(db *gorm.DB, cfg *config.Config, log *logger.Logger) *UserService {
	return &UserService{db: db, cfg: cfg, log: log}
}

// Register creates the user with its profile and default values.
func (s *UserService) Register(email, password string) ActionResult {
	if email == "" || password == "" {
		return badRequest(MsgRegisterFailed)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return badRequest(MsgInvalidEmail)
	}
	// Strip any display-name form, only the address itself is stored
	email = addr.Address
	if len(password) < minPasswordLength {
		return badRequest(MsgPasswordTooShort)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		s.log.Errorw("failed to check existing user", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}
	if count > 0 {
		return badRequest(MsgEmailAlreadyExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Errorw("failed to hash password", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.Create(&user).Error; err != nil {
		s.log.Errorw("failed to create user", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	profile := models.UserProfile{
		UserID:   user.ID,
		FullName: email[:strings.Index(email, "@")],
	}
	if err := s.db.Create(&profile).Error; err != nil {
		s.log.Errorw("failed to create user profile", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if result := s.addUserDefaultValues(user.ID); !result.IsSuccess() {
		return result
	}

	return created(MsgUserRegistered, toUserModel(user, profile))
}

// Login verifies the credentials and issues a JWT token. Data carries the
// user model followed by the token.
func (s *UserService) Login(email, password string) ActionResult {
	if email == "" || password == "" {
		return badRequest(MsgLoginFailed)
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return badRequest(MsgLoginFailed)
	}
	if err != nil {
		s.log.Errorw("failed to fetch user", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return badRequest(MsgLoginFailed)
	}

	token, err := middleware.GenerateToken(&user, s.cfg.JWTExpiration)
	if err != nil {
		s.log.Errorw("failed to generate token", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	var profile models.UserProfile
	s.db.Where("user_id = ?", user.ID).First(&profile)

	return success(MsgSuccess, toUserModel(user, profile), token)
}

// ChangePassword verifies the old password and stores the new hash.
func (s *UserService) ChangePassword(oldPassword, newPassword, userID string) ActionResult {
	if oldPassword == "" || newPassword == "" {
		return badRequest(MsgChangePasswordFail)
	}
	if len(newPassword) < minPasswordLength {
		return badRequest(MsgPasswordTooShort)
	}

	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgLoginFailed)
	}
	if err != nil {
		s.log.Errorw("failed to fetch user", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return badRequest(MsgIncorrectPassword)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.log.Errorw("failed to hash password", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.db.Save(&user).Error; err != nil {
		s.log.Errorw("failed to update user", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgPasswordChanged)
}

// addUserDefaultValues creates the user-wide defaults row using the kg unit.
func (s *UserService) addUserDefaultValues(userID string) ActionResult {
	var kg models.WeightUnit
	if err := s.db.Where("text = ?", models.WeightUnitKg).First(&kg).Error; err != nil {
		// Must not happen, units are seeded on startup
		s.log.Errorw("failed to fetch kg weight unit", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	values := models.UserDefaultValue{
		UserID:       userID,
		MGExerciseID: 0,
		WeightUnitID: kg.ID,
	}
	if err := s.db.Create(&values).Error; err != nil {
		s.log.Errorw("failed to create user default values", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return created(MsgSuccess)
}
