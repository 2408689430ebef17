package service

import (
	"errors"
	"strings"
	"time"

	"github.com/velora-shop/velora/internal/config"
	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token lifecycle.
type AuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, userRepo repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// JWTClaims are the token claims issued on register and login.
type JWTClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Phone        string
	ProfileImage string
}

// Register creates an account with the given role and returns it with a
// signed token. Duplicate email or phone is a conflict.
func (s *AuthService) Register(input RegisterInput, role string) (*models.User, string, time.Time, error) {
	if !constants.IsValidRole(role) {
		return nil, "", time.Time{}, ErrInvalidInput
	}

	fieldErrs := FieldErrors{}
	if msg := validateUsername(input.Username); msg != "" {
		fieldErrs.Add("username", msg)
	}
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		fieldErrs.Add("email", "email format is invalid")
	}
	if msg := validatePhone(input.Phone); msg != "" {
		fieldErrs.Add("phone", msg)
	}
	if msg := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); msg != "" {
		fieldErrs.Add("password", msg)
	}
	if err := fieldErrs.OrNil(); err != nil {
		return nil, "", time.Time{}, err
	}

	phone := strings.TrimSpace(input.Phone)
	if exist, err := s.userRepo.GetByEmail(normalized); err != nil {
		return nil, "", time.Time{}, err
	} else if exist != nil {
		return nil, "", time.Time{}, ErrEmailExists
	}
	if exist, err := s.userRepo.GetByPhone(phone); err != nil {
		return nil, "", time.Time{}, err
	} else if exist != nil {
		return nil, "", time.Time{}, ErrPhoneExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &models.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        normalized,
		PasswordHash: string(hash),
		Phone:        phone,
		ProfileImage: strings.TrimSpace(input.ProfileImage),
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// GetProfile loads the current user.
func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfileInput is the profile update payload. Nil fields keep their
// current value.
type UpdateProfileInput struct {
	Username     *string
	Phone        *string
	ProfileImage *string
}

// UpdateProfile updates the mutable profile fields.
func (s *AuthService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fieldErrs := FieldErrors{}
	if input.Username != nil {
		if msg := validateUsername(*input.Username); msg != "" {
			fieldErrs.Add("username", msg)
		} else {
			user.Username = strings.TrimSpace(*input.Username)
		}
	}
	if input.Phone != nil {
		if msg := validatePhone(*input.Phone); msg != "" {
			fieldErrs.Add("phone", msg)
		} else {
			phone := strings.TrimSpace(*input.Phone)
			if phone != user.Phone {
				exist, err := s.userRepo.GetByPhone(phone)
				if err != nil {
					return nil, err
				}
				if exist != nil && exist.ID != user.ID {
					return nil, ErrPhoneExists
				}
				user.Phone = phone
			}
		}
	}
	if input.ProfileImage != nil {
		user.ProfileImage = strings.TrimSpace(*input.ProfileImage)
	}
	if err := fieldErrs.OrNil(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GenerateJWT signs an HS256 token carrying user id, email and role.
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 168
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseJWT validates a token string and returns its claims.
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &JWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, errors.Join(ErrUnauthorized, err)
	}
	if parsed, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return parsed, nil
	}
	return nil, ErrUnauthorized
}
