package service

import (
	"fmt"
	"time"

	"ramen-kiosk/database"
	"ramen-kiosk/database/model"
	"ramen-kiosk/logger"
	"ramen-kiosk/util/crypto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService owns accounts and the signed bearer tokens handed out at login.
type AuthService struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		db:       db,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register stores a new account with a bcrypt hash of the password.
// A taken username fails with ErrUsernameTaken and leaves the existing
// account untouched.
func (s *AuthService) Register(username, password string, isAdmin bool) error {
	var count int64
	err := s.db.Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Password: hash,
		IsAdmin:  isAdmin,
	}
	return s.db.Create(user).Error
}

// Login verifies the credentials and issues a signed token whose subject is
// the username, expiring tokenTTL from now.
func (s *AuthService) Login(username, password string) (string, error) {
	var user model.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if database.IsNotFound(err) {
		return "", ErrBadCredentials
	} else if err != nil {
		return "", err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		logger.Warningf("password mismatch for user %s", username)
		return "", ErrBadCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ResolveToken validates a bearer token and loads the account it names.
// Invalid signatures, expired tokens and unknown subjects all fail with
// ErrInvalidToken.
func (s *AuthService) ResolveToken(tokenString string) (*model.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	var user model.User
	err = s.db.Where("username = ?", claims.Subject).First(&user).Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidToken
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}
