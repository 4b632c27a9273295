package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/somchaidev/activity-calendar/internal/model"
	"github.com/somchaidev/activity-calendar/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks editor credentials and issues session tokens.
// Credentials are compared in plaintext against the user table; this app
// deliberately has no stronger credential model.
type AuthService struct {
	users       repository.UserRepository
	jwtSecret   string
	jwtExpiry   time.Duration
	devFallback bool
}

func NewAuthService(users repository.UserRepository, jwtSecret string, jwtExpiry time.Duration, devFallback bool) *AuthService {
	return &AuthService{
		users:       users,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
		devFallback: devFallback,
	}
}

// Login returns the matched user (password cleared) and a session token.
// In development mode admin/admin works when the user table is empty or
// unreadable, so a fresh checkout is usable without seeding.
func (s *AuthService) Login(username, password string) (*model.User, string, error) {
	users, err := s.users.List()
	if err != nil || len(users) == 0 {
		if s.devFallback && username == "admin" && password == "admin" {
			return s.issue(&model.User{
				ID:       "local-admin",
				Username: "admin",
				Fullname: "Local Admin (Dev Mode)",
			})
		}
		if err != nil {
			return nil, "", fmt.Errorf("load users: %w", err)
		}
		return nil, "", ErrInvalidCredentials
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			return s.issue(u)
		}
	}
	return nil, "", ErrInvalidCredentials
}

func (s *AuthService) issue(user *model.User) (*model.User, string, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}
	out := *user
	out.Password = ""
	return &out, token, nil
}

func (s *AuthService) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken parses and validates a session token, returning its claims.
func (s *AuthService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
