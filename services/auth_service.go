package services

import (
	"context"
	"fmt"
	"time"

	"cricket_server/apperrors"
	"cricket_server/models"
	"cricket_server/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the identity provider: signup, login and the signed
// credential binding a request to a captain id. The core services only ever
// see the captain id it produces.
type AuthService struct {
	Store    storage.Store
	Teams    *TeamService
	Secret   []byte
	TokenTTL time.Duration
}

type Claims struct {
	UserID string `json:"user_id"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// SignupInput is the payload for account creation.
type SignupInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
	TeamName string `json:"team_name"`
}

// AuthResult carries the issued token and the public view of the user.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SignUp creates a user and, for captains, their team. Phone numbers are
// unique across users.
func (s *AuthService) SignUp(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if input.Name == "" || input.Phone == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, phone and password are required", apperrors.ErrInvalidInput)
	}

	existing, err := s.Store.GetUserByPhone(ctx, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleCaptain
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if role == models.RoleCaptain {
		if _, err := s.Teams.EnsureTeam(ctx, user.ID, input.TeamName); err != nil {
			return nil, err
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates by phone and password.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*AuthResult, error) {
	user, err := s.Store.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidPassword
	}

	token, err := s.issueToken(*user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: *user}, nil
}

func (s *AuthService) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
