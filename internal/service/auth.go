package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	blacklistPrefix = "auth:blacklist:"
)

// UserAccountStore extends the read-only UserStore with the writes the
// auth flows need. The gorm user repository satisfies it.
type UserAccountStore interface {
	UserStore
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenBlacklist is the key-value surface used to invalidate refresh
// tokens. The redis client satisfies it; tests use an in-memory fake.
type TokenBlacklist interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

type AuthService struct {
	users         UserAccountStore
	blacklist     TokenBlacklist
	jwtSecret     []byte // Stored in env (JWT_SECRET)
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(users UserAccountStore, blacklist TokenBlacklist, secret string, accessExpiryMins, refreshExpiryHours int) *AuthService {
	return &AuthService{
		users:         users,
		blacklist:     blacklist,
		jwtSecret:     []byte(secret),
		accessExpiry:  time.Duration(accessExpiryMins) * time.Minute,
		refreshExpiry: time.Duration(refreshExpiryHours) * time.Hour,
	}
}

// Creates a new reader-role user
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existingUser, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperr.Validation("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleReader,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticates a user and returns an access/refresh token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", apperr.Auth("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", apperr.Auth("invalid credentials")
	}

	access, err := s.signToken(user, tokenTypeAccess, s.accessExpiry)
	if err != nil {
		return "", "", err
	}

	refresh, err := s.signToken(user, tokenTypeRefresh, s.refreshExpiry)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// Exchanges a valid, non-blacklisted refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return "", err
	}

	jti, _ := claims["jti"].(string)
	blacklisted, err := s.blacklist.Exists(ctx, blacklistPrefix+jti)
	if err != nil {
		return "", err
	}
	if blacklisted {
		return "", apperr.Auth("Invalid or expired refresh token.")
	}

	// Re-read the user so role and paid-flag changes take effect on the
	// next access token.
	userID, _ := claims["user_id"].(string)
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.Auth("Invalid or expired refresh token.")
	}

	return s.signToken(user, tokenTypeAccess, s.accessExpiry)
}

// Invalidates a refresh token by blacklisting its jti until natural expiry
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return err
	}

	jti, _ := claims["jti"].(string)

	ttl := s.refreshExpiry
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}

	return s.blacklist.Set(ctx, blacklistPrefix+jti, "1", ttl)
}

// Validates an access token and returns its claims
func (s *AuthService) ValidateAccess(tokenString string) (jwt.MapClaims, error) {
	return s.parseToken(tokenString, tokenTypeAccess)
}

// Retrieves a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) signToken(user *models.User, tokenType string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"typ":     tokenType,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(expiry).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

func (s *AuthService) parseToken(tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Verifying signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, apperr.Auth("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Auth("Invalid token claims")
	}

	if typ, _ := claims["typ"].(string); typ != wantType {
		return nil, apperr.Auth("Invalid token type")
	}

	return claims, nil
}
