package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/minimindteam/Dash/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// AuthService issues and validates the JWT pair the dashboard holds after
// login, and manages admin accounts.
type AuthService struct {
	users      domain.UserRepository
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// EnsureAdmin creates the admin account if no user with the given email
// exists. Idempotent; called once at startup.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: admin email and password are required", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		DisplayName:  "Admin",
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	return nil
}

// Login verifies credentials and returns a fresh access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TokenPair{}, domain.ErrInvalidCredentials
		}
		return domain.TokenPair{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	return s.issuePair(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	userID, _, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return domain.TokenPair{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TokenPair{}, domain.ErrUnauthenticated
		}
		return domain.TokenPair{}, fmt.Errorf("get user: %w", err)
	}

	return s.issuePair(user)
}

// ValidateAccessToken parses an access token and returns the session it
// represents.
func (s *AuthService) ValidateAccessToken(tokenString string) (*domain.Session, error) {
	userID, claims, err := s.parseToken(tokenString, "access")
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	return &domain.Session{UserID: userID, Email: email}, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AuthService) issuePair(user *domain.User) (domain.TokenPair, error) {
	access, err := s.signToken(user, "access", accessTokenTTL)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.signToken(user, "refresh", refreshTokenTTL)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) signToken(user *domain.User, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"typ":   typ,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// parseToken validates signature, expiry, and token type, returning the
// user ID from the sub claim along with the full claim set.
func (s *AuthService) parseToken(tokenString, wantType string) (int64, jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, s.keyFunc)
	if err != nil {
		return 0, nil, domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, nil, domain.ErrUnauthenticated
	}

	if typ, _ := claims["typ"].(string); typ != wantType {
		return 0, nil, domain.ErrUnauthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, nil, domain.ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, nil, domain.ErrUnauthenticated
	}

	return userID, claims, nil
}

func (s *AuthService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.jwtSecret, nil
}
