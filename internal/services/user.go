package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	models "github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Logout(ctx context.Context, claims *models.Claims) error
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	sessions  repository.SessionRepository
	jwtKey    []byte
	tokenTTL  time.Duration
}

func NewUserService(
	repo repository.UserRepository,
	rateLimit repository.RateLimitRepository,
	sessions repository.SessionRepository,
	jwtKey []byte,
	tokenTTL time.Duration,
) UserService {
	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		sessions:  sessions,
		jwtKey:    jwtKey,
		tokenTTL:  tokenTTL,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.DuplicateEntryError("Email already registered")
		}
		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, appErrors.UnauthorizedError("Invalid email or password").
			WithDetail(fmt.Sprintf("%d attempts remaining", remaining))
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     tokenString,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

// Logout deny-lists the token's jti until the token would have expired anyway.
func (s *userService) Logout(ctx context.Context, claims *models.Claims) error {

	if claims.ID == "" || claims.ExpiresAt == nil {
		return appErrors.BadRequestError("Token cannot be revoked")
	}

	if err := s.sessions.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return appErrors.ThirdPartyError("Failed to sign out").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Session revoked", slog.String("userID", claims.UserID.String()))

	return nil
}
