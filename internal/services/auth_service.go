package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New(utils.ErrInvalidCredentials)
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrAlreadyVerified    = errors.New("email is already verified")
)

type AuthService interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error)
	GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	ResendVerificationEmail(ctx context.Context, userID primitive.ObjectID) error
	VerifyEmail(ctx context.Context, token string) error
}

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
}

// SessionCache holds active-session markers and short-lived verification
// tokens. Backed by redis in production.
type SessionCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type authService struct {
	userRepo  interfaces.UserRepository
	cache     SessionCache
	jwtSecret string
	logger    *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, cache SessionCache, jwtSecret string, log *logger.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		cache:     cache,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (s *authService) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	if _, err := s.userRepo.GetByEmail(ctx, request.Email); err == nil {
		return nil, errors.New(utils.ErrUserExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
		Password:  string(hashed),
		Status:    models.UserStatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.LogUserAction(user.ID, utils.EventUserRegistered, map[string]interface{}{
		"email": user.Email,
	})

	// Kick off verification; delivery itself is mocked.
	if err := s.ResendVerificationEmail(ctx, user.ID); err != nil {
		s.logger.WithUserID(user.ID).WithError(err).Warn("Failed to issue verification token")
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended {
		return nil, ErrAccountSuspended
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.WithUserID(user.ID).WithError(err).Warn("Failed to record last login")
	}

	s.logger.LogUserAction(user.ID, utils.EventUserLogin, nil)

	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	if s.cache != nil {
		return s.cache.Delete(ctx, utils.CacheSessionPrefix+userID.Hex())
	}
	return nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	return utils.RefreshAccessToken(refreshToken, s.jwtSecret)
}

func (s *authService) GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ResendVerificationEmail issues a fresh verification token. Actual email
// delivery is out of scope; the token is logged so development flows can
// complete verification by hand.
func (s *authService) ResendVerificationEmail(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return ErrAlreadyVerified
	}

	token := utils.GenerateRandomString(32)
	if s.cache != nil {
		if err := s.cache.Set(ctx, verificationKey(token), user.ID.Hex(), 15*time.Minute); err != nil {
			return fmt.Errorf("failed to store verification token: %w", err)
		}
	}

	s.logger.WithUserID(user.ID).
		WithField("verification_token", token).
		Info("Verification email queued (mock delivery)")

	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	if s.cache == nil {
		return errors.New(utils.ErrInvalidToken)
	}

	var userIDHex string
	if err := s.cache.Get(ctx, verificationKey(token), &userIDHex); err != nil {
		return errors.New(utils.ErrInvalidToken)
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return errors.New(utils.ErrInvalidToken)
	}

	if err := s.userRepo.SetEmailVerified(ctx, userID, true); err != nil {
		return err
	}

	return s.cache.Delete(ctx, verificationKey(token))
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*AuthResponse, error) {
	pair, err := utils.GenerateTokenPair(user.ID, user.Email, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, utils.CacheSessionPrefix+user.ID.Hex(), time.Now().Unix(), utils.JWTRefreshTokenTTL)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func verificationKey(token string) string {
	return "email_verification:" + token
}
