package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/internal/validators"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// MsgEmailAlreadyExists is the field message of a duplicate registration.
const MsgEmailAlreadyExists = "user with this email already exists."

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	// passwordCost is the bcrypt cost factor.
	passwordCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		validator:            validators.NewUserValidator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		passwordCost:         bcrypt.DefaultCost,
		logger:               logger,
	}
}

// RegisterUser creates a new active user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a *validators.ValidationError for a malformed payload or a taken email.
//   - ErrPasswordHashing if bcrypt fails.
//   - a wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user.PasswordHash = string(hash)
	user.Password = ""
	user.IsActive = true
	user.TelegramChatID = nil

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, validators.NewValidationError(validators.FieldError{
			Field:   validators.FieldEmail,
			Kind:    validators.KindUnique,
			Message: MsgEmailAlreadyExists,
		})
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an active user and issues a token pair.
//
// An unknown email, a wrong password and an inactive account all return
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.TokenPair{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNotFound) {
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if !foundUser.IsActive {
		log.Debug().Int64("id", foundUser.UserID).Msg("inactive user tried to log in")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return a.CreateTokenPair(ctx, foundUser)
}

// CreateTokenPair issues an access and a refresh token for user.
func (a *authService) CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, models.AccessToken, user.UserID, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, models.RefreshToken, user.UserID, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{Access: access.String(), Refresh: refresh.String()}, nil
}

// RefreshAccessToken validates a refresh token and issues a new access
// token for its subject. Refresh tokens of deleted or inactive users are
// rejected with ErrTokenIsExpiredOrInvalid.
func (a *authService) RefreshAccessToken(ctx context.Context, request models.RefreshRequest) (models.AccessTokenResponse, error) {
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.AccessTokenResponse{}, err
	}

	refresh, err := utils.ValidateAndParseJWTToken(request.Refresh, a.tokenSignKey, a.tokenIssuer, models.RefreshToken)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("refresh token rejected")
		return models.AccessTokenResponse{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, refresh.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return models.AccessTokenResponse{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.IsActive {
		return models.AccessTokenResponse{}, ErrTokenIsExpiredOrInvalid
	}

	access, err := utils.GenerateJWTToken(a.tokenIssuer, models.AccessToken, user.UserID, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AccessTokenResponse{Access: access.String()}, nil
}

// ParseAccessToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, refresh token
// presented) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.AccessToken)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
