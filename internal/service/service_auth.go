// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/internal/validators"
	"github.com/MKhiriev/hymusic-sync/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are HMAC-SHA256 JWTs whose
// subject is the user id.
type authService struct {
	users  store.UserRepository
	system store.SystemSettingsRepository

	validator validators.Validator
	ids       idGenerator

	// bcryptCost is the work factor of new password hashes.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over the user and system
// settings repositories, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, system store.SystemSettingsRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		system:        system,
		validator:     validators.NewAuthValidator(),
		ids:           utils.NewUUIDGenerator(),
		bcryptCost:    cfg.BcryptCost,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new account.
//
// The request must pass the email format and password policy checks and
// registration must be enabled. The nickname defaults to the local part of
// the email. A default settings row is created with the user.
//
// Returns the persisted user or:
//   - ErrEmailAndPasswordRequired, ErrInvalidEmail or ErrWeakPassword.
//   - ErrRegistrationDisabled when an admin switched registration off.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "authService.Register").Msg("invalid registration data")
		return models.User{}, mapValidationError(err)
	}

	system, err := a.system.Get(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("read system settings: %w", err)
	}
	if !system.RegistrationEnabled {
		return models.User{}, ErrRegistrationDisabled
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	nickname := defaultNickname(req.Email)
	if req.Nickname != nil && strings.TrimSpace(*req.Nickname) != "" {
		nickname = strings.TrimSpace(*req.Nickname)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Nickname:     &nickname,
	})
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.Register").Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks the credentials. Unknown emails and wrong passwords both
// yield ErrInvalidCredentials; a banned account yields ErrUserBanned.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, mapValidationError(err)
	}

	user, err := a.users.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Str("func", "authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if user.IsBanned {
		log.Info().Str("func", "authService.Login").Str("user_id", user.ID).Msg("banned user tried to log in")
		return models.User{}, ErrUserBanned
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		return models.User{}, err
	}
	if user.IsBanned {
		return user, ErrUserBanned
	}

	return user, nil
}

func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	return a.users.FindUserByID(ctx, userID)
}

// UpdateProfile changes nickname and avatar. An empty update returns the
// user unchanged.
func (a *authService) UpdateProfile(ctx context.Context, userID string, update models.UpdateProfileRequest) (models.User, error) {
	if update.Nickname == nil && update.Avatar == nil {
		return a.users.FindUserByID(ctx, userID)
	}
	return a.users.UpdateProfile(ctx, userID, update)
}

func defaultNickname(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
