// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/store"
	"github.com/digiplay/dineo/internal/utils"
	"github.com/digiplay/dineo/models"
	"golang.org/x/crypto/bcrypt"
)

// idGenerator produces unique string ids.
type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
//
// Every successful register or login creates a session row. The issued JWT
// carries the session id in its "jti" claim, so deleting the row revokes the
// token even before it expires.
type authService struct {
	users    store.UserRepository
	sessions store.SessionRepository

	// cache holds verified sessions until they expire.
	cache store.SessionCache

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	bcryptCost int
	ids        idGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewAuthService builds an AuthService over the user and session stores of
// storages. A zero cfg.TokenDuration falls back to
// [models.DefaultSessionDuration].
func NewAuthService(storages *store.Storages, cfg config.App, logger *logger.Logger) AuthService {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = models.DefaultSessionDuration
	}

	cache := storages.SessionCache
	if cache == nil {
		cache = store.NewNopSessionCache()
	}

	return &authService{
		users:         storages.UserRepository,
		sessions:      storages.SessionRepository,
		cache:         cache,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: duration,
		bcryptCost:    bcrypt.DefaultCost,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
}

// Register creates an account and opens its first session.
//
// Returns ErrUserAlreadyExists when the email or the username is taken and
// ErrPasswordTooLong for passwords bcrypt cannot hash.
func (a *authService) Register(ctx context.Context, email, username, password string) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.AuthResponse{}, ErrPasswordTooLong
		}
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Email:        strings.TrimSpace(email),
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("func", "*authService.Register").Str("email", email).Msg("user already exists")
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.openSession(ctx, user)
}

// Login checks the credentials and opens a new session. An unknown email and
// a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "*authService.Login").Str("email", email).Msg("unknown email")
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Info().Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.openSession(ctx, user)
}

// Verify resolves the owner of token.
func (a *authService) Verify(ctx context.Context, token string) (models.User, error) {
	parsed, err := a.ParseToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.users.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidOrExpiredToken
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Verify").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ParseToken validates token and its backing session. Any validation failure
// is reported as ErrInvalidOrExpiredToken; storage failures are returned
// wrapped.
func (a *authService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrInvalidOrExpiredToken
	}

	session, err := a.findSession(ctx, parsed.SessionID())
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Token{}, ErrInvalidOrExpiredToken
		}
		return models.Token{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != parsed.UserID {
		log.Debug().Str("func", "*authService.ParseToken").Str("session_id", session.ID).Msg("session owner mismatch")
		return models.Token{}, ErrInvalidOrExpiredToken
	}
	if session.Expired(a.now()) {
		log.Debug().Str("func", "*authService.ParseToken").Str("session_id", session.ID).Msg("session expired")
		a.revokeSession(ctx, session.ID)
		return models.Token{}, ErrInvalidOrExpiredToken
	}

	return parsed, nil
}

// CleanupSessions deletes sessions that expired before now.
func (a *authService) CleanupSessions(ctx context.Context) (int64, error) {
	deleted, err := a.sessions.DeleteExpiredSessions(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("session cleanup failed: %w", err)
	}
	return deleted, nil
}

// openSession stores a new session for user and signs a token for it.
func (a *authService) openSession(ctx context.Context, user models.User) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessions.CreateSession(ctx, models.StoredSession{
		ID:        a.ids.Generate(),
		UserID:    user.ID,
		ExpiresAt: a.now().Add(a.tokenDuration),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.openSession").Int64("user_id", user.ID).Msg("session creation failed")
		return models.AuthResponse{}, fmt.Errorf("session creation failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, session.ID, session.ExpiresAt, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.openSession").Msg("creation of token failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	a.cacheSession(ctx, session)

	return models.AuthResponse{Token: token.SignedString, User: &user}, nil
}

// findSession reads through the cache. Cache failures fall back to the
// database.
func (a *authService) findSession(ctx context.Context, id string) (models.StoredSession, error) {
	session, err := a.cache.GetSession(ctx, id)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*authService.findSession").Msg("session cache unavailable")
	}

	session, err = a.sessions.FindSession(ctx, id)
	if err != nil {
		return models.StoredSession{}, err
	}

	if !session.Expired(a.now()) {
		a.cacheSession(ctx, session)
	}
	return session, nil
}

// revokeSession drops the session row together with its cache entry. Failures
// are only logged: the cleanup worker removes leftover rows.
func (a *authService) revokeSession(ctx context.Context, id string) {
	log := logger.FromContext(ctx)
	if err := a.cache.DeleteSession(ctx, id); err != nil {
		log.Warn().Err(err).Str("func", "*authService.revokeSession").Msg("failed to evict cached session")
	}
	if err := a.sessions.DeleteSession(ctx, id); err != nil {
		log.Warn().Err(err).Str("func", "*authService.revokeSession").Msg("failed to delete session")
	}
}

func (a *authService) cacheSession(ctx context.Context, session models.StoredSession) {
	if err := a.cache.SetSession(ctx, session); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*authService.cacheSession").Msg("failed to cache session")
	}
}
