// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row. A unique violation on
// email or username is reported as [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash, user.AvatarURL)

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email or username already taken")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail returns [ErrUserNotFound] when no account has the email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns [ErrUserNotFound] when no account has the id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		avatarURL sql.NullString
	)

	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &avatarURL, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	if avatarURL.Valid {
		user.AvatarURL = &avatarURL.String
	}

	return user, nil
}
