// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nickname, &u.Avatar, &u.IsAdmin, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanAdminUser(row rowScanner) (models.AdminUser, error) {
	var u models.AdminUser
	err := row.Scan(&u.ID, &u.Email, &u.Nickname, &u.Avatar, &u.IsAdmin, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
		&u.Counts.Favorites, &u.Counts.Playlists, &u.Counts.History)
	return u, err
}

// CreateUser inserts the account and its default settings row in one
// transaction.
//
// A unique_violation on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.inTx(ctx, "userRepository.CreateUser", func(tx *sql.Tx) error {
		var scanErr error
		created, scanErr = scanUser(tx.QueryRowContext(ctx, createUser,
			user.ID, user.Email, user.PasswordHash, user.Nickname, user.Avatar, user.IsAdmin))
		if scanErr != nil {
			if postgresError(scanErr) == pgerrcode.UniqueViolation {
				return ErrEmailAlreadyExists
			}
			log.Err(scanErr).Str("func", "userRepository.CreateUser").Msg("error inserting user")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}

		if _, execErr := tx.ExecContext(ctx, createDefaultSettings, created.ID); execErr != nil {
			log.Err(execErr).Str("func", "userRepository.CreateUser").Str("user_id", created.ID).Msg("error creating default settings")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query, key string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateProfile overwrites the present profile fields.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, update models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := r.db.sb().Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)
	if update.Nickname != nil {
		builder = builder.Set("nickname", *update.Nickname)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateProfile").Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.UpdateProfile").Str("user_id", id).Msg("error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns one page of users, newest first, and the total number
// of users matching the search.
func (r *userRepository) ListUsers(ctx context.Context, query models.UserListQuery) ([]models.AdminUser, int, error) {
	log := logger.FromContext(ctx)

	var filter sq.Sqlizer = sq.Expr("TRUE")
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		filter = sq.Or{sq.ILike{"u.email": pattern}, sq.ILike{"u.nickname": pattern}}
	}

	countQuery, countArgs, err := r.db.sb().Select("COUNT(*)").From("users u").Where(filter).ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to count users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := r.db.sb().Select(adminUserColumns...).
		From("users u").
		Where(filter).
		OrderBy("u.created_at DESC").
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset())).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := r.queryAdminUsers(ctx, "userRepository.ListUsers", listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) RecentUsers(ctx context.Context, limit int) ([]models.AdminUser, error) {
	query, args, err := r.db.sb().Select(adminUserColumns...).
		From("users u").
		OrderBy("u.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryAdminUsers(ctx, "userRepository.RecentUsers", query, args...)
}

func (r *userRepository) queryAdminUsers(ctx context.Context, funcName, query string, args ...any) ([]models.AdminUser, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.AdminUser, 0)
	for rows.Next() {
		u, scanErr := scanAdminUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetAdminUser returns the user with its collection counts.
func (r *userRepository) GetAdminUser(ctx context.Context, id string) (models.AdminUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb().Select(adminUserColumns...).
		From("users u").
		Where(sq.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return models.AdminUser{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanAdminUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AdminUser{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.GetAdminUser").Str("user_id", id).Msg("failed to scan user")
		return models.AdminUser{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) SetBanned(ctx context.Context, id string, banned bool) (models.AdminUser, error) {
	if err := r.execOnUser(ctx, "userRepository.SetBanned", setUserBanned, id, banned); err != nil {
		return models.AdminUser{}, err
	}
	return r.GetAdminUser(ctx, id)
}

func (r *userRepository) SetAdmin(ctx context.Context, id string, isAdmin bool) (models.AdminUser, error) {
	if err := r.execOnUser(ctx, "userRepository.SetAdmin", setUserAdmin, id, isAdmin); err != nil {
		return models.AdminUser{}, err
	}
	return r.GetAdminUser(ctx, id)
}

// DeleteUser removes the account. Owned rows go with it (ON DELETE CASCADE).
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.execOnUser(ctx, "userRepository.DeleteUser", deleteUser, id)
}

// execOnUser runs a statement keyed by user id and reports
// [ErrUserNotFound] when no row was affected.
func (r *userRepository) execOnUser(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Stats counts users, users created since todayStart and every synced
// collection.
func (r *userRepository) Stats(ctx context.Context, todayStart time.Time) (models.Stats, error) {
	log := logger.FromContext(ctx)

	var s models.Stats
	err := r.db.QueryRowContext(ctx, countStats, todayStart).
		Scan(&s.TotalUsers, &s.TodayUsers, &s.TotalFavorites, &s.TotalPlaylists, &s.TotalPlayHistory)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Stats").Msg("failed to count stats")
		return models.Stats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}
