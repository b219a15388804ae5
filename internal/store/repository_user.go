package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user. The email is stored lower-cased.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.ToLower(user.Email)
	query, args, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		if r.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.writeError(err)
	}

	return created, nil
}

// FindUserByEmail returns the user with the given email, compared
// case-insensitively. A missing user returns [ErrNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": strings.ToLower(email)})
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(readError(err), ErrNotFound) {
			log.Err(err).Str("func", funcName).Msg("error finding user")
		}
		return models.User{}, readError(err)
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of update. Without any field it
// returns the stored user unchanged.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	set := make(map[string]any, 3)
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.TelegramChatID != nil {
		set["telegram_chat_id"] = nullableChatID(update.TelegramChatID)
	}

	if len(set) == 0 {
		return r.FindUserByID(ctx, userID)
	}

	return r.updateUser(ctx, "*userRepository.UpdateProfile", sq.Eq{"user_id": userID}, set)
}

func (r *userRepository) UpdateTelegramChatID(ctx context.Context, email string, chatID *string) (models.User, error) {
	return r.updateUser(ctx, "*userRepository.UpdateTelegramChatID",
		sq.Eq{"email": strings.ToLower(email)},
		map[string]any{"telegram_chat_id": nullableChatID(chatID)},
	)
}

func (r *userRepository) updateUser(ctx context.Context, funcName string, where sq.Eq, set map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, where, set)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return models.User{}, r.writeError(err)
	}

	return user, nil
}

// nullableChatID maps an empty chat id to NULL.
func nullableChatID(chatID *string) *string {
	if chatID == nil || *chatID == "" {
		return nil
	}
	return chatID
}
