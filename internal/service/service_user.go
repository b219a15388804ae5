package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/internal/validators"
	"github.com/MKhiriev/go-habit-tracker/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting profile: %w", err)
	}
	return user, nil
}

// UpdateProfile applies update to the profile of userID. An empty
// telegram_chat_id disables reminders for the user.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateProfile").Int64("user_id", userID).Msg("error updating profile")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}
	return user, nil
}

func (s *userService) SetTelegramChatID(ctx context.Context, email, chatID string) (models.User, error) {
	if chatID != "" {
		if err := validators.ValidateChatID(chatID); err != nil {
			return models.User{}, err
		}
	}

	user, err := s.userRepository.UpdateTelegramChatID(ctx, email, &chatID)
	if err != nil {
		return models.User{}, fmt.Errorf("error setting telegram chat id: %w", err)
	}

	s.logger.Info().Str("func", "*userService.SetTelegramChatID").Int64("user_id", user.UserID).Bool("cleared", chatID == "").Msg("telegram chat id updated")
	return user, nil
}
