package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-habit-tracker/models"
)

// UserValidator validates account payloads.
//
// Supported types:
//   - models.User / *models.User (registration)
//   - models.Credentials / *models.Credentials (login)
//   - models.ProfileUpdate / *models.ProfileUpdate
//   - models.RefreshRequest / *models.RefreshRequest
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateRegistration(value, fields...)
	case *models.User:
		return v.validateRegistration(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)

	case models.RefreshRequest:
		return NewValidationError().addRequired(FieldRefresh, value.Refresh).OrNil()
	case *models.RefreshRequest:
		return NewValidationError().addRequired(FieldRefresh, value.Refresh).OrNil()

	default:
		return ErrUnsupportedType
	}
}

// validateRegistration checks email format, password length and name lengths.
func (v *UserValidator) validateRegistration(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			verr.Add(email(user.Email))
		case FieldPassword:
			if fe := required(FieldPassword, user.Password); fe != nil {
				verr.Add(fe)
			} else if utf8.RuneCountInString(user.Password) < minPasswordLength {
				verr.Add(&FieldError{
					Field:   FieldPassword,
					Kind:    KindTooShort,
					Message: fmt.Sprintf("Ensure this field has at least %d characters.", minPasswordLength),
				})
			}
		case FieldFirstName:
			verr.Add(maxLength(FieldFirstName, user.FirstName, maxNameLength))
		case FieldLastName:
			verr.Add(maxLength(FieldLastName, user.LastName, maxNameLength))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return verr.OrNil()
}

func (v *UserValidator) validateCredentials(c models.Credentials) error {
	return NewValidationError().
		addRequired(FieldEmail, c.Email).
		addRequired(FieldPassword, c.Password).
		OrNil()
}

func (v *UserValidator) validateProfileUpdate(p models.ProfileUpdate) error {
	verr := &ValidationError{}
	if p.FirstName != nil {
		verr.Add(maxLength(FieldFirstName, *p.FirstName, maxNameLength))
	}
	if p.LastName != nil {
		verr.Add(maxLength(FieldLastName, *p.LastName, maxNameLength))
	}
	if p.TelegramChatID != nil {
		verr.Add(maxLength(FieldTelegramChatID, *p.TelegramChatID, maxChatIDLength))
	}
	return verr.OrNil()
}

func (e *ValidationError) addRequired(field, value string) *ValidationError {
	e.Add(required(field, value))
	return e
}

func email(value string) *FieldError {
	if fe := required(FieldEmail, value); fe != nil {
		return fe
	}
	if fe := maxLength(FieldEmail, value, maxTextLength); fe != nil {
		return fe
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(addr.Address, "@") {
		return &FieldError{Field: FieldEmail, Kind: KindInvalidFormat, Message: "Enter a valid email address."}
	}
	return nil
}

// ValidateChatID checks a Telegram chat id the same way a profile update
// does. It is used by tools that set the chat id directly.
func ValidateChatID(chatID string) error {
	verr := &ValidationError{}
	verr.Add(required(FieldTelegramChatID, chatID))
	verr.Add(maxLength(FieldTelegramChatID, chatID, maxChatIDLength))
	return verr.OrNil()
}
