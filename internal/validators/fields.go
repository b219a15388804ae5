package validators

// Field keys reported in a *ValidationError. They match the JSON names of
// the request payloads.
const (
	FieldPlace       = "place"
	FieldTime        = "time"
	FieldAction      = "action"
	FieldDuration    = "duration"
	FieldPeriodicity = "periodicity"
	FieldReward      = "reward"
	FieldRelated     = "related_habit"

	// FieldNonField groups failures that involve several fields.
	FieldNonField = "non_field_errors"

	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldTelegramChatID = "telegram_chat_id"
	FieldRefresh        = "refresh"
)

const (
	maxTextLength     = 255
	maxNameLength     = 30
	maxChatIDLength   = 50
	minPasswordLength = 8

	// MaxDurationSeconds is the longest allowed habit duration.
	MaxDurationSeconds = 120
	MinPeriodicity     = 1
	MaxPeriodicity     = 7
)
