package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
)

// telegramResponse is the envelope of every Bot API reply.
type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

type telegramNotifier struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewTelegramNotifier constructs a Telegram Bot API implementation of
// [Notifier]. It normalises cfg.BaseURL and configures the HTTP client with
// the request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed, or if the
// bot token is missing.
func NewTelegramNotifier(cfg config.Telegram, log *logger.Logger) (Notifier, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if strings.TrimSpace(cfg.BotToken) == "" {
		return nil, ErrMissingBotToken
	}

	return &telegramNotifier{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		token:  strings.TrimSpace(cfg.BotToken),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendMessage implements [Notifier]. It POSTs a form with chat_id and text
// to {base}/bot{token}/sendMessage.
func (t *telegramNotifier) SendMessage(ctx context.Context, chatID, text string) error {
	log := logger.FromContext(ctx)

	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id": chatID,
			"text":    text,
		}).
		Post("/bot" + t.token + "/sendMessage")
	if err != nil {
		log.Err(err).Str("func", "*telegramNotifier.SendMessage").Str("chat_id", chatID).Msg("sendMessage request failed")
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	if err = mapTelegramError(resp); err != nil {
		log.Err(err).
			Str("func", "*telegramNotifier.SendMessage").
			Str("chat_id", chatID).
			Int("status", resp.StatusCode()).
			Msg("sendMessage rejected")
		return err
	}

	return nil
}

// mapTelegramError converts a non-2xx status or an {"ok": false} body into
// an error wrapping ErrDispatchFailed.
func mapTelegramError(resp *resty.Response) error {
	var body telegramResponse
	decodeErr := json.Unmarshal(resp.Body(), &body)

	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if decodeErr != nil {
			return fmt.Errorf("%w: undecodable response: %w", ErrDispatchFailed, decodeErr)
		}
		if !body.OK {
			return fmt.Errorf("%w: %s", ErrDispatchFailed, body.Description)
		}
		return nil
	}

	description := body.Description
	if description == "" {
		description = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrDispatchFailed, ErrUnauthorized, description)
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound:
		if strings.Contains(strings.ToLower(description), "chat not found") {
			return fmt.Errorf("%w: %w: %s", ErrDispatchFailed, ErrChatNotFound, description)
		}
		return fmt.Errorf("%w: http %d: %s", ErrDispatchFailed, status, description)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrDispatchFailed, ErrTooManyRequests, description)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrDispatchFailed, status, description)
	}
}
