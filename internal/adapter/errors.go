package adapter

import "errors"

var (
	ErrDispatchFailed  = errors.New("message dispatch failed")
	ErrUnauthorized    = errors.New("bot token rejected")
	ErrChatNotFound    = errors.New("chat not found")
	ErrTooManyRequests = errors.New("rate limited by provider")
	ErrInvalidBaseURL  = errors.New("invalid telegram base url")
	ErrMissingBotToken = errors.New("telegram bot token is empty")
)
