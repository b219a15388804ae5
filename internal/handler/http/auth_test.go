package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-habit-tracker/internal/service"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/internal/validators"
	"github.com/MKhiriev/go-habit-tracker/models"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m handlerMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"email":"john@example.com","password":"secret123","first_name":"John"}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().
					RegisterUser(gomock.Any(), models.User{Email: "john@example.com", Password: "secret123", FirstName: "John"}).
					Return(models.User{UserID: 1, Email: "john@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Регистрация пользователя john@example.com прошла успешно."}`,
		},
		{
			name: "email taken",
			body: `{"email":"john@example.com","password":"secret123"}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, validators.NewValidationError(validators.FieldError{
					Field:   validators.FieldEmail,
					Kind:    validators.KindUnique,
					Message: service.MsgEmailAlreadyExists,
				}))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"email":[{"code":"unique","message":"user with this email already exists."}]}`,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"JSON parse error."}`,
		},
		{
			name: "storage failure",
			body: `{"email":"john@example.com","password":"secret123"}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingStatement)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rr := doRequest(t, router, http.MethodPost, "/user/register/", tt.body, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("token pair", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().
			Login(gomock.Any(), models.Credentials{Email: "john@example.com", Password: "secret123"}).
			Return(models.TokenPair{Access: "a", Refresh: "r"}, nil)

		rr := doRequest(t, router, http.MethodPost, "/user/login/", `{"email":"john@example.com","password":"secret123"}`, false)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"access":"a","refresh":"r"}`, rr.Body.String())
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.TokenPair{}, service.ErrInvalidCredentials)

		rr := doRequest(t, router, http.MethodPost, "/user/login/", `{"email":"john@example.com","password":"nope"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "No active account found with the given credentials", detailOf(t, rr))
	})

	t.Run("empty body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(t, router, http.MethodPost, "/user/login/", "", false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("new access token", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().
			RefreshAccessToken(gomock.Any(), models.RefreshRequest{Refresh: "r"}).
			Return(models.AccessTokenResponse{Access: "a2"}, nil)

		rr := doRequest(t, router, http.MethodPost, "/user/token/refresh/", `{"refresh":"r"}`, false)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"access":"a2"}`, rr.Body.String())
	})

	t.Run("expired refresh token", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().RefreshAccessToken(gomock.Any(), gomock.Any()).Return(models.AccessTokenResponse{}, service.ErrTokenIsExpiredOrInvalid)

		rr := doRequest(t, router, http.MethodPost, "/user/token/refresh/", `{"refresh":"old"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Token is invalid or expired", detailOf(t, rr))
	})
}
