package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, path, body, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newAccountHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)

	return NewAccountHandler(AccountHandlerParams{
		AccountUC: accountUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), accountUC
}

func TestAccountHandler_Register(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"correct horse"}`, "")

	accountUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "correct horse"}).
		Return(&usecase.AuthOutput{
			Token:     "signed",
			ExpiresAt: time.Now().Add(24 * time.Hour),
			Account:   entity.AccountView{ID: uuid.New(), Email: "alice@example.com", Role: entity.RoleStandard},
		}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed"`)
}

func TestAccountHandler_Register_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "duplicate email", err: domainerrors.ErrDuplicateEmail.WrapMessage("taken"), status: http.StatusConflict, code: "DUPLICATE_EMAIL"},
		{name: "validation", err: domainerrors.ErrValidationFailed, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, accountUC := newAccountHandler(t)
			c, rec := newTestContext(http.MethodPost, "/api/auth/register",
				`{"name":"Alice","email":"alice@example.com","password":"correct horse"}`, "")

			accountUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err)

			require.NoError(t, h.Register(c))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			assert.NotContains(t, rec.Body.String(), "taken")
		})
	}
}

func TestAccountHandler_Register_ServerErrorIsPassedOn(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	c, _ := newTestContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"correct horse"}`, "")

	accountUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "bcrypt exploded"))

	err := h.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountHandler_Register_InvalidBodyNeverReachesUsecase(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "malformed json", body: `{"name":`, code: "INVALID_INPUT"},
		{name: "missing name", body: `{"email":"alice@example.com","password":"correct horse"}`, code: "VALIDATION_FAILED"},
		{name: "password too long", body: `{"name":"A","email":"a@example.com","password":"` + strings.Repeat("p", 73) + `"}`, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newAccountHandler(t)
			c, rec := newTestContext(http.MethodPost, "/api/auth/register", tt.body, "")

			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, "")

	accountUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_CREDENTIALS"`)
}

func TestAccountHandler_VerifyToken_PassesHeaderThrough(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/auth/verify-token", "", "Bearer abc")

	accountUC.EXPECT().VerifyToken(mock.Anything, "Bearer abc").Return(&usecase.VerifyTokenOutput{Valid: false})

	require.NoError(t, h.VerifyToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
}

func TestAccountHandler_GetProfile_ErrorKinds(t *testing.T) {
	kinds := []*domainerrors.BaseError{
		domainerrors.ErrMissingCredential,
		domainerrors.ErrInvalidToken,
		domainerrors.ErrExpiredToken,
		domainerrors.ErrAccountNotFound,
	}

	for _, kind := range kinds {
		t.Run(kind.ErrorCode(), func(t *testing.T) {
			h, accountUC := newAccountHandler(t)
			c, rec := newTestContext(http.MethodGet, "/api/auth/profile", "", "Bearer abc")

			accountUC.EXPECT().GetProfile(mock.Anything, "Bearer abc").Return(nil, errors.Wrap(kind, "resolve"))

			require.NoError(t, h.GetProfile(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+kind.ErrorCode()+`"`)
		})
	}
}
