package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/jekabolt/waitlist-manager/internal/dependency/mocks"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret      = "hehe"
	masterPassword = "FJKqDyBvr9pAQMB3f8Uj4s"

	username = "testUsername"
	password = "testPassword"
)

func testConfig() *Config {
	return &Config{
		JWTSecret:                jwtSecret,
		MasterPassword:           masterPassword,
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 100000,
		JWTTTL:                   "60m",
	}
}

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	as := mocks.NewAdmin(t)

	authsrv, err := New(testConfig(), as)
	require.NoError(t, err)

	as.On("AddAdmin", mock.Anything, "testusername", mock.Anything).Return(nil)
	tok, err := authsrv.Create(ctx, &CreateUserRequest{
		MasterPassword: masterPassword,
		Username:       username,
		Password:       password,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tok.AuthToken)

	// a created token authenticates requests
	r := httptest.NewRequest("GET", "/api/admin/waitlists", nil)
	r.Header.Set(AuthHeader, "Bearer "+tok.AuthToken)
	sub, err := authsrv.VerifyRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "testusername", sub)

	pwHash, err := authsrv.pwhash.HashPassword(password)
	require.NoError(t, err)

	as.On("PasswordHashByUsername", mock.Anything, "testusername").Return(pwHash, nil)
	_, err = authsrv.Login(ctx, &LoginRequest{Username: username, Password: password})
	assert.NoError(t, err)

	_, err = authsrv.Login(ctx, &LoginRequest{Username: username, Password: "wrong"})
	require.Error(t, err)
	ge, ok := gerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_CREDENTIALS", ge.Code)
}

func TestCreate_WrongMasterPassword(t *testing.T) {
	as := mocks.NewAdmin(t)
	authsrv, err := New(testConfig(), as)
	require.NoError(t, err)

	_, err = authsrv.Create(context.Background(), &CreateUserRequest{
		MasterPassword: "nope",
		Username:       username,
		Password:       password,
	})
	assert.True(t, errors.Is(err, gerr.ErrUnauthorized))
}

func TestChangePassword_MasterOverride(t *testing.T) {
	ctx := context.Background()
	as := mocks.NewAdmin(t)
	authsrv, err := New(testConfig(), as)
	require.NoError(t, err)

	pwHash, err := authsrv.pwhash.HashPassword(password)
	require.NoError(t, err)

	as.On("PasswordHashByUsername", mock.Anything, "testusername").Return(pwHash, nil)
	as.On("ChangePassword", mock.Anything, "testusername", mock.Anything).Return(nil)

	// master password stands in for the current one
	_, err = authsrv.ChangePassword(ctx, &ChangePasswordRequest{
		Username:        username,
		CurrentPassword: masterPassword,
		NewPassword:     "freshPassword",
	})
	assert.NoError(t, err)

	// a wrong current password fails
	_, err = authsrv.ChangePassword(ctx, &ChangePasswordRequest{
		Username:        username,
		CurrentPassword: "wrong",
		NewPassword:     "freshPassword",
	})
	assert.Error(t, err)
}

func TestVerifyRequest_Invalid(t *testing.T) {
	as := mocks.NewAdmin(t)
	authsrv, err := New(testConfig(), as)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/api/admin/waitlists", nil)
	_, err = authsrv.VerifyRequest(r)
	assert.True(t, errors.Is(err, gerr.ErrUnauthorized))

	r.Header.Set(AuthHeader, "Bearer garbage")
	_, err = authsrv.VerifyRequest(r)
	assert.True(t, errors.Is(err, gerr.ErrUnauthorized))
}
