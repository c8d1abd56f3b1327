package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "admin")
	assert.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "admin", sub)

	// tokens signed with another key fail verification
	other := jwtauth.New("HS256", []byte("other"), nil)
	_, err = VerifyToken(other, tok)
	assert.Error(t, err)
}
