package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/admin-backend/utils"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/v1/login", map[string]string{
		"password": "hunter2",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	token, ok := body["token"].(string)
	require.True(t, ok)

	claims, err := utils.VerifyToken(token, []byte(env.handler.Config.JWTSecret))
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/v1/login", map[string]string{
		"password": "not-it",
	})

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
}

func TestLogin_MissingPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/v1/login", map[string]string{})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
