package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"niddle_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerFields(email string) map[string]string {
	return map[string]string{
		"name":             "Flow User",
		"email":            email,
		"password":         "password123",
		"confirm_password": "password123",
		"phone_number":     "+77001112233",
		"address":          "2 Flow Street",
	}
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := "flow@test.com"

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register", "", registerFields(email), nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, "register should succeed: %s", body)

	sent := ts.Mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, email, sent[0].To)

	// Unverified accounts cannot log in.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/mail_verification/"+email, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var loginResponse struct {
		Token string `json:"access_token"`
		User  struct {
			ID uint `json:"user_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	// The token opens the protected surface.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/get_all_users", loginResponse.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", loginResponse.User.ID), loginResponse.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register", "", registerFields("dup@test.com"), nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register", "", registerFields("dup@test.com"), nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	ts := helpers.NewTestServer(t)

	fields := registerFields("mismatch@test.com")
	fields["confirm_password"] = "different1"

	res, _ := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register", "", fields, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Empty(t, ts.Mailer.Sent())
}

func TestLoginFailures(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, "Login User", "login@test.com", "password123")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "unknown email")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "login@test.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "wrong password")
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/get_all_users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/get_all_users", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestPasswordResetFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "Reset User", "resetflow@test.com", "password123")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/password_reset/request/"+user.Email, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	sent := ts.Mailer.Sent()
	require.Len(t, sent, 1)
	code := sent[0].Code
	require.NotZero(t, code)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/password_reset/reset", "", map[string]interface{}{
		"email":            user.Email,
		"code":             code,
		"password":         "brandnewpass1",
		"confirm_password": "brandnewpass1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Old password is out, new one works.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "brandnewpass1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
