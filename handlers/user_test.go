package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-api/models"
)

func TestGetUser_RequiresBearer(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/v1/user/getUser", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, "GET", "/api/v1/user/getUser", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser_Success(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ravi@example.com")

	w := env.do(t, "GET", "/api/v1/user/getUser", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, w)
	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ravi@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, user, "PasswordHash")
}

func TestUpdateUser_PartialMerge(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ravi@example.com")

	w := env.do(t, "PUT", "/api/v1/user/updateUser", token, gin.H{
		"address": "99 Elm St",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, env.db.Where("email = ?", "ravi@example.com").First(&user).Error)
	assert.Equal(t, "99 Elm St", user.Address)
	// untouched fields survive the merge
	assert.Equal(t, "tester", user.Username)
	assert.Equal(t, "5551234", user.Phone)
}

func TestUpdatePassword(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ravi@example.com")

	// missing fields
	w := env.do(t, "PUT", "/api/v1/user/updatePassword", token, gin.H{
		"newPassword": "n3wpassword",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// wrong old password
	w = env.do(t, "PUT", "/api/v1/user/updatePassword", token, gin.H{
		"oldPassword": "wrong",
		"newPassword": "n3wpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// correct old password
	w = env.do(t, "PUT", "/api/v1/user/updatePassword", token, gin.H{
		"oldPassword": "hunter22",
		"newPassword": "n3wpassword",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "ravi@example.com",
		"password": "n3wpassword",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetPasswordByAnswer(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ravi@example.com")

	w := env.do(t, "POST", "/api/v1/user/resetPassword", token, gin.H{
		"email":       "ravi@example.com",
		"answer":      "wrong",
		"newPassword": "n3wpassword",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "POST", "/api/v1/user/resetPassword", token, gin.H{
		"email":       "ravi@example.com",
		"answer":      "blue",
		"newPassword": "n3wpassword",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "ravi@example.com",
		"password": "n3wpassword",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ravi@example.com")

	w := env.do(t, "DELETE", "/api/v1/user/deleteUser", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// record is gone; token now resolves to nothing
	w = env.do(t, "GET", "/api/v1/user/getUser", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, "DELETE", "/api/v1/user/deleteUser", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
