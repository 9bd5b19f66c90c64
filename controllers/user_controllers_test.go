package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	_, r, _, _ := setupEnv(t, "ctrl_users")

	code, resp := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "supersecret1",
	})
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "User registered", resp["message"])

	// Short password fails validation.
	code, _ = doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"name":     "Eve",
		"email":    "eve@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// Self-registering as admin without admin credentials is refused.
	code, _ = doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"name":     "Mallory",
		"email":    "mallory@example.com",
		"password": "supersecret1",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, resp = doJSON(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    "dana@example.com",
		"password": "supersecret1",
	})
	assert.Equal(t, http.StatusOK, code)
	token := dataMap(t, resp)["token"].(string)
	assert.NotEmpty(t, token)

	// The issued token opens authenticated routes.
	code, resp = doJSON(t, r, "GET", "/profile", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dana@example.com", dataMap(t, resp)["email"])

	// Wrong password.
	code, _ = doJSON(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    "dana@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}
