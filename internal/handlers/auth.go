package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/YoDarkol23/Absolute-Service/internal/httpx"
)

// sessionTokenTTL bounds how long an issued admin token stays valid.
const sessionTokenTTL = 12 * time.Hour

// loginRequest is the POST /admin/login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleAdminLogin checks the credential pair and, on success, issues
// a signed session token. The token is informational: the admin port
// itself is the gate, and endpoints do not demand the token back.
func (a *API) handleAdminLogin(req *httpx.Request) httpx.Response {
	if len(req.Body) == 0 {
		return httpx.Error(http.StatusBadRequest, errMsgMalformedLogin)
	}
	var creds loginRequest
	if err := json.Unmarshal(req.Body, &creds); err != nil {
		return httpx.Error(http.StatusBadRequest, errMsgMalformedLogin)
	}

	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.auth.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(a.auth.Password)) == 1
	if !userOK || !passOK {
		a.log.Warn("failed admin login", "username", creds.Username)
		return httpx.Error(http.StatusUnauthorized, errMsgBadLogin)
	}

	token, err := a.issueToken(creds.Username)
	if err != nil {
		a.log.Error("failed to sign session token", "error", err)
		return httpx.Error(http.StatusInternalServerError, errMsgInternal)
	}

	a.log.Info("admin login", "username", creds.Username)
	return httpx.JSON(http.StatusOK, map[string]any{
		"status": "success",
		"user": map[string]string{
			"username": creds.Username,
			"role":     "admin",
		},
		"token": token,
	})
}

// issueToken signs a short-lived HS256 session token for username.
func (a *API) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.auth.Secret)
}
