package handler

import (
	"complaintbox/backend/internal/config"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

const sessionIDKey = "session_id"

// TokenIssuer signs and verifies visitor session tokens.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), lifetime: config.SessionTokenLifetime, now: time.Now}
}

// Issue returns a signed token carrying sessionID.
func (t *TokenIssuer) Issue(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		sessionIDKey: sessionID,
		"exp":        t.now().Add(t.lifetime).Unix(),
		"iss":        config.SessionTokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates tokenString and returns the session id it carries.
func (t *TokenIssuer) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(config.SessionTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session token claims")
	}
	sessionID, _ := claims[sessionIDKey].(string)
	if sessionID == "" {
		return "", errors.New("session token has no session id")
	}
	return sessionID, nil
}

// StartSession creates a visitor session at Home and returns its token.
func (h *Handler) StartSession(c *gin.Context) {
	sessionID := h.Sessions.Start()

	token, err := h.Tokens.Issue(sessionID)
	if err != nil {
		h.Sessions.End(sessionID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "session_id": sessionID})
}

// RequireSession resolves the session token from the Authorization header or,
// for WebSocket upgrades where browsers cannot set headers, the token query
// parameter.
func (h *Handler) RequireSession(c *gin.Context) {
	tokenString := ""
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	sessionID, err := h.Tokens.Parse(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	c.Set(sessionIDKey, sessionID)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
