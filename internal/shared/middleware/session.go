package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ===================================
// CONSTANTS
// ===================================

const (
	// Cookie settings
	SessionCookieName = "session_id"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	// Context keys
	ContextKeySessionID = "session_id"
	ContextKeyCustomer  = "customer_identity"
)

// ===================================
// SESSION MIDDLEWARE
// ===================================

// SessionMiddlewareConfig holds cookie settings for the session middleware
type SessionMiddlewareConfig struct {
	CookieDomain   string        // e.g., "heritagehaat.com" or "" for current domain
	CookiePath     string        // Default: "/"
	CookieSecure   bool          // true for HTTPS only
	CookieSameSite http.SameSite // Strict, Lax, or None
}

// DefaultSessionMiddlewareConfig returns secure default configuration
func DefaultSessionMiddlewareConfig() SessionMiddlewareConfig {
	return SessionMiddlewareConfig{
		CookieDomain:   "", // Current domain
		CookiePath:     "/",
		CookieSecure:   true,                 // HTTPS only (set false for localhost dev)
		CookieSameSite: http.SameSiteLaxMode, // Lax: balance security & UX
	}
}

// SessionMiddleware identifies the shopping session for anonymous users.
//
// Flow:
// 1. Read session_id cookie (must be a UUID)
// 2. If missing/invalid → generate new UUID and set cookie
// 3. Set session_id in context for handlers
//
// The cart and the order handoff store are both keyed by this session id.
func SessionMiddleware(config SessionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionID(c)
		if sessionID == "" {
			sessionID = uuid.New().String()
			setSessionCookie(c, sessionID, config)
		}

		c.Set(ContextKeySessionID, sessionID)

		c.Next()
	}
}

// getSessionID retrieves session ID from cookie
func getSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}

	// Validate UUID format for security
	if _, err := uuid.Parse(sessionID); err != nil {
		return "" // Invalid format → generate new
	}

	return sessionID
}

// setSessionCookie sets secure session cookie
func setSessionCookie(c *gin.Context, sessionID string, config SessionMiddlewareConfig) {
	c.SetCookie(
		SessionCookieName,   // name
		sessionID,           // value
		SessionMaxAge,       // maxAge (30 days)
		config.CookiePath,   // path
		config.CookieDomain, // domain
		config.CookieSecure, // secure (HTTPS only)
		true,                // httpOnly (prevent XSS)
	)
}

// GetSessionID retrieves session ID from context
func GetSessionID(c *gin.Context) (string, error) {
	sessionID, exists := c.Get(ContextKeySessionID)
	if !exists {
		return "", ErrSessionIDNotFound
	}

	sid, ok := sessionID.(string)
	if !ok || sid == "" {
		return "", ErrInvalidSessionID
	}

	return sid, nil
}

var (
	ErrSessionIDNotFound = fmt.Errorf("session_id not found in context")
	ErrInvalidSessionID  = fmt.Errorf("invalid session_id in context")
)

// ===================================
// OPTIONAL IDENTITY MIDDLEWARE
// ===================================

// CustomerIdentity is the identity context an external auth provider
// supplies through its token. The checkout core trusts these fields,
// it never authenticates anyone itself.
type CustomerIdentity struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// OptionalIdentityMiddleware extracts customer identity from a bearer
// token issued by the external auth provider.
// - If a valid token exists → set customer_identity in context
// - If no token or invalid → continue anonymously (no error)
//
// Handlers use the identity only to prefill checkout fields; submitted
// form values always win.
func OptionalIdentityMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Expected format: "Bearer <token>"
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := verifyToken(headerParts[1], jwtSecret)
		if err != nil {
			// Token invalid/expired → anonymous (log-worthy, not an error)
			c.Next()
			return
		}

		identity := CustomerIdentity{}
		if v, ok := claims["first_name"].(string); ok {
			identity.FirstName = v
		}
		if v, ok := claims["last_name"].(string); ok {
			identity.LastName = v
		}
		if v, ok := claims["email"].(string); ok {
			identity.Email = v
		}
		if v, ok := claims["phone"].(string); ok {
			identity.Phone = v
		}

		c.Set(ContextKeyCustomer, identity)

		c.Next()
	}
}

// GetCustomerIdentity returns the identity context if the auth provider
// supplied one. Returns (identity, true) or (zero, false).
func GetCustomerIdentity(c *gin.Context) (CustomerIdentity, bool) {
	value, exists := c.Get(ContextKeyCustomer)
	if !exists {
		return CustomerIdentity{}, false
	}

	identity, ok := value.(CustomerIdentity)
	return identity, ok
}

func verifyToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		jwt.MapClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate algorithm
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}
