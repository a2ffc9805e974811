// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
)

const AuthSessionPrefix = "authSession:"

// AuthSession holds the signed-in user's token and minimal profile.
// It is owned by the host application's auth flow; the checkout core
// only ever reads the token from it.
type AuthSession struct {
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Token         string    `json:"token"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveAuthSession saves the auth session in Redis with a TTL.
func SaveAuthSession(client *redis.Client, sessionID string, session AuthSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+sessionID, data, 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the auth session from Redis.
func GetAuthSession(client *redis.Client, sessionID string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes an auth session from Redis.
func DeleteAuthSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+sessionID).Err()
}

// TokenSource reads the backend auth token out of the stored session.
// It satisfies the API client's token provider interface.
type TokenSource struct {
	Client    *redis.Client
	SessionID string
}

var ErrTokenExpired = errors.New("stored auth token is expired")

// Token returns the stored token after a client-side expiry check. The
// backend still verifies the signature; this only avoids sending a token
// we already know is dead.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	session, err := GetAuthSession(ts.Client, ts.SessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load auth session: %w", err)
	}
	if session.Token == "" {
		return "", errors.New("auth session has no token")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(session.Token, claims); err != nil {
		return "", fmt.Errorf("failed to parse stored token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err == nil && exp != nil && exp.Before(time.Now()) {
		return "", ErrTokenExpired
	}

	return session.Token, nil
}
