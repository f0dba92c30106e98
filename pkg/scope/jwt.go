package scope

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shareit/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Manager issues and verifies bearer tokens.
type Manager interface {
	Issue(userID int64) (string, error)
	Verify(token string) (model.Scope, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates a HS256 token manager.
func New(secret string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *implManager) Issue(userID int64) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *implManager) Verify(tokenStr string) (model.Scope, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return model.Scope{}, ErrInvalidToken
	}
	return model.Scope{UserID: id}, nil
}
