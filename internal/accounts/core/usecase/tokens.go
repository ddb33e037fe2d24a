package usecase

import (
	"fmt"
	"time"

	"peakdash-service/internal/accounts/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Admin bool   `json:"admin,omitempty"`
}

func (uc *AuthUseCase) issueToken(a *domain.Account) (string, domain.Session, error) {
	now := uc.now()
	session := domain.Session{
		UserID:    a.ID.String(),
		Email:     a.Email,
		Admin:     uc.isAdmin(a.Email),
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(uc.ttl).UTC().Truncate(time.Second),
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			ID:        session.TokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		Email: session.Email,
		Admin: session.Admin,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, session, nil
}

func (uc *AuthUseCase) parseToken(token string) (domain.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return uc.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(uc.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return domain.Session{}, ErrUnauthenticated
	}
	if claims.Subject == "" || claims.ID == "" {
		return domain.Session{}, ErrUnauthenticated
	}

	return domain.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Admin:     claims.Admin,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
