package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/accounts/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	usersCollection = "users"
	uniqueViolation = "23505"
)

type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

var (
	_ ports.AccountRepositoryPort = (*AccountRepository)(nil)
	_ ports.SessionRevocationPort = (*AccountRepository)(nil)
)

// The account row and the users/{id} profile document are written by one statement.
const createAccountSQL = `
WITH acct AS (
    INSERT INTO accounts (id, email, password_hash, first_name, last_name, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (email) DO NOTHING
    RETURNING id
)
INSERT INTO documents (collection, doc_id, data)
SELECT $7, acct.id::text, $8::jsonb FROM acct;
`

const selectAccountByEmailSQL = `
SELECT id, email, password_hash, first_name, last_name, created_at
FROM accounts
WHERE email = $1
`

const revokeSessionSQL = `
INSERT INTO revoked_sessions (token_id, expires_at)
VALUES ($1, $2)
ON CONFLICT (token_id) DO NOTHING;
`

const selectRevokedSQL = `
SELECT 1 FROM revoked_sessions
WHERE token_id = $1 AND expires_at > now()
`

func (r *AccountRepository) CreateAccount(ctx context.Context, a *domain.Account) error {
	profile, err := json.Marshal(a.Profile())
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, createAccountSQL,
		a.ID,
		a.Email,
		a.PasswordHash,
		a.FirstName,
		a.LastName,
		a.CreatedAt,
		usersCollection,
		string(profile),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ports.ErrEmailTaken
		}
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	// rows == 0 -> e-mail conflict, nothing inserted
	if rows == 0 {
		return ports.ErrEmailTaken
	}
	return nil
}

func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, selectAccountByEmailSQL, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var account *domain.Account
	if rows.Next() {
		var (
			id        string
			a         domain.Account
			createdAt time.Time
		)
		if err := rows.Scan(&id, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		a.ID = parsed
		a.CreatedAt = createdAt.UTC()
		account = &a
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) RevokeSession(ctx context.Context, tokenID string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, revokeSessionSQL, tokenID, expiresAt.UTC())
	return err
}

func (r *AccountRepository) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	rows, err := r.db.QueryContext(ctx, selectRevokedSQL, tokenID)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	revoked := rows.Next()
	if err := rows.Err(); err != nil {
		return false, err
	}
	return revoked, nil
}
