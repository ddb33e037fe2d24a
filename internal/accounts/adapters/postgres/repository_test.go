package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/accounts/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeRows implements Rows for tests.
type fakeRows struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRows) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *time.Time:
			*d = row[i].(time.Time)
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRows) Err() error {
	return f.err
}

func (f *fakeRows) Close() error {
	return nil
}

// fakeDB implements DB for tests.
type fakeDB struct {
	ExecFn    func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn   func(ctx context.Context, query string, args ...any) (Rows, error)
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRows{}, nil
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:           uuid.MustParse("6f1c1b8e-9d1f-4b2a-8f55-0c6a3c1e2d10"),
		Email:        "a@b.co",
		FirstName:    "Ada",
		LastName:     "Peak",
		PasswordHash: "hash",
		CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ------------------------------------------------------------
// CREATE ACCOUNT
// ------------------------------------------------------------

func TestAccountRepository_CreateAccount(t *testing.T) {
	db := &fakeDB{}
	repo := NewAccountRepository(db)

	if err := repo.CreateAccount(context.Background(), testAccount()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "INSERT INTO accounts") || !strings.Contains(db.lastQuery, "INSERT INTO documents") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 8 {
		t.Fatalf("expected 8 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[6] != "users" {
		t.Fatalf("expected users collection, got %v", db.lastArgs[6])
	}

	var profile map[string]any
	if err := json.Unmarshal([]byte(db.lastArgs[7].(string)), &profile); err != nil {
		t.Fatalf("profile is not json: %v", err)
	}
	if profile["firstName"] != "Ada" || profile["email"] != "a@b.co" || profile["createdAt"] != "2025-01-02T03:04:05Z" {
		t.Fatalf("unexpected profile: %v", profile)
	}
}

func TestAccountRepository_CreateAccount_Conflict(t *testing.T) {
	tests := []struct {
		name   string
		execFn func(ctx context.Context, query string, args ...any) (sql.Result, error)
	}{
		{"no rows", func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		}},
		{"unique violation", func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, &pq.Error{Code: "23505"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewAccountRepository(&fakeDB{ExecFn: tt.execFn})
			if err := repo.CreateAccount(context.Background(), testAccount()); !errors.Is(err, ports.ErrEmailTaken) {
				t.Fatalf("expected ErrEmailTaken, got %v", err)
			}
		})
	}
}

func TestAccountRepository_CreateAccount_DBError(t *testing.T) {
	repo := NewAccountRepository(&fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db failure")
		},
	})
	err := repo.CreateAccount(context.Background(), testAccount())
	if err == nil || err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
}

// ------------------------------------------------------------
// GET BY EMAIL
// ------------------------------------------------------------

func TestAccountRepository_GetAccountByEmail(t *testing.T) {
	acct := testAccount()
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (Rows, error) {
			if args[0] != "a@b.co" {
				t.Fatalf("unexpected email arg %v", args[0])
			}
			return &fakeRows{rows: [][]any{
				{acct.ID.String(), acct.Email, acct.PasswordHash, acct.FirstName, acct.LastName, acct.CreatedAt},
			}}, nil
		},
	}

	got, err := NewAccountRepository(db).GetAccountByEmail(context.Background(), "a@b.co")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != acct.ID || got.PasswordHash != "hash" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestAccountRepository_GetAccountByEmail_NotFound(t *testing.T) {
	got, err := NewAccountRepository(&fakeDB{}).GetAccountByEmail(context.Background(), "x@y.z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil account, got %+v", got)
	}
}

// ------------------------------------------------------------
// REVOCATION
// ------------------------------------------------------------

func TestAccountRepository_Revocation(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (Rows, error) {
			if args[0] == "revoked-id" {
				return &fakeRows{rows: [][]any{{"1"}}}, nil
			}
			return &fakeRows{}, nil
		},
	}
	repo := NewAccountRepository(db)

	if err := repo.RevokeSession(context.Background(), "revoked-id", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "INSERT INTO revoked_sessions") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}

	revoked, err := repo.IsSessionRevoked(context.Background(), "revoked-id")
	if err != nil || !revoked {
		t.Fatalf("expected revoked=true, got %v (%v)", revoked, err)
	}

	revoked, err = repo.IsSessionRevoked(context.Background(), "live-id")
	if err != nil || revoked {
		t.Fatalf("expected revoked=false, got %v (%v)", revoked, err)
	}
}
