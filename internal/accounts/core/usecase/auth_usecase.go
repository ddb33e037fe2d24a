package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/accounts/core/ports"
	"peakdash-service/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidSignUp      = errors.New("invalid sign-up")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not signed in or session expired")
	ErrEmailTaken         = ports.ErrEmailTaken
)

type AuthOptions struct {
	Secret      string
	SessionTTL  time.Duration
	AdminEmails []string
}

type AuthUseCase struct {
	accounts    ports.AccountRepositoryPort
	revocations ports.SessionRevocationPort
	secret      []byte
	ttl         time.Duration
	admins      map[string]struct{}
	hashCost    int
	now         func() time.Time
}

func NewAuthUseCase(accounts ports.AccountRepositoryPort, revocations ports.SessionRevocationPort, opts AuthOptions) *AuthUseCase {
	admins := make(map[string]struct{}, len(opts.AdminEmails))
	for _, e := range opts.AdminEmails {
		admins[normalizeEmail(e)] = struct{}{}
	}
	return &AuthUseCase{
		accounts:    accounts,
		revocations: revocations,
		secret:      []byte(opts.Secret),
		ttl:         opts.SessionTTL,
		admins:      admins,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
	}
}

const maxPasswordBytes = 72

type SignUpInput struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	FirstName string `validate:"max=100"`
	LastName  string `validate:"max=100"`
}

type SignInInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token   string
	Session domain.Session
}

func (uc *AuthUseCase) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := validation.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignUp, err.Error())
	}
	// bcrypt only looks at the first 72 bytes and refuses anything longer
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidSignUp, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.New(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		CreatedAt:    uc.now().UTC(),
	}

	if err := uc.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return uc.newResult(account)
}

func (uc *AuthUseCase) SignIn(ctx context.Context, in SignInInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := uc.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return uc.newResult(account)
}

// Authenticate resolves a bearer token to the caller's session.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Session{}, ErrUnauthenticated
	}

	session, err := uc.parseToken(token)
	if err != nil {
		return domain.Session{}, err
	}

	revoked, err := uc.revocations.IsSessionRevoked(ctx, session.TokenID)
	if err != nil {
		return domain.Session{}, err
	}
	if revoked {
		return domain.Session{}, ErrUnauthenticated
	}

	return session, nil
}

func (uc *AuthUseCase) SignOut(ctx context.Context, session domain.Session) error {
	if session.TokenID == "" {
		return ErrUnauthenticated
	}
	return uc.revocations.RevokeSession(ctx, session.TokenID, session.ExpiresAt)
}

func (uc *AuthUseCase) newResult(a *domain.Account) (*AuthResult, error) {
	token, session, err := uc.issueToken(a)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Session: session}, nil
}

func (uc *AuthUseCase) isAdmin(email string) bool {
	_, ok := uc.admins[normalizeEmail(email)]
	return ok
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
