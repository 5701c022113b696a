package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/warehouse-be/internal/models"
	"github.com/hongminglow/warehouse-be/internal/models/dto"
	"github.com/hongminglow/warehouse-be/internal/storage"
)

var (
	// ErrMissingCredentials means the number or the password was left empty.
	ErrMissingCredentials = errors.New("whatsapp and password are required")
	// ErrInvalidCredentials covers both an unknown number and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authenticator resolves an account by WhatsApp number and checks its password.
type Authenticator struct {
	accounts storage.AccountStore
	validate *validator.Validate
}

// NewAuthenticator constructs the verifier over an account store.
func NewAuthenticator(accounts storage.AccountStore) *Authenticator {
	return &Authenticator{accounts: accounts, validate: validator.New()}
}

// Verify checks a login form and returns the session identity on success.
// Any lookup miss or hash mismatch is ErrInvalidCredentials; other errors are
// store failures.
func (a *Authenticator) Verify(ctx context.Context, form dto.LoginForm) (models.Principal, error) {
	if err := a.validate.Struct(form); err != nil {
		return models.Principal{}, ErrMissingCredentials
	}

	whatsapp := NormalizeWhatsApp(form.WhatsApp)
	if whatsapp == "" {
		burnHashCompare(form.Password)
		return models.Principal{}, ErrInvalidCredentials
	}

	acc, err := a.Resolve(ctx, whatsapp)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			burnHashCompare(form.Password)
			return models.Principal{}, ErrInvalidCredentials
		}
		return models.Principal{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(form.Password)); err != nil {
		return models.Principal{}, ErrInvalidCredentials
	}

	superAdmin := acc.Source == models.SourceSuperAdmin || models.IsSuperAdminRole(acc.RoleName)
	return models.PrincipalFor(acc, superAdmin), nil
}

// Resolve looks the number up in users first and falls back to super_admin
// only when no live users row exists. The returned account is tagged with the
// table it came from.
func (a *Authenticator) Resolve(ctx context.Context, whatsapp string) (models.Account, error) {
	acc, err := a.accounts.FindStaffByWhatsApp(ctx, whatsapp)
	if err == nil {
		acc.Source = models.SourceStaff
		return acc, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Account{}, fmt.Errorf("find staff account: %w", err)
	}

	acc, err = a.accounts.FindSuperAdminByWhatsApp(ctx, whatsapp)
	if err == nil {
		acc.Source = models.SourceSuperAdmin
		return acc, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return models.Account{}, storage.ErrNotFound
	}
	return models.Account{}, fmt.Errorf("find super admin account: %w", err)
}

// NormalizeWhatsApp keeps only the ASCII digits of a phone number, so
// "0812-345" and "0812 345" both become "0812345".
func NormalizeWhatsApp(raw string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// burnHashCompare spends one bcrypt comparison so that unknown numbers take
// about as long to reject as wrong passwords.
func burnHashCompare(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("warehouse-be/no-such-account"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
