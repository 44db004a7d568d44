package auth

import (
	"errors"
	"strings"

	"go-purchase-tracker/internal/model"
	"go-purchase-tracker/internal/repository"
	"go-purchase-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

var ErrUnauthenticated = errors.New("unauthenticated")

const localsCredential = "credential"

// Store places the resolved credential on the request context.
func Store(c *fiber.Ctx, cred *Credential) {
	c.Locals(localsCredential, cred)
}

// FromContext returns the credential resolved by the auth middleware, or nil
// when the request never passed through it.
func FromContext(c *fiber.Ctx) *Credential {
	cred, _ := c.Locals(localsCredential).(*Credential)
	return cred
}

// Credential is the resolved caller identity carried through a request.
type Credential struct {
	AccountID  int64
	Email      string
	Privileges []string
}

// HasPrivilege reports whether the credential holds the grant.
func (c *Credential) HasPrivilege(code string) bool {
	for _, p := range c.Privileges {
		if p == code {
			return true
		}
	}
	return false
}

// Authenticator resolves the caller's account identity from a request. Call
// sites never change when the resolution mechanism does: swap the
// implementation at wiring time.
type Authenticator interface {
	Authenticate(c *fiber.Ctx) (*Credential, error)
}

// StaticAuthenticator trusts a fixed identity with full purchase grants.
// Used for bootstrapping and tests.
type StaticAuthenticator struct {
	AccountID int64
}

func NewStaticAuthenticator(accountID int64) *StaticAuthenticator {
	return &StaticAuthenticator{AccountID: accountID}
}

func (a *StaticAuthenticator) Authenticate(c *fiber.Ctx) (*Credential, error) {
	return &Credential{
		AccountID: a.AccountID,
		Privileges: []string{
			model.PrivPurchaseRead,
			model.PrivPurchaseCreate,
			model.PrivPurchaseUpdate,
			model.PrivPurchaseDelete,
		},
	}, nil
}

// TokenAuthenticator verifies a Bearer JWT and resolves the account against
// the database, so revoked accounts and fresh grants take effect immediately.
type TokenAuthenticator struct {
	accountRepo repository.AccountRepository
}

func NewTokenAuthenticator(accountRepo repository.AccountRepository) *TokenAuthenticator {
	return &TokenAuthenticator{accountRepo: accountRepo}
}

func (a *TokenAuthenticator) Authenticate(c *fiber.Ctx) (*Credential, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, jwt.ErrInvalidToken
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	account, err := a.accountRepo.FindByID(claims.AccountID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if !account.IsActive {
		return nil, ErrUnauthenticated
	}

	return &Credential{
		AccountID:  account.ID,
		Email:      account.Email,
		Privileges: account.GetPrivilegeCodes(),
	}, nil
}
