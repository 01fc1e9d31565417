// Package auth decides what a sign-in is allowed to become. murmur has no
// identity service: every non-empty credential pair signs in, and a single
// configured credential pair is elevated to the administrator record.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
)

// Grant is the outcome of a verification.
type Grant struct {
	Admin  bool
	UserID string // Directory record to adopt when Admin is set
}

// Verifier checks a credential pair. Callers only invoke it with a
// non-empty email and password.
type Verifier interface {
	Verify(email, password string) Grant
}

// AdminCredentials configures the one elevated account.
type AdminCredentials struct {
	Email        string
	Password     string // Plaintext; hashed at construction
	PasswordHash string // bcrypt hash; wins over Password when set
	UserID       string
}

// StaticVerifier grants admin to one configured email/password pair and
// nothing to everyone else. Both halves of the pair must match byte for byte.
type StaticVerifier struct {
	email  string
	hash   []byte
	userID string
}

// NewStaticVerifier builds a verifier from configured credentials. With no
// email configured the verifier never grants admin.
func NewStaticVerifier(creds AdminCredentials) (*StaticVerifier, error) {
	v := &StaticVerifier{
		email:  creds.Email,
		userID: creds.UserID,
	}
	if v.email == "" {
		return v, nil
	}

	switch {
	case creds.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(creds.PasswordHash)); err != nil {
			return nil, errors.CredentialsRejected("admin password hash is not a bcrypt hash")
		}
		v.hash = []byte(creds.PasswordHash)
	case creds.Password != "":
		hash, err := HashPassword(creds.Password)
		if err != nil {
			return nil, errors.E(errors.Op("auth.NewStaticVerifier"), errors.KindAuth, err)
		}
		v.hash = []byte(hash)
	default:
		return nil, errors.CredentialsRejected("admin email configured without a password")
	}

	if v.userID == "" {
		return nil, errors.CredentialsRejected("admin email configured without a user id")
	}
	return v, nil
}

// Verify implements Verifier.
func (v *StaticVerifier) Verify(email, password string) Grant {
	if v.email == "" || email != v.email {
		return Grant{}
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		logger.WithComponent("auth").Debug("admin email matched with wrong password")
		return Grant{}
	}
	return Grant{Admin: true, UserID: v.userID}
}
