package state

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/zhubert/murmur/internal/auth"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/seed"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// seqIDs hands out id-1, id-2, ...
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// adminOnly grants admin to exactly one pair.
type adminOnly struct {
	email, password, userID string
}

func (v adminOnly) Verify(email, password string) auth.Grant {
	if email == v.email && password == v.password {
		return auth.Grant{Admin: true, UserID: v.userID}
	}
	return auth.Grant{}
}

var testVerifier = adminOnly{email: "himo@admin.com", password: "12345678", userID: "admin"}

func adminState(t *testing.T) State {
	t.Helper()
	ds, err := seed.Load(model.VariantAdmin)
	if err != nil {
		t.Fatalf("seed.Load(admin) error = %v", err)
	}
	return New(model.VariantAdmin, ds, DeliveryDiscard)
}

func socialState(t *testing.T) State {
	t.Helper()
	ds, err := seed.Load(model.VariantSocial)
	if err != nil {
		t.Fatalf("seed.Load(social) error = %v", err)
	}
	return New(model.VariantSocial, ds, DeliveryDiscard)
}

func signIn(t *testing.T, s State, email, password string) State {
	t.Helper()
	s = SetAuthField(s, AuthEmail, email)
	s = SetAuthField(s, AuthPassword, password)
	s, _ = SubmitAuth(s, testVerifier, &seqIDs{}, testNow)
	if !s.Authenticated {
		t.Fatalf("signIn(%q) did not authenticate", email)
	}
	return s
}

func signedInAdmin(t *testing.T) State {
	t.Helper()
	return signIn(t, adminState(t), "himo@admin.com", "12345678")
}

// withUsers appends extra users to the state's directory.
func withUsers(s State, users ...model.User) State {
	s.Users = append(s.Users.Clone(), users...)
	return s
}
