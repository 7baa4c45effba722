// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"blockpress/internal/models"
)

func testUserStore(t *testing.T) *UserStore {
	t.Helper()
	s, err := NewUserStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewUserStore() error: %v", err)
	}
	return s
}

func TestUserCreateAndFind(t *testing.T) {
	s := testUserStore(t)

	created, err := s.Create("admin@blockpress.local", "s3cret-pass", "Admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.PasswordHash == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}

	byEmail, err := s.FindByEmail("admin@blockpress.local")
	if err != nil {
		t.Fatalf("FindByEmail() error: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID {
		t.Fatalf("FindByEmail() = %v", byEmail)
	}

	byID, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if byID == nil || byID.Email != "admin@blockpress.local" {
		t.Fatalf("FindByID() = %v", byID)
	}

	missing, err := s.FindByEmail("nobody@blockpress.local")
	if err != nil || missing != nil {
		t.Errorf("unknown email should read as nil, nil, got %v, %v", missing, err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	s := testUserStore(t)

	if _, err := s.Create("a@b.c", "long-enough-pass", "A", models.RoleAdmin); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, err := s.Create("a@b.c", "another-pass", "B", models.RoleAdmin); err == nil {
		t.Error("duplicate email should fail")
	}
}

func TestUserCheckPassword(t *testing.T) {
	s := testUserStore(t)

	u, err := s.Create("a@b.c", "correct-horse", "A", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if !s.CheckPassword(u, "correct-horse") {
		t.Error("correct password should verify")
	}
	if s.CheckPassword(u, "wrong-horse") {
		t.Error("wrong password should not verify")
	}
}

func TestUserTOTPLifecycle(t *testing.T) {
	s := testUserStore(t)

	u, err := s.Create("a@b.c", "long-enough-pass", "A", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := s.SetTOTPSecret(u.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret() error: %v", err)
	}
	got, err := s.FindByID(u.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if got.TOTPSecret == nil || *got.TOTPSecret != "JBSWY3DPEHPK3PXP" {
		t.Fatal("secret should persist")
	}
	if got.TOTPEnabled {
		t.Error("setting the secret must not enable 2FA yet")
	}

	if err := s.EnableTOTP(u.ID); err != nil {
		t.Fatalf("EnableTOTP() error: %v", err)
	}
	got, err = s.FindByID(u.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if !got.TOTPEnabled {
		t.Error("EnableTOTP should persist the enabled flag")
	}

	if err := s.EnableTOTP(uuid.New()); err == nil {
		t.Error("updating a missing user should fail")
	}
}

func TestUserCount(t *testing.T) {
	s := testUserStore(t)

	n, err := s.Count()
	if err != nil || n != 0 {
		t.Fatalf("Count() = %d, %v, want 0", n, err)
	}
	if _, err := s.Create("a@b.c", "long-enough-pass", "A", models.RoleAdmin); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	n, err = s.Count()
	if err != nil || n != 1 {
		t.Errorf("Count() = %d, %v, want 1", n, err)
	}
}

func TestUserSeed(t *testing.T) {
	s := testUserStore(t)

	if err := s.Seed("admin@blockpress.local", "changeme-now"); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	u, err := s.FindByEmail("admin@blockpress.local")
	if err != nil {
		t.Fatalf("FindByEmail() error: %v", err)
	}
	if u == nil {
		t.Fatal("seed should create the admin user")
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("Role = %q", u.Role)
	}

	// Second seed is a no-op, even with different credentials.
	if err := s.Seed("other@blockpress.local", "different-pass"); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	other, err := s.FindByEmail("other@blockpress.local")
	if err != nil || other != nil {
		t.Error("seed must not run when users already exist")
	}

	// Empty credentials never seed.
	empty := testUserStore(t)
	if err := empty.Seed("", ""); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if n, _ := empty.Count(); n != 0 {
		t.Error("empty credentials should seed nothing")
	}
}
