// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blockpress/internal/models"
)

const usersFile = "users.json"

// userRecord is the on-disk shape of a user. Unlike the API model it
// carries the password hash and TOTP secret.
type userRecord struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	TOTPSecret   *string   `json:"totp_secret,omitempty"`
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserStore persists admin users in a single users.json file. Writes
// are serialized with a mutex since several handlers can mutate 2FA
// state concurrently.
type UserStore struct {
	path string
	mu   sync.Mutex
}

// NewUserStore creates a user store rooted at the data directory.
func NewUserStore(dataDir string) (*UserStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &UserStore{path: filepath.Join(dataDir, usersFile)}, nil
}

func (s *UserStore) load() ([]userRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse users: %w", err)
	}
	return records, nil
}

func (s *UserStore) save(records []userRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

func toModel(r userRecord) *models.User {
	return &models.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		DisplayName:  r.DisplayName,
		Role:         models.Role(r.Role),
		TOTPSecret:   r.TOTPSecret,
		TOTPEnabled:  r.TOTPEnabled,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FindByEmail retrieves a user by email. Returns nil if not found.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Email == email {
			return toModel(r), nil
		}
	}
	return nil, nil
}

// FindByID retrieves a user by UUID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == id {
			return toModel(r), nil
		}
	}
	return nil, nil
}

// Create inserts a new user with a bcrypt-hashed password.
func (s *UserStore) Create(email, password, displayName string, role models.Role) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Email == email {
			return nil, fmt.Errorf("user %s already exists", email)
		}
	}

	now := time.Now().UTC()
	record := userRecord{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.save(append(records, record)); err != nil {
		return nil, err
	}
	return toModel(record), nil
}

// CheckPassword verifies a plaintext password against the user's hash.
func (s *UserStore) CheckPassword(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetTOTPSecret stores a newly generated TOTP secret for the user.
// The secret is not considered active until EnableTOTP is called after
// the first successful code verification.
func (s *UserStore) SetTOTPSecret(id uuid.UUID, secret string) error {
	return s.update(id, func(r *userRecord) {
		r.TOTPSecret = &secret
	})
}

// EnableTOTP marks the user's TOTP enrollment as complete.
func (s *UserStore) EnableTOTP(id uuid.UUID) error {
	return s.update(id, func(r *userRecord) {
		r.TOTPEnabled = true
	})
}

func (s *UserStore) update(id uuid.UUID, apply func(*userRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == id {
			apply(&records[i])
			records[i].UpdatedAt = time.Now().UTC()
			return s.save(records)
		}
	}
	return fmt.Errorf("user %s not found", id)
}

// Count returns the number of stored users.
func (s *UserStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Seed creates the initial admin user when no users exist yet. A
// no-op when any user is already present or when the credentials are
// not configured.
func (s *UserStore) Seed(email, password string) error {
	if email == "" || password == "" {
		slog.Warn("admin credentials not configured, no user seeded")
		return nil
	}

	s.mu.Lock()
	records, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if len(records) > 0 {
		return nil
	}

	if _, err := s.Create(email, password, "Administrator", models.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	slog.Info("seeded initial admin user", "email", email)
	return nil
}
