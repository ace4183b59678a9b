// Package auth implements the user directory and credential service behind
// the login, signup, and logout endpoints. The directory lives for the
// process lifetime only; nothing is persisted.
package auth

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is the account record returned to clients. Credentials are stored
// separately and never leave the package.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
}

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailExists is returned when a signup collides with an existing
	// account.
	ErrEmailExists = errors.New("user already exists")
)

// ValidationError reports malformed or missing input. The request is
// rejected before any directory state changes.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Directory is the user repository. Implementations own the invariant that
// a user and its credential are committed together or not at all, and that
// Insert is atomic with respect to the duplicate-email check.
type Directory interface {
	// FindByEmail looks up a user by exact email match and returns the
	// stored password hash alongside.
	FindByEmail(email string) (User, []byte, bool)

	// Insert stores a new user and its credential. Returns ErrEmailExists
	// if the email is already taken.
	Insert(u User, passwordHash []byte) error
}

type entry struct {
	user User
	hash []byte
}

// MemoryDirectory is the in-memory Directory. A single mutex guards the
// check-then-insert sequence so two concurrent signups for the same email
// can never both succeed.
type MemoryDirectory struct {
	mu    sync.Mutex
	users map[string]entry // keyed by email, case-sensitive as stored
}

// NewMemoryDirectory creates an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{users: make(map[string]entry)}
}

// FindByEmail implements Directory.
func (d *MemoryDirectory) FindByEmail(email string) (User, []byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.users[email]
	if !ok {
		return User{}, nil, false
	}
	return e.user, e.hash, true
}

// Insert implements Directory.
func (d *MemoryDirectory) Insert(u User, passwordHash []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[u.Email]; ok {
		return ErrEmailExists
	}
	d.users[u.Email] = entry{user: u, hash: passwordHash}
	return nil
}

// SeedUser hashes password and inserts u into the directory. Used to load
// fixture accounts at startup.
func SeedUser(dir Directory, u User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return dir.Insert(u, hash)
}

// Service implements the login and signup operations over a Directory.
type Service struct {
	dir Directory
}

// NewService creates a Service backed by the given directory.
func NewService(dir Directory) *Service {
	return &Service{dir: dir}
}

// Login checks the credentials and returns the matching user. Missing
// fields yield a ValidationError; an unknown email and a wrong password
// both yield ErrInvalidCredentials.
func (s *Service) Login(email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, validationErrorf("Email and password are required")
	}
	u, hash, ok := s.dir.FindByEmail(email)
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Signup validates the input, then creates and returns a new user. The
// validation checks run in a fixed order: missing fields, password
// mismatch, password length. A duplicate email yields ErrEmailExists and
// leaves the directory unchanged.
func (s *Service) Signup(name, email, password, confirmPassword string) (User, error) {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return User{}, validationErrorf("All fields are required")
	}
	if password != confirmPassword {
		return User{}, validationErrorf("Passwords do not match")
	}
	if len(password) < 6 {
		return User{}, validationErrorf("Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	u := User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Avatar:    AvatarURL(name),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.dir.Insert(u, hash); err != nil {
		return User{}, err
	}
	return u, nil
}

// AvatarURL derives a default avatar image URL from a display name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
