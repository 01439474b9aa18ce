package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/nipun221/user-admin-ds/internal/domain"
	"github.com/nipun221/user-admin-ds/internal/repo"
	"github.com/nipun221/user-admin-ds/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingIdentifier = errors.New("provide at least one of email or phone")
	ErrMissingFields     = errors.New("name and password are required")
	ErrIdentifierTaken   = errors.New("email or phone already registered")
	// ErrInvalidCredentials covers both unknown identifier and wrong password,
	// so a caller can't probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
)

// RegisterParams is the candidate account supplied by a registration handler.
type RegisterParams struct {
	Email        string
	Phone        string
	Name         string
	Password     string
	ProfileImage string
}

// UserService implements registration, login and profile operations over a
// UserRepo.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r}
}

// HashPassword turns a plaintext password into a bcrypt digest. It is the only
// place a password is hashed: registration calls it, profile updates never do.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// validateNewAccount checks the candidate record before persistence,
// independent of the store's own constraints. Identifier presence is checked
// first: an account with no email and no phone is rejected with
// ErrMissingIdentifier no matter what else is wrong with it.
func validateNewAccount(u dom.User) error {
	if u.Email == "" && u.Phone == "" {
		return ErrMissingIdentifier
	}
	if u.Name == "" || u.PasswordDigest == "" {
		return ErrMissingFields
	}
	return nil
}

// Register creates a new account with a hashed password. isAdmin is fixed at
// creation; no other operation can change it.
func (s *UserService) Register(ctx context.Context, p RegisterParams, isAdmin bool) (dom.User, error) {
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Name = strings.TrimSpace(p.Name)
	if p.Email == "" && p.Phone == "" {
		return dom.User{}, ErrMissingIdentifier
	}
	if p.Name == "" || p.Password == "" {
		return dom.User{}, ErrMissingFields
	}

	digest, err := HashPassword(p.Password)
	if err != nil {
		return dom.User{}, err
	}
	u := dom.User{
		Email:          p.Email,
		Phone:          p.Phone,
		Name:           p.Name,
		PasswordDigest: digest,
		ProfileImage:   p.ProfileImage,
		IsAdmin:        isAdmin,
	}
	if err := validateNewAccount(u); err != nil {
		return dom.User{}, err
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if utils.IsDuplicateKey(err) {
			return dom.User{}, ErrIdentifierTaken
		}
		return dom.User{}, err
	}
	return created, nil
}

// Authenticate finds the account by email or phone and verifies the password.
// With adminOnly set, only admin accounts match. Every failure path returns
// ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, phone, password string, adminOnly bool) (dom.User, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if (email == "" && phone == "") || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.FindByIdentifier(ctx, email, phone, adminOnly)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordDigest), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Get returns the account with the given id.
func (s *UserService) Get(ctx context.Context, id string) (dom.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// UpdateProfile overwrites name and profileImage. The password digest is never
// recomputed here.
func (s *UserService) UpdateProfile(ctx context.Context, id, name, profileImage string) error {
	err := s.repo.UpdateProfile(ctx, id, strings.TrimSpace(name), profileImage)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// Delete removes the account. Removing an already-deleted id succeeds.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]dom.User, error) {
	return s.repo.List(ctx)
}
