package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/nipun221/user-admin-ds/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepo with the same error contract as the
// Mongo implementation: duplicate identifiers come back as a write exception
// with code 11000, missing documents as mongo.ErrNoDocuments.
type fakeUserRepo struct {
	users map[string]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]dom.User{}}
}

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

func (f *fakeUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	for _, existing := range f.users {
		if (u.Email != "" && existing.Email == u.Email) || (u.Phone != "" && existing.Phone == u.Phone) {
			return dom.User{}, duplicateKeyErr()
		}
	}
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = u
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (dom.User, error) {
	u, ok := f.users[id]
	if !ok {
		return dom.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserRepo) FindByIdentifier(_ context.Context, email, phone string, adminOnly bool) (dom.User, error) {
	for _, u := range f.users {
		match := (email != "" && u.Email == email) || (phone != "" && u.Phone == phone)
		if match && (!adminOnly || u.IsAdmin) {
			return u, nil
		}
	}
	return dom.User{}, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) List(_ context.Context) ([]dom.User, error) {
	out := make([]dom.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id, name, profileImage string) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Name = name
	u.ProfileImage = profileImage
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func TestRegister_MissingIdentifier(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Name: "A", Password: "p"}, false)
	if !errors.Is(err, ErrMissingIdentifier) {
		t.Fatalf("expected ErrMissingIdentifier, got %v", err)
	}

	// The identifier check wins even when name and password are missing too.
	_, err = svc.Register(ctx, RegisterParams{ProfileImage: "https://cdn.example.com/a.png"}, false)
	if !errors.Is(err, ErrMissingIdentifier) {
		t.Fatalf("expected ErrMissingIdentifier for identifier-less request, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Email: "a@x.com", Password: "p"}, false)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields without name, got %v", err)
	}
	_, err = svc.Register(ctx, RegisterParams{Email: "a@x.com", Name: "A"}, false)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields without password, got %v", err)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	u, err := svc.Register(context.Background(), RegisterParams{Email: "a@x.com", Name: "A", Password: "p"}, false)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.PasswordDigest == "p" || u.PasswordDigest == "" {
		t.Fatalf("password stored without hashing: %q", u.PasswordDigest)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordDigest), []byte("p")); err != nil {
		t.Fatalf("digest does not verify against plaintext: %v", err)
	}
}

func TestRegister_DuplicateIdentifier(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterParams{Email: "a@x.com", Name: "A", Password: "p"}, false); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	_, err := svc.Register(ctx, RegisterParams{Email: "a@x.com", Name: "B", Password: "q"}, false)
	if !errors.Is(err, ErrIdentifierTaken) {
		t.Fatalf("expected ErrIdentifierTaken, got %v", err)
	}

	if _, err := svc.Register(ctx, RegisterParams{Phone: "+1555", Name: "C", Password: "p"}, false); err != nil {
		t.Fatalf("phone Register error: %v", err)
	}
	_, err = svc.Register(ctx, RegisterParams{Phone: "+1555", Name: "D", Password: "p"}, true)
	if !errors.Is(err, ErrIdentifierTaken) {
		t.Fatalf("expected ErrIdentifierTaken for phone, got %v", err)
	}
}

func TestAuthenticate_FailuresCollapse(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterParams{Email: "a@x.com", Name: "A", Password: "right"}, false); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errWrongPass := svc.Authenticate(ctx, "a@x.com", "", "wrong", false)
	_, errNoUser := svc.Authenticate(ctx, "nobody@x.com", "", "right", false)
	if !errors.Is(errWrongPass, ErrInvalidCredentials) || !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", errWrongPass, errNoUser)
	}
}

func TestAuthenticate_AdminOnly(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterParams{Email: "u@x.com", Name: "U", Password: "p"}, false); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterParams{Email: "adm@x.com", Name: "Adm", Password: "p"}, true); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// Regular account never matches the admin login lookup.
	if _, err := svc.Authenticate(ctx, "u@x.com", "", "p", true); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for non-admin on admin login, got %v", err)
	}
	adm, err := svc.Authenticate(ctx, "adm@x.com", "", "p", true)
	if err != nil {
		t.Fatalf("admin Authenticate error: %v", err)
	}
	if !adm.IsAdmin {
		t.Fatalf("expected IsAdmin on admin account")
	}
	// Admin accounts still log in through the user path.
	if _, err := svc.Authenticate(ctx, "adm@x.com", "", "p", false); err != nil {
		t.Fatalf("user-path Authenticate for admin account: %v", err)
	}
}

func TestUpdateProfile_DigestUntouched(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Email: "a@x.com", Name: "A", Password: "p"}, false)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	before := u.PasswordDigest

	if err := svc.UpdateProfile(ctx, u.ID.Hex(), "A2", "https://cdn.example.com/new.png"); err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}

	after := repo.users[u.ID.Hex()]
	if after.PasswordDigest != before {
		t.Fatalf("digest changed on profile update")
	}
	if after.Name != "A2" || after.ProfileImage != "https://cdn.example.com/new.png" {
		t.Fatalf("profile not updated: %+v", after)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if err := svc.Delete(context.Background(), primitive.NewObjectID().Hex()); err != nil {
		t.Fatalf("Delete of missing id should succeed, got %v", err)
	}
}

func TestValidateNewAccount(t *testing.T) {
	cases := []struct {
		name string
		u    dom.User
		want error
	}{
		{"both identifiers missing", dom.User{Name: "A", PasswordDigest: "d"}, ErrMissingIdentifier},
		{"email only", dom.User{Email: "a@x.com", Name: "A", PasswordDigest: "d"}, nil},
		{"phone only", dom.User{Phone: "+1555", Name: "A", PasswordDigest: "d"}, nil},
		{"no digest", dom.User{Email: "a@x.com", Name: "A"}, ErrMissingFields},
		{"no identifier and no digest", dom.User{Name: "A"}, ErrMissingIdentifier},
	}
	for _, tc := range cases {
		if got := validateNewAccount(tc.u); !errors.Is(got, tc.want) {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}
