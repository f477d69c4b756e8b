package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/ports"
)

type stubAuthRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAuthRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func registerAlice(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+77001234567",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+77001234567",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if user == nil || user.ID == 0 {
		t.Fatalf("expected persisted user, got %+v", user)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("registration must always produce a customer, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@example.com"})
	if err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registerAlice(t, svc)
	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Other Alice",
		Email:    "alice@example.com",
		Phone:    "+77009999999",
		Password: "different",
	})
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registered := registerAlice(t, svc)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleCustomer {
		t.Fatalf("expected role %s, got %v", domain.RoleCustomer, claims["role"])
	}
	if claims["email"] != "alice@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	if int64(claims["user_id"].(float64)) != registered.ID {
		t.Fatalf("expected user_id claim %d, got %v", registered.ID, claims["user_id"])
	}
	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	if exp-iat != int64(time.Hour.Seconds()) {
		t.Fatalf("expected 1h ttl, got %ds", exp-iat)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registerAlice(t, svc)
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_UpdateProfile_NameAndPhone(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user := registerAlice(t, svc)

	err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID: user.ID,
		Name:   "Alice B",
		Phone:  "+77007654321",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.Name != "Alice B" || stored.Phone != "+77007654321" {
		t.Fatalf("profile not updated: %+v", stored)
	}
	if stored.PasswordHash != user.PasswordHash {
		t.Fatalf("password must not change on a name update")
	}
}

func TestAuthService_UpdateProfile_PasswordChange(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user := registerAlice(t, svc)

	err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:          user.ID,
		CurrentPassword: "s3cret",
		NewPassword:     "n3wpass",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "n3wpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "s3cret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestAuthService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user := registerAlice(t, svc)

	err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "n3wpass",
	})
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateProfile_MissingCurrentPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user := registerAlice(t, svc)

	err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:      user.ID,
		NewPassword: "n3wpass",
	})
	if err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
