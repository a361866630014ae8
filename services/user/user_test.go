package user

import (
	"errors"
	"testing"

	"mindcare/config"
	"mindcare/models"
	"mindcare/utils"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
	hashes  map[string]string
}

func newFakeRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
		hashes:  make(map[string]string),
	}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) SetTokenHash(id, hash string) error {
	f.hashes[id] = hash
	return nil
}

func validSignup() RegisterInput {
	return RegisterInput{
		FullName:    "Wanjiru Kamau",
		Email:       "wanjiru@students.uon.ac.ke",
		Password:    "s3curepass",
		Institution: "University of Nairobi",
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		want   string
	}{
		{"missing name", func(in *RegisterInput) { in.FullName = "" }, "All fields are required"},
		{"missing institution", func(in *RegisterInput) { in.Institution = "" }, "All fields are required"},
		{"short password", func(in *RegisterInput) { in.Password = "abc" }, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &DefaultUserService{Repo: newFakeRepo()}
			in := validSignup()
			tt.mutate(&in)

			_, err := svc.Register(in)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Message != tt.want {
				t.Errorf("message = %q, want %q", verr.Message, tt.want)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.byEmail["wanjiru@students.uon.ac.ke"] = &models.User{ID: "u1"}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(validSignup())
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Message != "Email already exists" {
		t.Errorf("message = %q", conflict.Message)
	}
}

func TestRegisterIssuesTokenAndStoresHash(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(validSignup())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("no token issued")
	}
	if resp.Role != models.RoleStudent {
		t.Errorf("role = %q, want student", resp.Role)
	}

	// The stored hash must match the issued token.
	if repo.hashes[resp.ID] != utils.HashToken(resp.Token) {
		t.Error("stored token hash does not match issued token")
	}

	// Password is stored hashed, never verbatim.
	stored := repo.byID[resp.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "s3curepass" {
		t.Error("password not hashed")
	}

	identity, err := utils.ExtractIdentityFromToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if identity.UserID != resp.ID || identity.Role != models.RoleStudent {
		t.Errorf("token identity = %+v", identity)
	}
}

func TestRegisterAssignsAdminRole(t *testing.T) {
	prev := config.AppConfig.AdminEmail
	config.AppConfig.AdminEmail = "admin@mindcare.app"
	defer func() { config.AppConfig.AdminEmail = prev }()

	svc := &DefaultUserService{Repo: newFakeRepo()}
	in := validSignup()
	in.Email = "admin@mindcare.app"

	resp, err := svc.Register(in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", resp.Role)
	}
	identity, err := utils.ExtractIdentityFromToken(resp.Token)
	if err != nil {
		t.Fatalf("token validation failed: %v", err)
	}
	if identity.Role != models.RoleAdmin {
		t.Errorf("token role claim = %q, want admin", identity.Role)
	}
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3curepass"), bcrypt.DefaultCost)
	repo := newFakeRepo()
	repo.byEmail["wanjiru@students.uon.ac.ke"] = &models.User{
		ID:           "u1",
		Email:        "wanjiru@students.uon.ac.ke",
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}
	repo.byID["u1"] = repo.byEmail["wanjiru@students.uon.ac.ke"]
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Login("wanjiru@students.uon.ac.ke", "s3curepass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.ID != "u1" || resp.Token == "" {
		t.Errorf("unexpected response: %+v", resp)
	}

	var invalid InvalidCredentialsError
	if _, err := svc.Login("wanjiru@students.uon.ac.ke", "wrong"); !errors.As(err, &invalid) {
		t.Errorf("wrong password error = %v", err)
	}
	if _, err := svc.Login("nobody@example.com", "s3curepass"); !errors.As(err, &invalid) {
		t.Errorf("unknown email error = %v", err)
	}
}

func TestLogoutRevokesTokenHash(t *testing.T) {
	repo := newFakeRepo()
	repo.hashes["u1"] = "something"
	svc := &DefaultUserService{Repo: repo}

	if err := svc.Logout("u1"); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if repo.hashes["u1"] != "" {
		t.Error("token hash not cleared")
	}
}
