package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sakif/faculty-appraisal/internal/apperror"
	"github.com/sakif/faculty-appraisal/internal/auth"
	"github.com/sakif/faculty-appraisal/internal/model"
)

// fakeUserRepo implements repository.UserRepository in memory, enforcing the
// same unique-email rule the SQLite store gets from its schema.
type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (m *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperror.Duplicate("a user with this email already exists")
		}
	}
	m.nextID++
	user.ID = fmt.Sprintf("fake-%d", m.nextID)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	result := *user
	return &result, nil
}

func (m *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			result := *u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (m *fakeUserRepo) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, *u)
		}
	}
	return result, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars")
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	// bcrypt.MinCost keeps the hashing fast in tests.
	passwords := auth.NewPasswordServiceForTest(4)
	return NewAuthService(repo, tokens, passwords, testLogger()), repo
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:        "Jane Doe",
		Email:       "jane@university.edu",
		Password:    "s3cret-pass",
		Department:  "Computer Science",
		Designation: "Assistant Professor",
		Phone:       "555-0100",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)

	result, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if result.User.ID == "" {
		t.Error("expected registered user to have an ID")
	}
	if result.User.Role != model.RoleFaculty {
		t.Errorf("Role = %q, want %q", result.User.Role, model.RoleFaculty)
	}
	if result.User.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	in := validRegistration()
	in.Email = "  Jane@University.EDU  "

	result, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.User.Email != "jane@university.edu" {
		t.Errorf("Email = %q, want lowercased trimmed form", result.User.Email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("setup: Register() error = %v", err)
	}

	_, err := svc.Register(ctx, validRegistration())
	if err == nil {
		t.Fatal("Register() should error on duplicate email")
	}
	if !errors.Is(err, apperror.ErrDuplicate) {
		t.Errorf("error = %v, want ErrDuplicate", err)
	}
}

func TestRegister_MissingRequiredFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"blank name", func(in *RegisterInput) { in.Name = "  " }},
		{"blank email", func(in *RegisterInput) { in.Email = "" }},
		{"blank password", func(in *RegisterInput) { in.Password = "" }},
		{"blank department", func(in *RegisterInput) { in.Department = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegister_OptionalFieldsMayBeBlank(t *testing.T) {
	svc, _ := newTestAuthService(t)

	in := validRegistration()
	in.Designation = ""
	in.Phone = ""

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register() error = %v, designation and phone are optional", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("setup: Register() error = %v", err)
	}

	result, err := svc.Login(ctx, "jane@university.edu", "s3cret-pass", model.RoleFaculty)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
	if result.User.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", result.User.Name, "Jane Doe")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("setup: Register() error = %v", err)
	}

	_, err := svc.Login(ctx, "jane@university.edu", "wrong", model.RoleFaculty)
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "nobody@university.edu", "whatever", model.RoleFaculty)
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized — unknown email must look like bad credentials", err)
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("setup: Register() error = %v", err)
	}

	// A faculty account logging in through the admin door is rejected with
	// the same error as bad credentials.
	_, err := svc.Login(ctx, "jane@university.edu", "s3cret-pass", model.RoleAdmin)
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.SeedAdmin(ctx, "Registrar", "admin@university.edu", "admin-pass"); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	admin, err := repo.GetByEmail(ctx, "admin@university.edu")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, model.RoleAdmin)
	}

	// Second seed with the same email is a no-op.
	if err := svc.SeedAdmin(ctx, "Registrar", "admin@university.edu", "different-pass"); err != nil {
		t.Fatalf("SeedAdmin() second call error = %v", err)
	}
	admins, _ := repo.ListByRole(ctx, model.RoleAdmin)
	if len(admins) != 1 {
		t.Errorf("admin count = %d, want 1", len(admins))
	}
}

func TestSeedAdmin_CanLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.SeedAdmin(ctx, "", "admin@university.edu", "admin-pass"); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	result, err := svc.Login(ctx, "admin@university.edu", "admin-pass", model.RoleAdmin)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.User.Name != "Administrator" {
		t.Errorf("Name = %q, want default %q", result.User.Name, "Administrator")
	}
}

func TestListFaculty_ExcludesAdmins(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("setup: Register() error = %v", err)
	}
	if err := svc.SeedAdmin(ctx, "Registrar", "admin@university.edu", "admin-pass"); err != nil {
		t.Fatalf("setup: SeedAdmin() error = %v", err)
	}

	faculty, err := svc.ListFaculty(ctx)
	if err != nil {
		t.Fatalf("ListFaculty() error = %v", err)
	}
	if len(faculty) != 1 {
		t.Fatalf("ListFaculty() returned %d users, want 1", len(faculty))
	}
	if faculty[0].Email != "jane@university.edu" {
		t.Errorf("Email = %q, want the registered faculty member", faculty[0].Email)
	}
}
