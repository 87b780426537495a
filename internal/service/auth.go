package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/faculty-appraisal/internal/apperror"
	"github.com/sakif/faculty-appraisal/internal/auth"
	"github.com/sakif/faculty-appraisal/internal/model"
	"github.com/sakif/faculty-appraisal/internal/repository"
)

// AuthService handles registration, login, and the faculty directory.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// RegisterInput carries the registration form fields. Designation and Phone
// are optional; everything else is required.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Department  string
	Designation string
	Phone       string
}

// AuthResult bundles the user record with the issued session token so the
// HTTP handler can set the cookie and respond in one step.
type AuthResult struct {
	User  *model.User
	Token string
}

// Register creates a faculty account. Admin accounts are never created
// through this path (see SeedAdmin). Returns apperror.ErrValidation for a
// blank required field and apperror.ErrDuplicate if the email is taken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Department = strings.TrimSpace(in.Department)

	switch {
	case in.Name == "":
		return nil, apperror.ValidationFailed("name", "Name is required")
	case in.Email == "":
		return nil, apperror.ValidationFailed("email", "Email is required")
	case in.Password == "":
		return nil, apperror.ValidationFailed("password", "Password is required")
	case in.Department == "":
		return nil, apperror.ValidationFailed("department", "Department is required")
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Department:   in.Department,
		Designation:  strings.TrimSpace(in.Designation),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         model.RoleFaculty,
	}

	// The repository translates the unique-email violation to ErrDuplicate;
	// let that propagate as-is so the handler maps it to 409.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("faculty registered",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates an email/password pair for the requested role and
// issues a session token. Unknown email, wrong password, and role mismatch
// all return the same unauthorized error so a caller can't probe which
// emails have accounts.
func (s *AuthService) Login(ctx context.Context, email, password string, role model.Role) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	switch {
	case email == "":
		return nil, apperror.ValidationFailed("email", "Email is required")
	case password == "":
		return nil, apperror.ValidationFailed("password", "Password is required")
	case !role.Valid():
		return nil, apperror.ValidationFailed("userType", "Login role must be faculty or admin")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("service/auth: looking up %s: %w", email, err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if user.Role != role {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	s.logger.Info("user logged in",
		slog.String("userID", user.ID),
		slog.String("role", string(user.Role)),
	)

	return &AuthResult{User: user, Token: token}, nil
}

// GetUserByID returns the user for the given internal ID. Used by /api/me
// after the middleware has validated the session token.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, fmt.Errorf("service/auth: user ID must not be empty")
	}
	return s.users.GetByID(ctx, id)
}

// ListFaculty is the faculty directory: every faculty-typed user, oldest
// registration first. Pure projection, no side effects.
func (s *AuthService) ListFaculty(ctx context.Context) ([]model.User, error) {
	faculty, err := s.users.ListByRole(ctx, model.RoleFaculty)
	if err != nil {
		return nil, fmt.Errorf("service/auth: listing faculty: %w", err)
	}
	return faculty, nil
}

// SeedAdmin ensures an admin account exists, creating it from the given
// credentials if the email is unregistered. Called once at startup; a
// second startup with the same email is a no-op.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return fmt.Errorf("service/auth: admin email and password must not be empty")
	}
	if name == "" {
		name = "Administrator"
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("service/auth: checking for admin account: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("service/auth: hashing admin password: %w", err)
	}

	admin := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Department:   "administration",
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("service/auth: creating admin account: %w", err)
	}

	s.logger.Info("admin account seeded", slog.String("email", email))
	return nil
}
