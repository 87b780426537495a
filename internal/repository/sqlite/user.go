package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/faculty-appraisal/internal/apperror"
	"github.com/sakif/faculty-appraisal/internal/model"
	"github.com/sakif/faculty-appraisal/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

// Create inserts a new user, assigning the ID and CreatedAt in place.
//
// The UNIQUE constraint on email is the single source of truth for the
// duplicate-registration rule: a pre-check SELECT would race with a
// concurrent insert, so we insert and translate the constraint error.
func (db *DB) Create(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	user.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, department, designation, phone, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Department,
		user.Designation,
		user.Phone,
		string(user.Role),
		user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return apperror.Duplicate("a user with this email already exists")
		}
		return fmt.Errorf("sqlite: inserting user (email=%s): %w", user.Email, err)
	}

	return nil
}

// GetByID retrieves a user by their internal ID.
// Returns apperror.ErrNotFound if no user exists with that ID.
func (db *DB) GetByID(ctx context.Context, id string) (*model.User, error) {
	return db.getUser(ctx, `WHERE id = ?`, id)
}

// GetByEmail retrieves a user by email.
// Returns apperror.ErrNotFound if no account exists for that email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return db.getUser(ctx, `WHERE email = ?`, email)
}

func (db *DB) getUser(ctx context.Context, where, arg string) (*model.User, error) {
	var u model.User
	var role string

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, department, designation, phone, role, created_at
		 FROM users `+where,
		arg,
	).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Department,
		&u.Designation,
		&u.Phone,
		&role,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", arg)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", arg, err)
	}

	u.Role = model.Role(role)
	return &u, nil
}

// ListByRole returns every user with the given role, oldest registration
// first. The faculty directory is this call with model.RoleFaculty — no
// pagination, the roster is expected to be small.
func (db *DB) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, email, password_hash, department, designation, phone, role, created_at
		 FROM users
		 WHERE role = ?
		 ORDER BY created_at ASC, id ASC`,
		string(role),
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users by role %s: %w", role, err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var r string
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Department,
			&u.Designation, &u.Phone, &r, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning user row: %w", err)
		}
		u.Role = model.Role(r)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating users: %w", err)
	}

	return users, nil
}
