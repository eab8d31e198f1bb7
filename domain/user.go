package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTherapist Role = "therapist"
	RolePatient   Role = "patient"
)

// User represents an account on the platform.
// Therapists publish blogs, admins manage the dashboards.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Email     string    // Login email (unique)
	Password  string    // Bcrypt hashed password
	Role      Role      // admin, therapist or patient
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves users by given IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// GetByEmail retrieves a user by their email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for user operations.
// Handles authentication, registration, and user management.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the email already exists.
	Register(ctx context.Context, name, email, password string, role Role) error

	// Login verifies user credentials and returns a JWT token
	// carrying the user ID and role.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, email, password string) (string, error)

	// EditPassword verifies user credentials and changes the password.
	EditPassword(ctx context.Context, id int64, oldPassword, newPassword string) error
}
