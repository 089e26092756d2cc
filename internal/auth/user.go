package auth

import "time"

type User struct {
	ID              string
	Email           string
	FirstName       *string
	LastName        *string
	PasswordHash    string
	EmailVerified   bool
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VerificationToken is a single-use email verification record. Issuing a new
// token for a user replaces any earlier one; verifying deletes the row.
type VerificationToken struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// PasswordResetToken is a single-use reset record. Consumed tokens are kept
// with used=true instead of being deleted.
type PasswordResetToken struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	Used      bool
}

// UserView is the client-facing shape of a user. The password hash never
// leaves this package.
type UserView struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (u *User) View() UserView {
	return UserView{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		IsEmailVerified: u.EmailVerified,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
