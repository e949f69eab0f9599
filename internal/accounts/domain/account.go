package domain

import "time"

// Account is the full identity record as stored. The verifier fields never
// leave the service layer; callers get a Profile instead.
type Account struct {
	ID           string
	Email        string // normalized: trimmed + lowercased
	FirstName    string
	LastName     string
	PasswordHash string // scrypt derived key, base64
	PasswordSalt string // base64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the subset of an Account that is safe to return to a client.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the public projection of the account.
func (a Account) Profile() Profile {
	return Profile{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt,
	}
}

// ProfileUpdate is a partial update: empty fields are left untouched.
// There is deliberately no way to update the email address.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Password  string
}

// IsEmpty reports whether no recognized field was provided.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FirstName == "" && u.LastName == "" && u.Password == ""
}
