package accountsdk

import "time"

// Profile is the public projection of an account. Credential material is
// never part of this shape.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the body of POST /v1/accounts.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /v1/sessions.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the opaque session token issued on login. The
// token is shown exactly once here; subsequent requests send it back via
// the Authorization header.
type LoginResponse struct {
	Token     string    `json:"session_token"`
	ExpiresAt time.Time `json:"expires_at"`
	Account   Profile   `json:"account"`
}

// UpdateProfileRequest is the body of PATCH /v1/me. Zero-valued fields are
// left unchanged; at least one field must be set.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"password,omitempty"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
