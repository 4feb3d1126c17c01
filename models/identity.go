package models

import "time"

// Role is the portal role assigned to a directory entry
type Role string

// Portal roles
const (
	RoleInvestigator Role = "investigator"
	RoleAdmin        Role = "admin"
)

// Identity holds the structure for a logged-in officer or administrator
type Identity struct {
	ID    string `json:"id" bson:"id"`
	Email string `json:"email" bson:"email"`
	Name  string `json:"name" bson:"name"`
	Role  Role   `json:"role" bson:"role"`
	Badge string `json:"badge" bson:"badge"`
}

// IsAdmin reports whether the viewer may see confidential records.
// A nil identity is the anonymous/public viewer and is never an admin.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Session holds the structure for the sessions collection. One durable entry
// per login, keyed by session id, removed on logout.
type Session struct {
	ID        string    `json:"id" bson:"_id"`
	Identity  Identity  `json:"identity" bson:"identity"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// LoginRequest is the credentials payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// SessionResponse is returned by GET /auth/session; User is null for
// anonymous viewers
type SessionResponse struct {
	User *Identity `json:"user"`
}
