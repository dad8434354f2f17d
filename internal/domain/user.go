package domain

// Role is the pipeline role assigned to a user account
type Role string

// User roles
const (
	RoleAdmin   Role = "admin"
	RoleAnalyst Role = "analyst"
	RolePartner Role = "partner"
)

// IsValid reports whether the role is a known one
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAnalyst, RolePartner:
		return true
	}
	return false
}

// User represents a platform user account
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"size:100;uniqueIndex" json:"email"`
	HashedPassword string `gorm:"size:255" json:"-"`
	Role           Role   `gorm:"size:20;default:analyst" json:"role"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
}

// TableName returns the table name
func (User) TableName() string {
	return "users"
}

// Actor is the authenticated identity attached to every mutating call.
// It is supplied by the auth middleware; the services never verify
// credentials themselves.
type Actor struct {
	ID    uint
	Email string
	Role  Role
}

// IsAdmin reports whether the actor holds the admin role
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// ToResponse converts a User to its public view
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
