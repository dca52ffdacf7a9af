package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleVendor  Role = "VENDOR"
	RoleTeacher Role = "TEACHER"
	RoleLearner Role = "LEARNER"
	RoleUser    Role = "USER"
)

type UserStatus string

const (
	StatusActive  UserStatus = "ACTIVE"
	StatusSuspend UserStatus = "SUSPEND"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	Role         Role
	Status       UserStatus
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanAuthenticate reports whether the credential may sign in at all.
func (u *User) CanAuthenticate() bool {
	return u.Status == StatusActive && !u.IsDeleted
}

type Vendor struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ShopStatus string

const (
	ShopActive  ShopStatus = "ACTIVE"
	ShopBlocked ShopStatus = "BLOCKED"
)

type Shop struct {
	ID          string
	VendorID    string
	Name        string
	Description string
	LogoURL     string
	Status      ShopStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Principal is the authenticated identity derived from a verified access
// token. It lives only for the duration of a request.
type Principal struct {
	UserID string
	Role   Role
}
