package domain

import "time"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User account backing the auth flow (users table)
type User struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OpenID       string    `gorm:"column:open_id;size:64;uniqueIndex" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	Email        string    `gorm:"column:email;size:320;uniqueIndex" json:"email"`
	Password     string    `gorm:"column:password;size:255" json:"-"`
	LoginMethod  string    `gorm:"column:login_method;size:64" json:"-"`
	Role         string    `gorm:"column:role;size:16;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	LastSignedIn time.Time `gorm:"column:last_signed_in;autoCreateTime" json:"last_signed_in"`
}

// TableName returns the table name
func (User) TableName() string {
	return "users"
}

// UserResponse public view of a user account
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
