package models

// Roles assignable to users.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is an account that can authenticate against the API. The password is
// stored as a bcrypt hash and never serialized.
type User struct {
	ID       int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" db:"name" gorm:"type:text;not null"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	Email    string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
	Role     string `json:"role" db:"role" gorm:"type:text;not null;default:USER"`
}
