package users

import "time"

// Roles. Admins are provisioned out of band; signup always yields a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the account document stored in the users table. The password hash
// never leaves the server.
type User struct {
	UserID       string    `dynamodbav:"user_id" json:"id"` // PK
	Name         string    `dynamodbav:"name" json:"name"`
	Email        string    `dynamodbav:"email" json:"email"` // unique via email-index
	PasswordHash string    `dynamodbav:"password_hash" json:"-"`
	Role         string    `dynamodbav:"role" json:"role"`
	CreatedAt    time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// AuthResult pairs a signed token with the account it belongs to.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
