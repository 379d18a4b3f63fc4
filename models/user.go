package models

import "time"

// Roles a user can sign up with. The role is fixed at signup and never changes.
const (
	RoleProvider = "provider"
	RoleSeeker   = "seeker"
)

// User is an account on the platform. Providers additionally own a
// ProviderProfile document under the same ID.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	DisplayName  string    `bson:"displayName" json:"displayName"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidRole reports whether r is one of the two signup roles.
func ValidRole(r string) bool {
	return r == RoleProvider || r == RoleSeeker
}
