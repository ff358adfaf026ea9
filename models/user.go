// models/user.go
package models

import "time"

// User roles.
const (
	RoleSupermarket = "supermarket"
	RoleFoodBank    = "food_bank"
	RoleConsumer    = "consumer"
	RoleAdmin       = "admin"
)

// User represents a platform account: a supermarket, a food bank, a consumer
// or an admin. Location is the name of the city the account is registered in
// and must match a City node in the graph for matching to consider it.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Location     string    `bson:"location" json:"location"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSupermarket, RoleFoodBank, RoleConsumer, RoleAdmin:
		return true
	}
	return false
}
