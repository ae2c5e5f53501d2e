package domain

import "time"

// User Model
type User struct {
	ID        int       `gorm:"primaryKey" json:"id"`                 // Primary key
	Username  string    `gorm:"unique;not null" json:"username"`      // Unique username
	Password  string    `gorm:"not null" json:"-"`                    // Bcrypt hash, never serialized
	Email     string    `gorm:"unique;not null" json:"email"`         // Unique email address
	FullName  string    `gorm:"not null" json:"fullName"`             // Display name
	Company   string    `json:"company,omitempty"`                    // Optional company name
	Plan      string    `gorm:"default:Starter;not null" json:"plan"` // Subscription plan: Starter, Growth, ...
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`      // Timestamp of registration
}

// DefaultPlan is assigned to users created without an explicit plan.
const DefaultPlan = "Starter"
