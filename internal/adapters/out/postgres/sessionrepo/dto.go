// Package sessionrepo resolves session tokens to member identities using the
// sessions table maintained by the authentication frontend.
package sessionrepo

import (
	"time"
)

// SessionDTO represents one login session row.
type SessionDTO struct {
	Token     string `gorm:"type:text;primaryKey"`
	Identity  string `gorm:"type:text;not null"`
	ExpiresAt time.Time
}

// TableName specifies the database table name for session entities.
func (SessionDTO) TableName() string {
	return "sessions"
}
