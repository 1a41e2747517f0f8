// Package model contains the GORM persistence models mirroring the
// database schema. Domain entities never carry GORM tags; mapping
// happens at the repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// PasswordHistory is stored as a JSONB array of prior bcrypt hashes, most recent first.
type AdminModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LoginID               string    `gorm:"type:varchar(255);unique;not null"`
	AdminName             string    `gorm:"type:varchar(100);not null"`
	EmployeeID            string    `gorm:"type:varchar(64);unique;not null"`
	AvatarKey             string    `gorm:"type:varchar(512)"`
	PasswordHash          string    `gorm:"type:varchar(255);not null"`
	PasswordHistory       []string  `gorm:"type:jsonb;serializer:json"`
	LastPasswordChangedAt time.Time `gorm:"not null"`
	ContactEmail          string    `gorm:"type:varchar(255)"`
	UsesLoginEmail        bool      `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
