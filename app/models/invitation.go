package models

import (
	"time"

	"gorm.io/gorm"
)

// Invitation is a one-time sign-up token sent to an email address. UserID is
// set once the invitation has been claimed.
type Invitation struct {
	InvitationID uint      `gorm:"column:invitation_id;primaryKey;autoIncrement" json:"invitation_id"`
	Token        string    `gorm:"size:50;not null;uniqueIndex"                  json:"token"`
	Email        string    `gorm:"size:255;not null"                             json:"email"         validate:"max=255"`
	CreatedAt    time.Time `gorm:"not null"                                      json:"created_at"`
	ExpiryDate   time.Time `gorm:"not null"                                      json:"expiry_date"`
	IsUsed       bool      `gorm:"not null;default:false"                        json:"is_used"`
	UserID       *uint     `gorm:"index"                                         json:"user_id"`
}

func (Invitation) TableName() string { return "invitations" }

func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.CreatedAt.IsZero() {
		i.CreatedAt = tx.NowFunc()
	}
	return nil
}
