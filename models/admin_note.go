package models

import "time"

// AdminNote is a message from an administrator to a user. Only the recipient
// is recorded; the admin dashboard shows a global outbox.
type AdminNote struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Seen      bool      `json:"seen" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
