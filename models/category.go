package models

import "time"

// Category is a self-referential tree. Nothing guards against cycles; the
// admin that seeds categories is trusted not to create them.
type Category struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Name      string     `json:"name" gorm:"not null"`
	ParentID  *uint      `json:"parent_id"`
	Parent    *Category  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Children  []Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	CreatedAt time.Time  `json:"created_at"`
}
