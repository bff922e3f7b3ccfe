package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPending   ArticleStatus = "pending"
	StatusPublished ArticleStatus = "published"
	// StatusArchived is schema-legal but no handler transitions into it.
	StatusArchived ArticleStatus = "archived"
)

type Article struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Title      string         `json:"title" gorm:"not null"`
	Content    string         `json:"content" gorm:"type:text"`
	Status     ArticleStatus  `json:"status" gorm:"default:'draft'"`
	Version    int            `json:"version" gorm:"default:1"`
	CategoryID uint           `json:"category_id" gorm:"not null"`
	Category   Category       `json:"category" gorm:"foreignKey:CategoryID"`
	AuthorID   uint           `json:"author_id" gorm:"not null"`
	Author     User           `json:"author" gorm:"foreignKey:AuthorID"`
	Views      int            `json:"views" gorm:"default:0"`
	PDFFile    string         `json:"pdf_file"`
	Solutions  []Solution     `json:"solutions,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
