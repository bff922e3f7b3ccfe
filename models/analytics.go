package models

import "time"

// ArticleView is an append-only log of article detail hits.
type ArticleView struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null"`
	UserID    *uint     `json:"user_id"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

// Search is an append-only log of every non-empty search query, including
// those with zero results.
type Search struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Term         string    `json:"term" gorm:"not null"`
	UserID       *uint     `json:"user_id"`
	IPAddress    string    `json:"ip_address"`
	ResultsFound int       `json:"results_found" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
}

type Feedback struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null"`
	UserID    *uint     `json:"user_id"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
