package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null"`
	Article   *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	AuthorID  *uint     `json:"author_id"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
