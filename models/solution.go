package models

import "time"

type SolutionStatus string

const (
	SolutionPending   SolutionStatus = "pending"
	SolutionValidated SolutionStatus = "validated"
	SolutionRefused   SolutionStatus = "refused"
)

// Solution is a community-proposed answer attached to an article. Only
// validated solutions are shown publicly.
type Solution struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	ArticleID uint           `json:"article_id" gorm:"not null"`
	Article   *Article       `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	Content   string         `json:"content" gorm:"type:text"`
	AuthorID  *uint          `json:"author_id"`
	Author    *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Status    SolutionStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt time.Time      `json:"created_at"`
}
