package models

import (
	"time"
)

type Question struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	CreatorID   uint      `gorm:"not null;index" json:"creator_id"`
	Creator     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"creator"`
	Content     string    `gorm:"type:text" json:"content"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`
	UpdatedByID *uint     `json:"updated_by_id"`

	// Denormalized aggregate state, re-derived from answers and votes rather
	// than incremented in place.
	LastAnswerID *uint   `json:"last_answer_id"`
	LastAnswer   *Answer `gorm:"foreignKey:LastAnswerID" json:"last_answer,omitempty"`
	NumAnswers   int     `gorm:"default:0;index" json:"num_answers"`
	SolutionID   *uint   `json:"solution_id"`
	Solution     *Answer `gorm:"foreignKey:SolutionID" json:"solution,omitempty"`

	Status           int  `gorm:"default:0;index" json:"status"`
	IsLocked         bool `gorm:"default:false" json:"is_locked"`
	NumVotesPastWeek int  `gorm:"default:0;index" json:"num_votes_past_week"`

	Tags []Tag `gorm:"many2many:question_tags;" json:"tags"`
}

// IsSolved reports whether a solution has been designated.
func (q *Question) IsSolved() bool {
	return q.SolutionID != nil
}

// QuestionMetaData is a key/value row attached to a question (product,
// category, environment details and the like).
type QuestionMetaData struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Name       string `gorm:"size:50;index;not null" json:"name"`
	Value      string `gorm:"type:text" json:"value"`
}
