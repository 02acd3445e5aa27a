package models

import (
	"time"
)

// QuestionVote is an "I have this problem too" vote. Rows are append-only;
// one vote per (question, identity) is enforced by a pre-check at write time.
// Either CreatorID or AnonymousID identifies the voter.
type QuestionVote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	QuestionID  uint      `gorm:"not null;index" json:"question_id"`
	CreatorID   *uint     `gorm:"index" json:"creator_id"`
	AnonymousID string    `gorm:"size:40;index" json:"anonymous_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// AnswerVote is a helpful / not-helpful judgment on an answer. The helpful
// flag is fixed at creation; a later vote from the same identity is rejected
// as a duplicate, never merged.
type AnswerVote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AnswerID    uint      `gorm:"not null;index" json:"answer_id"`
	Helpful     bool      `gorm:"default:false" json:"helpful"`
	CreatorID   *uint     `gorm:"index" json:"creator_id"`
	AnonymousID string    `gorm:"size:40;index" json:"anonymous_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
