package services

import (
	"errors"
	"time"

	"askhub/internal/models"

	"gorm.io/gorm"
)

// VoteService is the vote ledger and aggregator. Vote rows are append-only;
// every derived counter is recomputed by scanning the rows, never by
// incrementing in place, so counters cannot drift from the underlying set.
type VoteService struct {
	db         *gorm.DB
	windowDays int
}

func NewVoteService(db *gorm.DB, windowDays int) *VoteService {
	if windowDays <= 0 {
		windowDays = 7
	}
	return &VoteService{db: db, windowDays: windowDays}
}

// identityScope narrows a vote query to rows written by the given identity.
// Authenticated and anonymous identities carry equal weight.
func identityScope(q *gorm.DB, identity models.Identity) *gorm.DB {
	if identity.IsAuthenticated() {
		return q.Where("creator_id = ?", *identity.UserID)
	}
	return q.Where("anonymous_id = ?", identity.AnonymousID)
}

// RecordQuestionVote appends an "I have this problem too" vote. A repeat vote
// from the same identity is absorbed as a no-op and reported as accepted=false.
// The check-then-write is best-effort; a storage-level uniqueness constraint
// can be layered on without changing callers.
func (s *VoteService) RecordQuestionVote(questionID uint, identity models.Identity) (bool, error) {
	if identity.IsZero() {
		return false, nil
	}

	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	voted, err := s.HasVotedQuestion(questionID, identity)
	if err != nil {
		return false, err
	}
	if voted {
		return false, nil
	}

	vote := models.QuestionVote{
		QuestionID:  questionID,
		CreatorID:   identity.UserID,
		AnonymousID: identity.AnonymousID,
	}
	if err := s.db.Create(&vote).Error; err != nil {
		return false, err
	}
	return true, nil
}

// RecordAnswerVote appends a helpful/not-helpful vote on an answer. The first
// recorded helpful value is retained; a later vote from the same identity is
// rejected as a duplicate, not merged.
func (s *VoteService) RecordAnswerVote(answerID uint, identity models.Identity, helpful bool) (bool, error) {
	if identity.IsZero() {
		return false, nil
	}

	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	voted, err := s.HasVotedAnswer(answerID, identity)
	if err != nil {
		return false, err
	}
	if voted {
		return false, nil
	}

	vote := models.AnswerVote{
		AnswerID:    answerID,
		Helpful:     helpful,
		CreatorID:   identity.UserID,
		AnonymousID: identity.AnonymousID,
	}
	if err := s.db.Create(&vote).Error; err != nil {
		return false, err
	}
	return true, nil
}

// HasVotedQuestion reports whether the identity already voted on the question.
func (s *VoteService) HasVotedQuestion(questionID uint, identity models.Identity) (bool, error) {
	if identity.IsZero() {
		return false, nil
	}
	var count int64
	q := s.db.Model(&models.QuestionVote{}).Where("question_id = ?", questionID)
	if err := identityScope(q, identity).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasVotedAnswer reports whether the identity already voted on the answer.
func (s *VoteService) HasVotedAnswer(answerID uint, identity models.Identity) (bool, error) {
	if identity.IsZero() {
		return false, nil
	}
	var count int64
	q := s.db.Model(&models.AnswerVote{}).Where("answer_id = ?", answerID)
	if err := identityScope(q, identity).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountVotes is the all-time vote count for a question.
func (s *VoteService) CountVotes(questionID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.QuestionVote{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}

// CountVotesInWindow counts question votes created within the trailing
// windowDays days.
func (s *VoteService) CountVotesInWindow(questionID uint, windowDays int) (int64, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	var count int64
	err := s.db.Model(&models.QuestionVote{}).
		Where("question_id = ? AND created_at >= ?", questionID, since).
		Count(&count).Error
	return count, err
}

// CountTotal is the total vote count for an answer.
func (s *VoteService) CountTotal(answerID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.AnswerVote{}).
		Where("answer_id = ?", answerID).
		Count(&count).Error
	return count, err
}

// CountHelpful is the helpful vote count for an answer.
func (s *VoteService) CountHelpful(answerID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.AnswerVote{}).
		Where("answer_id = ? AND helpful = ?", answerID, true).
		Count(&count).Error
	return count, err
}

// HelpfulAnswers returns the question's answers that received at least one
// helpful vote, excluding the current solution. The solution is surfaced
// separately in presentation and is never duplicated here.
func (s *VoteService) HelpfulAnswers(question *models.Question) ([]models.Answer, error) {
	helpful := s.db.Model(&models.AnswerVote{}).
		Select("answer_id").
		Where("helpful = ?", true)

	q := s.db.Where("question_id = ? AND id IN (?)", question.ID, helpful)
	if question.SolutionID != nil {
		q = q.Where("id <> ?", *question.SolutionID)
	}

	var answers []models.Answer
	if err := q.Preload("Creator").Order("created_at ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// SyncNumVotesPastWeek recomputes the trailing-window vote count and stores it
// on the question. The counter is only as fresh as the last sync; callers
// decide when to resync. UpdateColumn leaves the question's updated timestamp
// alone, matching an internal non-user-facing save.
func (s *VoteService) SyncNumVotesPastWeek(questionID uint) (int, error) {
	count, err := s.CountVotesInWindow(questionID, s.windowDays)
	if err != nil {
		return 0, err
	}
	err = s.db.Model(&models.Question{}).
		Where("id = ?", questionID).
		UpdateColumn("num_votes_past_week", count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
