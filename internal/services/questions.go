package services

import (
	"errors"
	"strings"
	"time"

	"askhub/internal/models"
	"askhub/internal/utils"

	"gorm.io/gorm"
)

// QuestionService owns question/answer state: creation, the denormalized
// aggregate transitions on new answers, solution marking and the listing
// projection.
type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// ListOptions selects and orders the question listing. Unknown filter and
// sort values fall back to "all questions" and "recently updated". The
// my-contributions filter needs an authenticated actor; without one it also
// falls back to no filter.
type ListOptions struct {
	Filter string
	Sort   string
	Page   int
	Actor  *models.User
}

// QuestionPage is one page of the projected listing, along with the filter
// and sort that were actually applied.
type QuestionPage struct {
	Questions  []models.Question
	Pagination utils.Pagination
	Filter     string
	Sort       string
}

func (s *QuestionService) CreateQuestion(creator *models.User, title, content string) (*models.Question, error) {
	question := models.Question{
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatorID: creator.ID,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// GetQuestion loads a question with its creator, solution and tags.
func (s *QuestionService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.Preload("Creator").Preload("Solution").Preload("Tags").
		First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// CreateAnswer posts an answer and updates the question's aggregate state:
// num_answers is re-derived by counting (not incremented), last_answer points
// at the new answer and the question's updated timestamp is refreshed.
func (s *QuestionService) CreateAnswer(questionID uint, creator *models.User, content string) (*models.Answer, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var answer models.Answer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		answer = models.Answer{
			QuestionID: questionID,
			CreatorID:  creator.ID,
			Content:    content,
		}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		var numAnswers int64
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ?", questionID).
			Count(&numAnswers).Error; err != nil {
			return err
		}

		return tx.Model(&models.Question{}).
			Where("id = ?", questionID).
			Updates(map[string]interface{}{
				"num_answers":    numAnswers,
				"last_answer_id": answer.ID,
				"updated_at":     time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// MarkSolution designates an answer as the question's solution. Only the
// question's creator may do this, and the answer must belong to the question.
func (s *QuestionService) MarkSolution(questionID, answerID uint, actor *models.User) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if actor == nil || actor.ID != question.CreatorID {
		return ErrUnauthorized
	}

	// Scoping the lookup to the question enforces the ownership invariant.
	var answer models.Answer
	err := s.db.Where("id = ? AND question_id = ?", answerID, questionID).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Model(&question).
		Updates(map[string]interface{}{
			"solution_id": answer.ID,
			"updated_at":  time.Now(),
		}).Error
}

// UnmarkSolution retracts the solution. Same authorization as MarkSolution.
func (s *QuestionService) UnmarkSolution(questionID uint, actor *models.User) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if actor == nil || actor.ID != question.CreatorID {
		return ErrUnauthorized
	}

	return s.db.Model(&question).
		Updates(map[string]interface{}{
			"solution_id": nil,
			"updated_at":  time.Now(),
		}).Error
}

// IsContributor reports whether the user created the question or answered it.
func (s *QuestionService) IsContributor(question *models.Question, user *models.User) (bool, error) {
	if user == nil {
		return false, nil
	}
	if question.CreatorID == user.ID {
		return true, nil
	}
	var count int64
	err := s.db.Model(&models.Answer{}).
		Where("question_id = ? AND creator_id = ?", question.ID, user.ID).
		Count(&count).Error
	return count > 0, err
}

// AddMetadata attaches key/value metadata rows to a question.
func (s *QuestionService) AddMetadata(questionID uint, metadata map[string]string) error {
	for name, value := range metadata {
		row := models.QuestionMetaData{
			QuestionID: questionID,
			Name:       name,
			Value:      value,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Metadata returns a question's metadata as a map.
func (s *QuestionService) Metadata(questionID uint) (map[string]string, error) {
	var rows []models.QuestionMetaData
	if err := s.db.Where("question_id = ?", questionID).Find(&rows).Error; err != nil {
		return nil, err
	}
	metadata := make(map[string]string, len(rows))
	for _, row := range rows {
		metadata[row.Name] = row.Value
	}
	return metadata, nil
}

// AnswerPage computes which page of the question's answer listing the answer
// lands on, with answers ordered by creation ascending.
func (s *QuestionService) AnswerPage(answer *models.Answer) (int, error) {
	var earlier int64
	err := s.db.Model(&models.Answer{}).
		Where("question_id = ? AND created_at <= ?", answer.QuestionID, answer.CreatedAt).
		Count(&earlier).Error
	if err != nil {
		return 0, err
	}
	if earlier < 1 {
		return 1, nil
	}
	return int(earlier-1)/AnswersPerPage + 1, nil
}

// ListAnswers returns one page of a question's answers in creation order.
func (s *QuestionService) ListAnswers(questionID uint, page int) ([]models.Answer, utils.Pagination, error) {
	var total int64
	err := s.db.Model(&models.Answer{}).
		Where("question_id = ?", questionID).
		Count(&total).Error
	if err != nil {
		return nil, utils.Pagination{}, err
	}

	p := utils.NewPagination(total, AnswersPerPage, page)
	var answers []models.Answer
	err = s.db.Preload("Creator").
		Where("question_id = ?", questionID).
		Order("created_at ASC, id ASC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&answers).Error
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return answers, p, nil
}

// ListQuestions projects the question set through a filter and sort into one
// page. Ordering carries a secondary sort by id so pagination stays stable
// across ties.
func (s *QuestionService) ListQuestions(opts ListOptions) (*QuestionPage, error) {
	sort := opts.Sort
	var order string
	if sort == SortRequested {
		order = "num_votes_past_week DESC, id DESC"
	} else {
		sort = ""
		order = "updated_at DESC, id DESC"
	}

	filter := opts.Filter
	if filter == FilterMyContributions && opts.Actor == nil {
		filter = ""
	}
	switch filter {
	case FilterNoReplies, FilterReplies, FilterSolved, FilterUnsolved, FilterMyContributions:
	default:
		filter = ""
	}

	// Fresh chain per execution; a gorm statement must not be reused after a
	// finisher call.
	filtered := func() *gorm.DB {
		q := s.db.Model(&models.Question{})
		switch filter {
		case FilterNoReplies:
			q = q.Where("num_answers = 0")
		case FilterReplies:
			q = q.Where("num_answers > 0")
		case FilterSolved:
			q = q.Where("solution_id IS NOT NULL")
		case FilterUnsolved:
			q = q.Where("solution_id IS NULL")
		case FilterMyContributions:
			q = q.Where(
				"creator_id = ? OR id IN (?)",
				opts.Actor.ID,
				s.db.Model(&models.Answer{}).Select("question_id").Where("creator_id = ?", opts.Actor.ID),
			)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, err
	}

	p := utils.NewPagination(total, QuestionsPerPage, opts.Page)
	var questions []models.Question
	err := filtered().Preload("Creator").Preload("Tags").
		Order(order).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  questions,
		Pagination: p,
		Filter:     filter,
		Sort:       sort,
	}, nil
}
