package services

import (
	"errors"
	"strings"

	"askhub/internal/models"

	"gorm.io/gorm"
)

// TagService is the tag store: a case-insensitive canonical vocabulary plus
// per-question membership. Creating a new canonical tag is gated by the
// caller's capability; adding an unknown tag without it fails distinctly from
// providing no tag at all.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// AddTag attaches a tag to a question and returns the canonical name. If the
// name is unknown and canCreate is set, the tag is created with the given
// spelling; otherwise ErrUnknownTag. Adding a tag the question already has is
// a no-op.
func (s *TagService) AddTag(questionID uint, name string, canCreate bool) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyTagName
	}

	var question models.Question
	if err := s.db.Preload("Tags").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	tag, err := s.findCanonical(name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		if !canCreate {
			return "", ErrUnknownTag
		}
		tag = &models.Tag{Name: name}
		if err := s.db.Create(tag).Error; err != nil {
			return "", err
		}
	}

	for _, existing := range question.Tags {
		if strings.EqualFold(existing.Name, tag.Name) {
			return tag.Name, nil
		}
	}
	if err := s.db.Model(&question).Association("Tags").Append(tag); err != nil {
		return "", err
	}
	return tag.Name, nil
}

// RemoveTag detaches a tag by case-insensitive name. Removing a tag the
// question does not have is a no-op.
func (s *TagService) RemoveTag(questionID uint, name string) error {
	var question models.Question
	if err := s.db.Preload("Tags").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	for i := range question.Tags {
		if strings.EqualFold(question.Tags[i].Name, name) {
			return s.db.Model(&question).Association("Tags").Delete(&question.Tags[i])
		}
	}
	return nil
}

// Tags returns the question's canonical tag names.
func (s *TagService) Tags(questionID uint) ([]string, error) {
	var question models.Question
	if err := s.db.Preload("Tags").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	names := make([]string, 0, len(question.Tags))
	for _, tag := range question.Tags {
		names = append(names, tag.Name)
	}
	return names, nil
}

// Vocabulary lists every canonical tag name, for tag pickers.
func (s *TagService) Vocabulary() ([]string, error) {
	var tags []models.Tag
	if err := s.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names, nil
}

func (s *TagService) findCanonical(name string) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
