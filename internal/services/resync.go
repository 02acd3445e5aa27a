package services

import (
	"log"
	"sync"
	"time"

	"askhub/internal/models"

	"gorm.io/gorm"
)

// ResyncService recomputes num_votes_past_week asynchronously. Vote writes
// schedule the affected question; a periodic pass resyncs every question that
// had window activity plus the current top of the "requested" ranking, so
// counters decay once their votes age out of the window.
type ResyncService struct {
	db    *gorm.DB
	votes *VoteService

	queue   chan uint
	pending map[uint]bool
	mu      sync.Mutex

	interval   time.Duration
	windowDays int
}

func NewResyncService(db *gorm.DB, votes *VoteService, windowDays int, interval time.Duration) *ResyncService {
	if windowDays <= 0 {
		windowDays = 7
	}
	s := &ResyncService{
		db:         db,
		votes:      votes,
		queue:      make(chan uint, 1000),
		pending:    make(map[uint]bool),
		interval:   interval,
		windowDays: windowDays,
	}
	return s
}

// Start launches the background worker and the periodic full pass.
func (s *ResyncService) Start() {
	go s.worker()
	if s.interval > 0 {
		go s.scheduledPass()
	}
}

// Schedule queues a question for resync. Duplicate requests for a question
// already in the queue are dropped.
func (s *ResyncService) Schedule(questionID uint) {
	s.mu.Lock()
	if s.pending[questionID] {
		s.mu.Unlock()
		return
	}
	s.pending[questionID] = true
	s.mu.Unlock()

	select {
	case s.queue <- questionID:
	default:
		s.mu.Lock()
		delete(s.pending, questionID)
		s.mu.Unlock()
		log.Printf("vote resync queue full, skipping question %d", questionID)
	}
}

func (s *ResyncService) worker() {
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case questionID := <-s.queue:
			batch = append(batch, questionID)
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *ResyncService) processBatch(questionIDs []uint) {
	for _, questionID := range questionIDs {
		if _, err := s.votes.SyncNumVotesPastWeek(questionID); err != nil {
			log.Printf("vote resync failed for question %d: %v", questionID, err)
		}
		s.mu.Lock()
		delete(s.pending, questionID)
		s.mu.Unlock()
	}
}

func (s *ResyncService) scheduledPass() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for range ticker.C {
		s.ResyncActive()
	}
}

// ResyncActive recomputes the counter for every question with a vote inside
// the window, plus the current leaders of the requested ranking (whose
// counters need to fall back to zero as votes age out). Deduped while
// iterating.
func (s *ResyncService) ResyncActive() {
	processed := make(map[uint]bool)
	count := 0

	since := time.Now().AddDate(0, 0, -s.windowDays)
	var recent []models.QuestionVote
	s.db.Model(&models.QuestionVote{}).
		Select("DISTINCT question_id").
		Where("created_at >= ?", since).
		Find(&recent)
	for _, v := range recent {
		if s.resyncOne(v.QuestionID, processed) {
			count++
		}
	}

	var leaders []models.Question
	s.db.Model(&models.Question{}).
		Select("id").
		Where("num_votes_past_week > 0").
		Order("num_votes_past_week DESC").
		Limit(100).
		Find(&leaders)
	for _, q := range leaders {
		if s.resyncOne(q.ID, processed) {
			count++
		}
	}

	if count > 0 {
		log.Printf("resynced vote counters for %d questions", count)
	}
}

func (s *ResyncService) resyncOne(questionID uint, processed map[uint]bool) bool {
	if processed[questionID] {
		return false
	}
	processed[questionID] = true
	if _, err := s.votes.SyncNumVotesPastWeek(questionID); err != nil {
		log.Printf("vote resync failed for question %d: %v", questionID, err)
	}
	return true
}
