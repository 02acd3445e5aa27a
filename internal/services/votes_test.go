package services

import (
	"testing"
	"time"

	"askhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQuestionVoteDeduplicatesPerIdentity(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	asker := createUser(t, conn, "asker")
	voter := createUser(t, conn, "voter")
	question := createQuestion(t, conn, asker, "printer on fire")

	identity := models.AuthenticatedIdentity(voter.ID)

	accepted, err := votes.RecordQuestionVote(question.ID, identity)
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = votes.RecordQuestionVote(question.ID, identity)
	require.NoError(t, err)
	assert.False(t, accepted, "second vote from the same identity must be a no-op")

	count, err := votes.CountVotes(question.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRecordQuestionVoteAnonymousIdentity(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	asker := createUser(t, conn, "asker")
	question := createQuestion(t, conn, asker, "no sound")

	anon := models.AnonymousIdentity("browser-token-1")
	other := models.AnonymousIdentity("browser-token-2")

	accepted, err := votes.RecordQuestionVote(question.ID, anon)
	require.NoError(t, err)
	assert.True(t, accepted)

	// Same browser again: duplicate.
	accepted, err = votes.RecordQuestionVote(question.ID, anon)
	require.NoError(t, err)
	assert.False(t, accepted)

	// A different anonymous token is a different identity.
	accepted, err = votes.RecordQuestionVote(question.ID, other)
	require.NoError(t, err)
	assert.True(t, accepted)

	count, err := votes.CountVotes(question.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRecordQuestionVoteZeroIdentity(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	asker := createUser(t, conn, "asker")
	question := createQuestion(t, conn, asker, "blank page")

	accepted, err := votes.RecordQuestionVote(question.ID, models.Identity{})
	require.NoError(t, err)
	assert.False(t, accepted)

	count, err := votes.CountVotes(question.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordQuestionVoteUnknownQuestion(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)

	_, err := votes.RecordQuestionVote(9999, models.AnonymousIdentity("tok"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordAnswerVoteKeepsFirstJudgment(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	asker := createUser(t, conn, "asker")
	helper := createUser(t, conn, "helper")
	question := createQuestion(t, conn, asker, "crash on start")
	answer := createAnswer(t, conn, question, helper, time.Now())

	identity := models.AuthenticatedIdentity(asker.ID)

	accepted, err := votes.RecordAnswerVote(answer.ID, identity, true)
	require.NoError(t, err)
	assert.True(t, accepted)

	// A later, contradictory vote is rejected outright, not merged.
	accepted, err = votes.RecordAnswerVote(answer.ID, identity, false)
	require.NoError(t, err)
	assert.False(t, accepted)

	var rows []models.AnswerVote
	require.NoError(t, conn.Where("answer_id = ?", answer.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Helpful)

	helpfulCount, err := votes.CountHelpful(answer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, helpfulCount)

	total, err := votes.CountTotal(answer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCountVotesInWindow(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	asker := createUser(t, conn, "asker")
	question := createQuestion(t, conn, asker, "slow startup")

	fresh := models.QuestionVote{QuestionID: question.ID, AnonymousID: "a", CreatedAt: time.Now().Add(-time.Hour)}
	stale := models.QuestionVote{QuestionID: question.ID, AnonymousID: "b", CreatedAt: time.Now().AddDate(0, 0, -8)}
	require.NoError(t, conn.Create(&fresh).Error)
	require.NoError(t, conn.Create(&stale).Error)

	total, err := votes.CountVotes(question.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	windowed, err := votes.CountVotesInWindow(question.ID, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 1, windowed)
}

func TestSyncNumVotesPastWeek(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	asker := createUser(t, conn, "asker")
	question := createQuestion(t, conn, asker, "update loop")

	for _, tok := range []string{"a", "b", "c"} {
		vote := models.QuestionVote{QuestionID: question.ID, AnonymousID: tok, CreatedAt: time.Now().Add(-time.Hour)}
		require.NoError(t, conn.Create(&vote).Error)
	}
	old := models.QuestionVote{QuestionID: question.ID, AnonymousID: "d", CreatedAt: time.Now().AddDate(0, 0, -30)}
	require.NoError(t, conn.Create(&old).Error)

	// Counter is stale until synced.
	assert.Zero(t, reloadQuestion(t, conn, question.ID).NumVotesPastWeek)

	n, err := votes.SyncNumVotesPastWeek(question.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, reloadQuestion(t, conn, question.ID).NumVotesPastWeek)
}

func TestHelpfulAnswersExcludesSolution(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	questions := NewQuestionService(conn)
	asker := createUser(t, conn, "asker")
	helper := createUser(t, conn, "helper")
	question := createQuestion(t, conn, asker, "wifi drops")

	a1 := createAnswer(t, conn, question, helper, time.Now().Add(-2*time.Minute))
	a2 := createAnswer(t, conn, question, helper, time.Now().Add(-time.Minute))
	a3 := createAnswer(t, conn, question, helper, time.Now())

	// a1 and a2 get helpful votes, a3 only an unhelpful one.
	_, err := votes.RecordAnswerVote(a1.ID, models.AnonymousIdentity("t1"), true)
	require.NoError(t, err)
	_, err = votes.RecordAnswerVote(a2.ID, models.AnonymousIdentity("t2"), true)
	require.NoError(t, err)
	_, err = votes.RecordAnswerVote(a3.ID, models.AnonymousIdentity("t3"), false)
	require.NoError(t, err)

	helpful, err := votes.HelpfulAnswers(reloadQuestion(t, conn, question.ID))
	require.NoError(t, err)
	require.Len(t, helpful, 2)

	// Marking a1 as the solution removes it from the helpful set even though
	// it still has a helpful vote.
	require.NoError(t, questions.MarkSolution(question.ID, a1.ID, asker))

	helpful, err = votes.HelpfulAnswers(reloadQuestion(t, conn, question.ID))
	require.NoError(t, err)
	require.Len(t, helpful, 1)
	assert.Equal(t, a2.ID, helpful[0].ID)
}

func TestHasVoted(t *testing.T) {
	conn := newTestDB(t)
	votes := NewVoteService(conn, 7)
	asker := createUser(t, conn, "asker")
	question := createQuestion(t, conn, asker, "fonts look wrong")

	identity := models.AnonymousIdentity("tok")

	voted, err := votes.HasVotedQuestion(question.ID, identity)
	require.NoError(t, err)
	assert.False(t, voted)

	_, err = votes.RecordQuestionVote(question.ID, identity)
	require.NoError(t, err)

	voted, err = votes.HasVotedQuestion(question.ID, identity)
	require.NoError(t, err)
	assert.True(t, voted)

	// A zero identity can never have voted.
	voted, err = votes.HasVotedQuestion(question.ID, models.Identity{})
	require.NoError(t, err)
	assert.False(t, voted)
}
