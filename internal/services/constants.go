package services

// Page sizes are fixed per entity type.
const (
	QuestionsPerPage = 20
	AnswersPerPage   = 25
)

// Listing filters.
const (
	FilterNoReplies       = "no-replies"
	FilterReplies         = "replies"
	FilterSolved          = "solved"
	FilterUnsolved        = "unsolved"
	FilterMyContributions = "my-contributions"
)

// Listing sort keys. The default (empty) sort is by recently updated.
const (
	SortRequested = "requested"
)
