package model

// Question identifies the LeetCode problem a submission belongs to.
type Question struct {
	Title      string
	Slug       string
	FrontendID string
}

// SubmissionSummary is one row of the remote submission listing.
type SubmissionSummary struct {
	ID        string
	Status    string
	Lang      string
	Timestamp int64
	Question  Question
}

// SubmissionDetail carries the source code and measurements of a single submission.
type SubmissionDetail struct {
	ID        string
	Code      string
	Runtime   string
	Memory    string
	Status    string
	Lang      string
	Timestamp int64
	Question  Question
}

// StatusAccepted is the status display text of a submission that passed every test.
const StatusAccepted = "Accepted"

// Accepted reports whether the submission passed the judge.
func (d SubmissionDetail) Accepted() bool {
	return d.Status == StatusAccepted
}
