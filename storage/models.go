package storage

import "time"

// QR code lifecycle states. Never persisted, always derived via QRCode.Status.
const (
	QRCodeStatusValid   = "valid"
	QRCodeStatusExpired = "expired"
	QRCodeStatusUsed    = "used"
)

// VoteEntry is one judge's full set of criterion scores for one competitor.
// A competitor holds at most one entry per judge.
type VoteEntry struct {
	JudgeID      string `dynamodbav:"JudgeID" json:"judgeId"`
	Anatomy      int    `dynamodbav:"Anatomy" json:"anatomy"`
	Creativity   int    `dynamodbav:"Creativity" json:"creativity"`
	Pigmentation int    `dynamodbav:"Pigmentation" json:"pigmentation"`
	Traces       int    `dynamodbav:"Traces" json:"traces"`
	Readability  int    `dynamodbav:"Readability" json:"readability"`
	VisualImpact int    `dynamodbav:"VisualImpact" json:"visualImpact"`
}

// Competitor carries the vote entries plus the materialized per-criterion sums.
// The aggregates and TotalScore are recomputed from Votes on every submission.
// Version is the optimistic-concurrency token: an update only succeeds when the
// stored version still matches the one that was read.
type Competitor struct {
	ID           string      `dynamodbav:"PK"`
	Name         string      `dynamodbav:"Name"`
	Work         string      `dynamodbav:"Work"`
	Category     string      `dynamodbav:"Category"`
	Votes        []VoteEntry `dynamodbav:"Votes"`
	Anatomy      int         `dynamodbav:"Anatomy"`
	Creativity   int         `dynamodbav:"Creativity"`
	Pigmentation int         `dynamodbav:"Pigmentation"`
	Traces       int         `dynamodbav:"Traces"`
	Readability  int         `dynamodbav:"Readability"`
	VisualImpact int         `dynamodbav:"VisualImpact"`
	TotalScore   int         `dynamodbav:"TotalScore"`
	Version      int64       `dynamodbav:"Version"`
}

// QRCode is a single-use, time-limited access code.
// ExpiresAt is stored as epoch seconds so conditional writes can compare it.
type QRCode struct {
	Code          string     `dynamodbav:"PK"`
	CreatedAt     time.Time  `dynamodbav:"CreatedAt"`
	ExpiresAt     time.Time  `dynamodbav:"ExpiresAt,unixtime"`
	UsedAt        *time.Time `dynamodbav:"UsedAt"`
	IsUsed        bool       `dynamodbav:"IsUsed"`
	ValidityHours float64    `dynamodbav:"ValidityHours"`
}

// Status derives the lifecycle state from the stored fields and the clock.
func (q *QRCode) Status(now time.Time) string {
	if q.IsUsed {
		return QRCodeStatusUsed
	}
	if now.After(q.ExpiresAt) {
		return QRCodeStatusExpired
	}
	return QRCodeStatusValid
}

type Judge struct {
	ID   string `dynamodbav:"PK"`
	Name string `dynamodbav:"Name"`
}
