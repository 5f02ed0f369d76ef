package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/storage"
)

// maxSubmitRetries bounds the optimistic retry loop before the conflict is
// surfaced to the caller.
const maxSubmitRetries = 5

const minScore, maxScore = 0, 10

// Scores is one judge's submission across the six fixed criteria.
type Scores struct {
	Anatomy      int
	Creativity   int
	Pigmentation int
	Traces       int
	Readability  int
	VisualImpact int
}

// ValidationError reports caller-fixable input problems. Out-of-range scores
// are rejected, not clamped, so rankings never silently drift.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Service records votes and keeps competitor aggregates consistent under
// concurrent submissions. Each submission is one atomic read-merge-recompute-
// write cycle against the competitor record.
type Service struct {
	competitors storage.CompetitorStorage
	judges      storage.JudgeStorage
}

func NewService(competitors storage.CompetitorStorage, judges storage.JudgeStorage) *Service {
	return &Service{
		competitors: competitors,
		judges:      judges,
	}
}

// SubmitVote merges the judge's entry into the competitor's vote set, replacing
// any previous entry from the same judge, recomputes the aggregates and writes
// the result back conditioned on the version that was read. A lost race retries
// the whole cycle so no interleaved vote is ever overwritten.
func (s *Service) SubmitVote(ctx context.Context, competitorID, judgeID string, scores Scores) (*storage.Competitor, error) {
	if competitorID == "" {
		return nil, &ValidationError{Field: "competitorId", Reason: "must not be empty"}
	}
	if judgeID == "" {
		return nil, &ValidationError{Field: "judgeId", Reason: "must not be empty"}
	}
	if err := validateScores(scores); err != nil {
		return nil, err
	}

	if _, err := s.judges.Get(ctx, judgeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("judge %s: %w", judgeID, storage.ErrNotFound)
		}
		return nil, err
	}

	entry := storage.VoteEntry{
		JudgeID:      judgeID,
		Anatomy:      scores.Anatomy,
		Creativity:   scores.Creativity,
		Pigmentation: scores.Pigmentation,
		Traces:       scores.Traces,
		Readability:  scores.Readability,
		VisualImpact: scores.VisualImpact,
	}

	for attempt := 1; attempt <= maxSubmitRetries; attempt++ {
		competitor, err := s.competitors.Get(ctx, competitorID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("competitor %s: %w", competitorID, storage.ErrNotFound)
			}
			return nil, err
		}

		competitor.Votes = mergeVote(competitor.Votes, entry)
		applyAggregates(competitor)

		err = s.competitors.Update(ctx, competitor)
		if err == nil {
			logging.Log.Infof("VOTE: judge %s scored competitor %s, total now %d over %d votes",
				judgeID, competitorID, competitor.TotalScore, len(competitor.Votes))
			return competitor, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return nil, err
		}
		logging.Log.Warnf("VOTE: conflicting write for competitor %s, retrying (attempt %d)", competitorID, attempt)
	}

	return nil, fmt.Errorf("vote for competitor %s: retries exhausted: %w", competitorID, storage.ErrConflict)
}

func validateScores(scores Scores) error {
	fields := []struct {
		name  string
		value int
	}{
		{"anatomy", scores.Anatomy},
		{"creativity", scores.Creativity},
		{"pigmentation", scores.Pigmentation},
		{"traces", scores.Traces},
		{"readability", scores.Readability},
		{"visualImpact", scores.VisualImpact},
	}
	for _, f := range fields {
		if f.value < minScore || f.value > maxScore {
			return &ValidationError{Field: f.name, Reason: fmt.Sprintf("score must be between %d and %d", minScore, maxScore)}
		}
	}
	return nil
}
