package scoring

import "github.com/linikers/rocketstar/storage"

// mergeVote folds a judge's entry into the competitor's entry set: any previous
// entry from the same judge is replaced, never duplicated. Re-voting updates.
func mergeVote(entries []storage.VoteEntry, entry storage.VoteEntry) []storage.VoteEntry {
	merged := make([]storage.VoteEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.JudgeID != entry.JudgeID {
			merged = append(merged, e)
		}
	}
	return append(merged, entry)
}

// applyAggregates recomputes the six per-criterion sums and the total from the
// current entry set. Pure with respect to everything but the competitor passed
// in; the totals depend only on Votes.
func applyAggregates(competitor *storage.Competitor) {
	var anatomy, creativity, pigmentation, traces, readability, visualImpact int
	for _, v := range competitor.Votes {
		anatomy += v.Anatomy
		creativity += v.Creativity
		pigmentation += v.Pigmentation
		traces += v.Traces
		readability += v.Readability
		visualImpact += v.VisualImpact
	}
	competitor.Anatomy = anatomy
	competitor.Creativity = creativity
	competitor.Pigmentation = pigmentation
	competitor.Traces = traces
	competitor.Readability = readability
	competitor.VisualImpact = visualImpact
	competitor.TotalScore = anatomy + creativity + pigmentation + traces + readability + visualImpact
}
