package models

import "github.com/linikers/rocketstar/storage"

type CompetitorCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Work     string `json:"work" binding:"required"`
	Category string `json:"category"`
}

// CompetitorResponse is the public shape of a competitor: identity plus the
// materialized aggregates. Individual vote entries are served separately.
type CompetitorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Work         string `json:"work"`
	Category     string `json:"category"`
	VoteCount    int    `json:"voteCount"`
	Anatomy      int    `json:"anatomy"`
	Creativity   int    `json:"creativity"`
	Pigmentation int    `json:"pigmentation"`
	Traces       int    `json:"traces"`
	Readability  int    `json:"readability"`
	VisualImpact int    `json:"visualImpact"`
	TotalScore   int    `json:"totalScore"`
}

func TransformCompetitorFromStorage(c *storage.Competitor) CompetitorResponse {
	return CompetitorResponse{
		ID:           c.ID,
		Name:         c.Name,
		Work:         c.Work,
		Category:     c.Category,
		VoteCount:    len(c.Votes),
		Anatomy:      c.Anatomy,
		Creativity:   c.Creativity,
		Pigmentation: c.Pigmentation,
		Traces:       c.Traces,
		Readability:  c.Readability,
		VisualImpact: c.VisualImpact,
		TotalScore:   c.TotalScore,
	}
}
