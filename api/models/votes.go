package models

import "github.com/linikers/rocketstar/storage"

// SubmitVoteRequest is one judge's full submission. Score fields are pointers
// so "required" can tell a missing field from a legitimate zero.
type SubmitVoteRequest struct {
	CompetitorID string `json:"competitorId" binding:"required"`
	JudgeID      string `json:"judgeId" binding:"required"`
	Anatomy      *int   `json:"anatomy" binding:"required,min=0,max=10"`
	Creativity   *int   `json:"creativity" binding:"required,min=0,max=10"`
	Pigmentation *int   `json:"pigmentation" binding:"required,min=0,max=10"`
	Traces       *int   `json:"traces" binding:"required,min=0,max=10"`
	Readability  *int   `json:"readability" binding:"required,min=0,max=10"`
	VisualImpact *int   `json:"visualImpact" binding:"required,min=0,max=10"`
}

type VoteEntryResponse struct {
	JudgeID      string `json:"judgeId"`
	Anatomy      int    `json:"anatomy"`
	Creativity   int    `json:"creativity"`
	Pigmentation int    `json:"pigmentation"`
	Traces       int    `json:"traces"`
	Readability  int    `json:"readability"`
	VisualImpact int    `json:"visualImpact"`
}

type GetVotesResponse struct {
	CompetitorID string              `json:"competitorId"`
	Votes        []VoteEntryResponse `json:"votes"`
}

func TransformVotesFromStorage(competitor *storage.Competitor) GetVotesResponse {
	response := GetVotesResponse{
		CompetitorID: competitor.ID,
		Votes:        make([]VoteEntryResponse, 0, len(competitor.Votes)),
	}
	for _, v := range competitor.Votes {
		response.Votes = append(response.Votes, VoteEntryResponse{
			JudgeID:      v.JudgeID,
			Anatomy:      v.Anatomy,
			Creativity:   v.Creativity,
			Pigmentation: v.Pigmentation,
			Traces:       v.Traces,
			Readability:  v.Readability,
			VisualImpact: v.VisualImpact,
		})
	}
	return response
}
