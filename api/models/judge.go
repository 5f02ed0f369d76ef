package models

import "github.com/linikers/rocketstar/storage"

type JudgeCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type JudgeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TransformJudgeFromStorage(j *storage.Judge) JudgeResponse {
	return JudgeResponse{
		ID:   j.ID,
		Name: j.Name,
	}
}
