package models

import (
	"time"

	"github.com/linikers/rocketstar/storage"
)

// GenerateQRCodeRequest optionally overrides the validity window; the policy
// default of 72 hours applies when the field is absent.
type GenerateQRCodeRequest struct {
	ValidityHours *float64 `json:"validityHours" binding:"omitempty,gt=0"`
}

type ValidateQRCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ValidateQRCodeResponse struct {
	Status string    `json:"status"`
	UsedAt time.Time `json:"usedAt"`
}

type QRCodeResponse struct {
	Code          string     `json:"code"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	UsedAt        *time.Time `json:"usedAt,omitempty"`
	ValidityHours float64    `json:"validityHours"`
}

type ErrorResponse struct {
	Error     string     `json:"error"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func TransformQRCodeFromStorage(qr *storage.QRCode, now time.Time) QRCodeResponse {
	return QRCodeResponse{
		Code:          qr.Code,
		Status:        qr.Status(now),
		CreatedAt:     qr.CreatedAt,
		ExpiresAt:     qr.ExpiresAt,
		UsedAt:        qr.UsedAt,
		ValidityHours: qr.ValidityHours,
	}
}
