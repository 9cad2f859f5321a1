package models

import (
	"time"

	"github.com/google/uuid"
)

// Report представляет одно валидированное сообщение о мусоре
type Report struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Nonce     uuid.UUID `json:"nonce"`
	Message   string    `json:"message,omitempty"`
	Photo     *Photo    `json:"photo,omitempty"`
}

// Photo - фото с места, уже разобранное из data-URL
type Photo struct {
	MIME   string `json:"mime"`
	Base64 string `json:"base64"`
}

// SubmitResult - итог обработки принятого отчёта: идентификатор,
// присвоенный транспортом, и признак подавленного дубликата
type SubmitResult struct {
	Reference string `json:"reference"`
	Duplicate bool   `json:"duplicate"`
}
