package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/anythingai/SF-Garbage-Reporter/internal/models"
	"github.com/google/uuid"
)

// DTOToReportModel преобразует DTO в доменную модель отчёта.
// receivedAt используется как время отчёта, если клиент его не передал.
func DTOToReportModel(dto SubmitReportRequest, receivedAt time.Time) (*models.Report, error) {
	nonce, err := uuid.Parse(dto.ClientNonce)
	if err != nil {
		return nil, fmt.Errorf("invalid client nonce: %w", err)
	}

	timestamp := receivedAt
	if dto.Timestamp != nil {
		timestamp = time.UnixMilli(*dto.Timestamp)
	}

	report := &models.Report{
		Latitude:  *dto.Lat,
		Longitude: *dto.Lon,
		Accuracy:  dto.Accuracy,
		Timestamp: timestamp,
		Nonce:     nonce,
		Message:   dto.Message,
	}

	if dto.Photo != "" {
		photo, err := parseDataURL(dto.Photo)
		if err != nil {
			return nil, err
		}
		report.Photo = photo
	}

	return report, nil
}

// parseDataURL разбирает data-URL вида data:image/jpeg;base64,<payload>
// на MIME-тип и base64-содержимое без префикса
func parseDataURL(raw string) (*models.Photo, error) {
	rest, ok := strings.CutPrefix(raw, "data:")
	if !ok {
		return nil, fmt.Errorf("photo is not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || payload == "" {
		return nil, fmt.Errorf("photo data URL has no payload")
	}

	mime, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return nil, fmt.Errorf("photo data URL must be base64 encoded")
	}
	if mime == "" {
		return nil, fmt.Errorf("photo data URL has no MIME type")
	}

	return &models.Photo{
		MIME:   mime,
		Base64: payload,
	}, nil
}
