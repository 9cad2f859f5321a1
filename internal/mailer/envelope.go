package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/anythingai/SF-Garbage-Reporter/internal/models"
)

const (
	sourceLabel        = "SF Garbage Reporter"
	noMessage          = "No message provided."
	photoFilenameStem  = "report-photo"
	defaultPhotoSuffix = "jpg"
)

// BuildEnvelope формирует письмо-отчёт из валидированной отправки.
// Чистая функция: одинаковый вход всегда дает одинаковый конверт.
func BuildEnvelope(report *models.Report, requestID, from, to string) models.ReportEnvelope {
	subject := fmt.Sprintf("New Garbage Report at %.6f, %.6f", report.Latitude, report.Longitude)

	var b strings.Builder
	fmt.Fprintf(&b, "A new garbage report has been submitted via %s.\n\n", sourceLabel)
	fmt.Fprintf(&b, "Time: %s\n", report.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Location: %.6f, %.6f\n", report.Latitude, report.Longitude)
	if report.Accuracy != nil {
		fmt.Fprintf(&b, "Accuracy: ±%.0fm\n", *report.Accuracy)
	}
	fmt.Fprintf(&b, "Report ID: %s\n", report.Nonce)
	fmt.Fprintf(&b, "Request ID: %s\n", requestID)

	message := report.Message
	if message == "" {
		message = noMessage
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", message)

	env := models.ReportEnvelope{
		From:    from,
		To:      to,
		Subject: subject,
		Text:    b.String(),
	}

	if report.Photo != nil {
		env.Attachments = []models.Attachment{{
			Filename: photoFilenameStem + "." + photoSuffix(report.Photo.MIME),
			Content:  report.Photo.Base64,
		}}
	}

	return env
}

// photoSuffix выводит расширение файла из MIME-типа, например image/png -> png
func photoSuffix(mime string) string {
	if _, sub, ok := strings.Cut(mime, "/"); ok && sub != "" {
		return sub
	}
	return defaultPhotoSuffix
}
