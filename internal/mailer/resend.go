package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/anythingai/SF-Garbage-Reporter/internal/config"
	"github.com/anythingai/SF-Garbage-Reporter/internal/models"
	"github.com/anythingai/SF-Garbage-Reporter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ErrMissingAPIKey возвращается при отсутствии RESEND_API_KEY:
// отправка падает быстро, без обращения к транспорту
var ErrMissingAPIKey = errors.New("mailer: RESEND_API_KEY is not configured")

// ResendMailer отправляет письма-отчёты через HTTPS API Resend.
// Ровно один исходящий вызов на отправку, без ретраев - повтор
// остаётся за клиентом или вышестоящей очередью.
type ResendMailer struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

// NewResendMailer создает новый ResendMailer
func NewResendMailer(cfg *config.Config, logger *logrus.Logger) *ResendMailer {
	return &ResendMailer{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.DispatchTimeout,
		},
	}
}

// sendRequest - тело запроса к транспорту
type sendRequest struct {
	From        string              `json:"from"`
	To          []string            `json:"to"`
	Subject     string              `json:"subject"`
	Text        string              `json:"text"`
	Attachments []models.Attachment `json:"attachments,omitempty"`
}

// sendResponse - ответ транспорта при успехе
type sendResponse struct {
	ID string `json:"id"`
}

// Dispatch форматирует и отправляет отчёт, возвращая идентификатор,
// присвоенный транспортом. Вызов ограничен жестким таймаутом; детали
// ошибки транспорта попадают только в лог, не к клиенту.
func (m *ResendMailer) Dispatch(ctx context.Context, report *models.Report, requestID string) (string, error) {
	log := logger.WithRequestID(m.logger, requestID).WithField("component", "mailer")

	if m.cfg.ResendAPIKey == "" {
		log.Error("Dispatch failed: transport API key is not configured")
		return "", ErrMissingAPIKey
	}

	envelope := BuildEnvelope(report, requestID, m.cfg.MailFrom, m.cfg.MailTo)

	payload, err := json.Marshal(sendRequest{
		From:        envelope.From,
		To:          []string{envelope.To},
		Subject:     envelope.Subject,
		Text:        envelope.Text,
		Attachments: envelope.Attachments,
	})
	if err != nil {
		return "", fmt.Errorf("mailer: failed to marshal send request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.DispatchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.ResendBaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("mailer: failed to create transport request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.ResendAPIKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Failed to reach mail transport")
		return "", fmt.Errorf("mailer: transport call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Mail transport returned non-success status")
		return "", fmt.Errorf("mailer: transport returned status %d", resp.StatusCode)
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.WithError(err).Error("Failed to decode mail transport response")
		return "", fmt.Errorf("mailer: failed to decode transport response: %w", err)
	}

	log.WithField("reference", result.ID).Info("Report email dispatched successfully")
	return result.ID, nil
}
