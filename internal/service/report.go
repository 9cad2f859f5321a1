package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anythingai/SF-Garbage-Reporter/internal/config"
	"github.com/anythingai/SF-Garbage-Reporter/internal/dedup"
	"github.com/anythingai/SF-Garbage-Reporter/internal/models"
	"github.com/anythingai/SF-Garbage-Reporter/pkg/logger"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ErrOutOfBounds возвращается, когда geo-гейт включен и координаты
// лежат вне настроенного прямоугольника
var ErrOutOfBounds = errors.New("service: coordinates are outside the service area")

// DedupStore определяет контракт для работы с записями дедупликации
type DedupStore interface {
	Lookup(ctx context.Context, fingerprint string) (*dedup.Record, error)
	Store(ctx context.Context, fingerprint, reference string) error
}

// ReportDispatcher определяет контракт исходящей отправки отчёта
type ReportDispatcher interface {
	Dispatch(ctx context.Context, report *models.Report, requestID string) (string, error)
}

// ReportService определяет контракт бизнес-логики приёма отчётов
type ReportService interface {
	Submit(ctx context.Context, report *models.Report, requestID string) (*models.SubmitResult, error)
}

type reportService struct {
	store      DedupStore
	dispatcher ReportDispatcher
	logger     *logrus.Logger
	cfg        *config.Config
	now        func() time.Time
}

func NewReportService(store DedupStore, dispatcher ReportDispatcher, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Submit проводит отчёт по конвейеру: гейт -> проверка дубликата ->
// отправка -> запись в кеш. Порядок строгий: запись в кеш никогда
// не происходит до успешной отправки, чтобы неудача не отравила кеш.
func (s *reportService) Submit(ctx context.Context, report *models.Report, requestID string) (*models.SubmitResult, error) {
	log := logger.WithRequestID(s.logger, requestID).WithFields(logrus.Fields{
		"service": "report",
		"method":  "Submit",
	})
	log.Info("Processing garbage report submission")

	if s.cfg.GeoFenceEnabled && !s.inServiceArea(report.Latitude, report.Longitude) {
		log.WithFields(logrus.Fields{
			"latitude":  report.Latitude,
			"longitude": report.Longitude,
		}).Warn("Report rejected by geo fence")
		return nil, ErrOutOfBounds
	}

	fingerprint := dedup.Fingerprint(report.Latitude, report.Longitude, report.Nonce, s.now())

	rec, err := s.store.Lookup(ctx, fingerprint)
	if err != nil {
		// Сломанный кеш не должен блокировать приём - считаем промахом
		log.WithError(err).Warn("Dedup lookup failed, treating as a miss")
	}
	if rec != nil {
		log.WithField("reference", rec.Reference).Info("Duplicate submission suppressed, returning cached result")
		return &models.SubmitResult{Reference: rec.Reference, Duplicate: true}, nil
	}

	// Осознанная гонка: два одновременных одинаковых отчёта могут оба
	// дойти до отправки - пер-отпечатковой блокировки нет
	reference, err := s.dispatcher.Dispatch(ctx, report, requestID)
	if err != nil {
		log.WithError(err).Error("Failed to dispatch report")
		return nil, fmt.Errorf("service: could not dispatch report: %w", err)
	}

	if err := s.store.Store(ctx, fingerprint, reference); err != nil {
		// Неудача записи не отменяет уже отправленный отчёт
		log.WithError(err).Warn("Failed to store dedup record")
	}

	log.WithField("reference", reference).Info("Report submitted successfully")
	return &models.SubmitResult{Reference: reference}, nil
}

// inServiceArea проверяет попадание точки в настроенный прямоугольник
func (s *reportService) inServiceArea(lat, lon float64) bool {
	return lat >= s.cfg.GeoFenceSouth && lat <= s.cfg.GeoFenceNorth &&
		lon >= s.cfg.GeoFenceWest && lon <= s.cfg.GeoFenceEast
}
