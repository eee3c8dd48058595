package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/config"
	"github.com/shenikar/geo_checkin/internal/metrics"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/shenikar/geo_checkin/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=checkin.go -destination=mocks/mock_checkin.go -package=mocks

// CheckInRepository определяет контракт для работы с журналом check-in
type CheckInRepository interface {
	// SaveCheckIn атомарно проверяет кулдаун пользователя, добавляет запись в журнал
	// и обновляет его текущее местоположение. При активном кулдауне возвращает
	// apperr.CooldownActive и ничего не пишет.
	SaveCheckIn(ctx context.Context, checkIn *models.CheckInRecord, cooldown time.Duration) error
	// GetLastCheckIn возвращает nil, nil, если у пользователя еще нет check-in
	GetLastCheckIn(ctx context.Context, userID string) (*models.CheckInRecord, error)
	ListCheckIns(ctx context.Context, userID string, limit int) ([]*models.CheckInRecord, error)
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)
	CountActiveUsers(ctx context.Context, since time.Time) (int, error)
}

// CheckInService определяет контракт бизнес-логики check-in
type CheckInService interface {
	SaveCheckIn(ctx context.Context, userID string, coord models.Coordinate, address models.Address) (*models.CheckInRecord, error)
	GetCooldownStatus(ctx context.Context, userID string) (*models.CooldownStatus, error)
	ListCheckIns(ctx context.Context, userID string, limit int) ([]*models.CheckInRecord, error)
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)
	GetActiveUsersCount(ctx context.Context) (int, error)
}

type checkInService struct {
	repo      CheckInRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	now       func() time.Time
}

func NewCheckInService(repo CheckInRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) CheckInService {
	return &checkInService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// SaveCheckIn проверяет и сохраняет check-in пользователя.
// Время check-in всегда берется с часов сервера.
func (s *checkInService) SaveCheckIn(ctx context.Context, userID string, coord models.Coordinate, address models.Address) (*models.CheckInRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "SaveCheckIn",
		"user_id": userID,
	})

	if userID == "" {
		metrics.CheckInsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, apperr.ErrUnauthenticated
	}
	if err := ValidateCoordinate(coord); err != nil {
		log.WithError(err).Warn("Rejected check-in with invalid coordinate")
		metrics.CheckInsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}

	checkIn := &models.CheckInRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Latitude:    coord.Latitude,
		Longitude:   coord.Longitude,
		Address:     SanitizeAddress(address),
		CheckedInAt: s.now().UTC().Truncate(time.Microsecond), // точность timestamptz
	}

	if err := s.repo.SaveCheckIn(ctx, checkIn, s.cfg.CheckInCooldown); err != nil {
		if errors.Is(err, apperr.ErrCooldownActive) {
			log.Info("Check-in rejected: cooldown is active")
			metrics.CheckInsTotal.WithLabelValues(metrics.ResultCooldown).Inc()
			return nil, err
		}
		log.WithError(err).Error("Failed to save check-in in repository")
		metrics.CheckInsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("service: could not save check-in: %w", err)
	}

	metrics.CheckInsTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	log.WithField("checkin_id", checkIn.ID).Info("Check-in saved successfully")

	s.publishCheckIn(ctx, log, checkIn)
	return checkIn, nil
}

// publishCheckIn отправляет событие в очередь вебхуков; ошибка не отменяет check-in
func (s *checkInService) publishCheckIn(ctx context.Context, log *logrus.Entry, checkIn *models.CheckInRecord) {
	if s.publisher == nil {
		return
	}
	event := webhook.WebhookEvent{
		Type:      webhook.EventCheckInCreated,
		CheckInID: checkIn.ID,
		UserID:    checkIn.UserID,
		Latitude:  checkIn.Latitude,
		Longitude: checkIn.Longitude,
		City:      checkIn.City,
		Timestamp: checkIn.CheckedInAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish check-in webhook event")
	}
}

// GetCooldownStatus вычисляет, может ли пользователь сделать check-in сейчас.
// Результат носит справочный характер: решение принимает только SaveCheckIn.
func (s *checkInService) GetCooldownStatus(ctx context.Context, userID string) (*models.CooldownStatus, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "GetCooldownStatus",
		"user_id": userID,
	})

	last, err := s.repo.GetLastCheckIn(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get last check-in from repository")
		return nil, fmt.Errorf("service: could not get cooldown status: %w", err)
	}

	status := &models.CooldownStatus{CanCheckIn: true}
	if last == nil {
		return status, nil
	}

	next := last.CheckedInAt.Add(s.cfg.CheckInCooldown).UTC()
	if s.now().Before(next) {
		status.CanCheckIn = false
		status.NextAllowedAt = &next
	}
	return status, nil
}

// ListCheckIns возвращает последние check-in пользователя, новые первыми
func (s *checkInService) ListCheckIns(ctx context.Context, userID string, limit int) ([]*models.CheckInRecord, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	if limit < 1 || limit > s.cfg.TimelineLimit {
		limit = s.cfg.TimelineLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "ListCheckIns",
		"user_id": userID,
		"limit":   limit,
	})
	log.Debug("Listing check-ins")

	checkIns, err := s.repo.ListCheckIns(ctx, userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins from repository")
		return nil, fmt.Errorf("service: could not list check-ins: %w", err)
	}
	return checkIns, nil
}

// GetUserStats возвращает статистику check-in пользователя
func (s *checkInService) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "checkin",
			"method":  "GetUserStats",
			"user_id": userID,
		}).WithError(err).Error("Failed to get user stats from repository")
		return nil, fmt.Errorf("service: could not get user stats: %w", err)
	}
	return stats, nil
}

// GetActiveUsersCount возвращает число уникальных пользователей с check-in за окно статистики
func (s *checkInService) GetActiveUsersCount(ctx context.Context) (int, error) {
	window := time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute
	since := s.now().Add(-window).UTC()

	count, err := s.repo.CountActiveUsers(ctx, since)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "checkin",
			"method":  "GetActiveUsersCount",
		}).WithError(err).Error("Failed to count active users")
		return 0, fmt.Errorf("service: could not count active users: %w", err)
	}
	return count, nil
}
