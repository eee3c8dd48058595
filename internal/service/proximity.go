package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/config"
	"github.com/shenikar/geo_checkin/internal/metrics"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/shenikar/geo_checkin/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=proximity.go -destination=mocks/mock_proximity.go -package=mocks

// LocationRepository определяет контракт для работы с текущими местоположениями пользователей
type LocationRepository interface {
	UpsertLocation(ctx context.Context, location *models.LocationRecord) error
	// FindNearby возвращает активных пользователей, кроме вызывающего, в окрестности точки.
	// Точная фильтрация по расстоянию выполняется сервисом.
	FindNearby(ctx context.Context, query models.NearbyQuery) ([]*models.NearbyCandidate, error)
}

// ProximityService определяет контракт поиска пользователей рядом
type ProximityService interface {
	FindNearbyUsers(ctx context.Context, callerID string, coord models.Coordinate, radiusMeters *float64) ([]*models.NearbyUser, error)
	UpdateLocation(ctx context.Context, userID string, coord models.Coordinate, address models.Address) (*models.LocationRecord, error)
}

type proximityService struct {
	repo   LocationRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewProximityService(repo LocationRepository, logger *logrus.Logger, cfg *config.Config) ProximityService {
	return &proximityService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// FindNearbyUsers находит пользователей в радиусе от точки, обновлявших местоположение
// в пределах окна присутствия. Результат отсортирован по возрастанию расстояния.
func (s *proximityService) FindNearbyUsers(ctx context.Context, callerID string, coord models.Coordinate, radiusMeters *float64) ([]*models.NearbyUser, error) {
	if callerID == "" {
		metrics.NearbyQueriesTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, apperr.ErrUnauthenticated
	}
	if err := ValidateCoordinate(coord); err != nil {
		metrics.NearbyQueriesTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}
	radius, err := ResolveRadius(radiusMeters, s.cfg.DefaultRadiusMeters)
	if err != nil {
		metrics.NearbyQueriesTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "FindNearbyUsers",
		"user_id": callerID,
		"radius":  radius,
	})
	log.Debug("Searching nearby users")

	candidates, err := s.repo.FindNearby(ctx, models.NearbyQuery{
		CallerID:     callerID,
		Latitude:     coord.Latitude,
		Longitude:    coord.Longitude,
		RadiusMeters: radius,
		ActiveSince:  s.now().Add(-s.cfg.PresenceWindow).UTC(),
	})
	if err != nil {
		log.WithError(err).Error("Failed to find nearby candidates in repository")
		metrics.NearbyQueriesTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("service: could not find nearby users: %w", err)
	}

	users := filterNearby(candidates, callerID, coord, radius)

	metrics.NearbyQueriesTotal.WithLabelValues(metrics.ResultOK).Inc()
	metrics.NearbyResultSize.Observe(float64(len(users)))
	log.WithField("count", len(users)).Debug("Nearby users found")
	return users, nil
}

// filterNearby считает точное расстояние, отбрасывает лишних и сортирует.
// Вызывающий исключается и здесь, независимо от хранилища.
func filterNearby(candidates []*models.NearbyCandidate, callerID string, coord models.Coordinate, radius float64) []*models.NearbyUser {
	users := make([]*models.NearbyUser, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == callerID {
			continue
		}
		distance := geo.DistanceMeters(coord.Latitude, coord.Longitude, c.Latitude, c.Longitude)
		if distance > radius {
			continue
		}
		users = append(users, &models.NearbyUser{
			UserID:             c.UserID,
			DisplayName:        c.DisplayName,
			AvatarURL:          c.AvatarURL,
			StreetName:         c.StreetName,
			StreetNumber:       c.StreetNumber,
			City:               c.City,
			DistanceMeters:     distance,
			LastLocationUpdate: c.UpdatedAt,
		})
	}

	sort.SliceStable(users, func(i, j int) bool {
		if users[i].DistanceMeters != users[j].DistanceMeters {
			return users[i].DistanceMeters < users[j].DistanceMeters
		}
		return users[i].UserID < users[j].UserID
	})
	return users
}

// UpdateLocation обновляет текущее местоположение пользователя без check-in
func (s *proximityService) UpdateLocation(ctx context.Context, userID string, coord models.Coordinate, address models.Address) (*models.LocationRecord, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	if err := ValidateCoordinate(coord); err != nil {
		return nil, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "UpdateLocation",
		"user_id": userID,
	})

	location := &models.LocationRecord{
		UserID:    userID,
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Address:   SanitizeAddress(address),
		UpdatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.repo.UpsertLocation(ctx, location); err != nil {
		log.WithError(err).Error("Failed to upsert location in repository")
		return nil, fmt.Errorf("service: could not update location: %w", err)
	}

	log.Debug("Location updated")
	return location, nil
}
