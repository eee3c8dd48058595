package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/shenikar/geo_checkin/internal/service"
	"github.com/shenikar/geo_checkin/pkg/geo"
)

var (
	_ service.CheckInRepository  = (*MemoryStore)(nil)
	_ service.LocationRepository = (*MemoryStore)(nil)
)

// MemoryStore хранит check-in и местоположения в памяти процесса.
// Подходит для локальной разработки и тестов: данные теряются при перезапуске,
// а гарантия кулдауна действует только в пределах одного процесса.
type MemoryStore struct {
	mu        sync.RWMutex
	checkIns  map[string][]*models.CheckInRecord // по возрастанию checked_in_at
	locations map[string]*models.LocationRecord
	users     map[string]*models.User
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		checkIns:  make(map[string][]*models.CheckInRecord),
		locations: make(map[string]*models.LocationRecord),
		users:     make(map[string]*models.User),
	}
}

// PutUser сохраняет профиль пользователя, используемый в выдаче поиска рядом
func (m *MemoryStore) PutUser(user *models.User) error {
	if user == nil || user.ID == "" {
		return errors.New("user id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	u := *user
	m.users[user.ID] = &u
	return nil
}

type seedUser struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Instagram *string `json:"instagram"`
	Phone     *string `json:"phone"`
}

// SeedUsers загружает профили из JSON-массива. Без них display_name в выдаче
// поиска рядом пуст: в режиме памяти таблицы users нет.
func (m *MemoryStore) SeedUsers(r io.Reader) (int, error) {
	var users []seedUser
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return 0, fmt.Errorf("repository: could not decode users: %w", err)
	}
	for i, u := range users {
		err := m.PutUser(&models.User{
			ID:        u.ID,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
			Instagram: u.Instagram,
			Phone:     u.Phone,
		})
		if err != nil {
			return i, fmt.Errorf("repository: user #%d: %w", i, err)
		}
	}
	return len(users), nil
}

// SaveCheckIn проверяет кулдаун и пишет check-in вместе с местоположением под одной блокировкой
func (m *MemoryStore) SaveCheckIn(ctx context.Context, checkIn *models.CheckInRecord, cooldown time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.checkIns[checkIn.UserID]
	if n := len(history); n > 0 {
		if next := history[n-1].CheckedInAt.Add(cooldown); checkIn.CheckedInAt.Before(next) {
			return apperr.CooldownActive(next)
		}
	}

	stored := *checkIn
	m.checkIns[checkIn.UserID] = append(history, &stored)
	m.locations[checkIn.UserID] = checkIn.Location()
	return nil
}

func (m *MemoryStore) GetLastCheckIn(ctx context.Context, userID string) (*models.CheckInRecord, error) {
	checkIns, err := m.ListCheckIns(ctx, userID, 1)
	if err != nil || len(checkIns) == 0 {
		return nil, err
	}
	return checkIns[0], nil
}

func (m *MemoryStore) ListCheckIns(ctx context.Context, userID string, limit int) ([]*models.CheckInRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.checkIns[userID]
	result := make([]*models.CheckInRecord, 0, min(limit, len(history)))
	for i := len(history) - 1; i >= 0 && len(result) < limit; i-- {
		c := *history[i]
		result = append(result, &c)
	}
	return result, nil
}

func (m *MemoryStore) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.checkIns[userID]
	stats := &models.UserStats{TotalCheckIns: len(history)}
	places := make(map[string]struct{})
	for _, c := range history {
		switch {
		case c.City != nil:
			places[*c.City] = struct{}{}
		case c.FormattedAddress != nil:
			places[*c.FormattedAddress] = struct{}{}
		}
	}
	stats.PlacesVisited = len(places)
	if n := len(history); n > 0 {
		last := history[n-1].CheckedInAt
		stats.LastCheckedInAt = &last
	}
	return stats, nil
}

func (m *MemoryStore) CountActiveUsers(ctx context.Context, since time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, history := range m.checkIns {
		if n := len(history); n > 0 && !history[n-1].CheckedInAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStore) UpsertLocation(ctx context.Context, location *models.LocationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	l := *location
	m.locations[location.UserID] = &l
	return nil
}

func (m *MemoryStore) FindNearby(ctx context.Context, q models.NearbyQuery) ([]*models.NearbyCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	candidates := make([]*models.NearbyCandidate, 0)
	for userID, l := range m.locations {
		if userID == q.CallerID || l.UpdatedAt.Before(q.ActiveSince) {
			continue
		}
		if geo.DistanceMeters(q.Latitude, q.Longitude, l.Latitude, l.Longitude) > q.RadiusMeters*nearbyMargin {
			continue
		}
		c := &models.NearbyCandidate{
			UserID:       userID,
			Latitude:     l.Latitude,
			Longitude:    l.Longitude,
			StreetName:   l.StreetName,
			StreetNumber: l.StreetNumber,
			City:         l.City,
			UpdatedAt:    l.UpdatedAt,
		}
		if u, ok := m.users[userID]; ok {
			c.DisplayName = u.Name
			c.AvatarURL = u.AvatarURL
		}
		candidates = append(candidates, c)
	}

	// Порядок map случаен; сортируем для воспроизводимости
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].UserID < candidates[j].UserID })
	return candidates, nil
}
