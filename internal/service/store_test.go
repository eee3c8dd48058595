package service_test

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/config"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/shenikar/geo_checkin/internal/repository"
	"github.com/shenikar/geo_checkin/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock - управляемые часы для сценариев с кулдауном и окном присутствия
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type storeFixture struct {
	store     *repository.MemoryStore
	clock     *fakeClock
	checkIns  service.CheckInService
	proximity service.ProximityService
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
		CheckInCooldown:        5 * time.Minute,
		PresenceWindow:         5 * time.Minute,
		DefaultRadiusMeters:    1000,
		TimelineLimit:          50,
	}

	f := &storeFixture{
		store: repository.NewMemoryStore(),
		clock: &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.checkIns = service.NewCheckInService(f.store, logger, cfg, nil)
	f.proximity = service.NewProximityService(f.store, logger, cfg)
	service.SetClock(f.checkIns, f.clock.Now)
	service.SetClock(f.proximity, f.clock.Now)
	return f
}

var saoPaulo = models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}

func TestCheckIn_SecondWithinCooldownIsRejected(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()
	_, err := f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})
	require.NoError(t, err)
	first := f.clock.Now()

	// Действие
	f.clock.Advance(2 * time.Minute)
	_, err = f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})

	// Проверки
	require.ErrorIs(t, err, apperr.ErrCooldownActive)
	appErr := apperr.From(err)
	require.NotNil(t, appErr.NextAllowedAt)
	assert.Equal(t, first.Add(5*time.Minute), *appErr.NextAllowedAt)

	timeline, err := f.checkIns.ListCheckIns(ctx, "alice", 0)
	require.NoError(t, err)
	assert.Len(t, timeline, 1, "отклоненный check-in не попадает в журнал")
}

func TestCheckIn_AfterCooldownIsAccepted(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()
	_, err := f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})
	require.NoError(t, err)

	// Действие
	f.clock.Advance(5 * time.Minute)
	second, err := f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), second.CheckedInAt)

	stats, err := f.checkIns.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCheckIns)
}

func TestCheckIn_InvalidLatitudeChangesNothing(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()

	// Действие
	_, err := f.checkIns.SaveCheckIn(ctx, "alice", models.Coordinate{Latitude: 91, Longitude: 0}, models.Address{})

	// Проверки
	require.ErrorIs(t, err, apperr.ErrInvalidCoordinate)
	status, err := f.checkIns.GetCooldownStatus(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, status.CanCheckIn)
}

func TestCheckIn_ConcurrentAttemptsAcceptExactlyOne(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()
	const attempts = 16

	var accepted, cooldown atomic.Int32
	var wg sync.WaitGroup

	// Действие
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})
			switch apperr.CodeOf(err) {
			case "":
				accepted.Add(1)
			case apperr.CodeCooldownActive:
				cooldown.Add(1)
			}
		}()
	}
	wg.Wait()

	// Проверки
	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, int32(attempts-1), cooldown.Load())

	// После истечения кулдауна ровно одна следующая попытка проходит
	f.clock.Advance(5 * time.Minute)
	_, err := f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})
	require.NoError(t, err)
	_, err = f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})
	assert.ErrorIs(t, err, apperr.ErrCooldownActive)
}

func TestNearby_CheckedInUserIsVisibleAtZeroDistance(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()
	_, err := f.checkIns.SaveCheckIn(ctx, "bob", saoPaulo, models.Address{})
	require.NoError(t, err)

	// Действие
	f.clock.Advance(time.Minute)
	users, err := f.proximity.FindNearbyUsers(ctx, "alice", saoPaulo, nil)

	// Проверки
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].UserID)
	assert.InDelta(t, 0, users[0].DistanceMeters, 1e-6)
}

func TestNearby_StaleUserIsExcluded(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()
	_, err := f.checkIns.SaveCheckIn(ctx, "bob", saoPaulo, models.Address{})
	require.NoError(t, err)

	// Действие
	f.clock.Advance(10 * time.Minute)
	users, err := f.proximity.FindNearbyUsers(ctx, "alice", saoPaulo, nil)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestNearby_CallerIsNeverIncluded(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()
	_, err := f.checkIns.SaveCheckIn(ctx, "alice", saoPaulo, models.Address{})
	require.NoError(t, err)
	_, err = f.proximity.UpdateLocation(ctx, "bob", models.Coordinate{Latitude: -23.5510, Longitude: -46.6340}, models.Address{})
	require.NoError(t, err)

	// Действие
	users, err := f.proximity.FindNearbyUsers(ctx, "alice", saoPaulo, nil)

	// Проверки
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].UserID)
}

func TestNearby_ResultsSortedAndWithinRadius(t *testing.T) {
	// Подготовка
	f := newStoreFixture(t)
	ctx := context.Background()
	points := map[string]models.Coordinate{
		"far":    {Latitude: 0, Longitude: 0.004},
		"near":   {Latitude: 0, Longitude: 0.001},
		"nearer": {Latitude: 0, Longitude: 0.0005},
		"out":    {Latitude: 0, Longitude: 0.01},
	}
	for id, p := range points {
		_, err := f.proximity.UpdateLocation(ctx, id, p, models.Address{})
		require.NoError(t, err)
	}
	radius := 500.0

	// Действие
	users, err := f.proximity.FindNearbyUsers(ctx, "caller", models.Coordinate{}, &radius)

	// Проверки
	require.NoError(t, err)
	ids := make([]string, 0, len(users))
	for _, u := range users {
		assert.LessOrEqual(t, u.DistanceMeters, radius)
		ids = append(ids, u.UserID)
	}
	assert.Equal(t, []string{"nearer", "near", "far"}, ids)
}
