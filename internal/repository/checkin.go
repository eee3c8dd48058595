package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/shenikar/geo_checkin/internal/service"
)

type CheckInRepository struct {
	db *pgxpool.Pool
}

func NewCheckInRepository(db *pgxpool.Pool) service.CheckInRepository {
	return &CheckInRepository{
		db: db,
	}
}

// SaveCheckIn сохраняет check-in и местоположение в одной транзакции.
// Advisory-блокировка по user_id сериализует параллельные check-in одного пользователя,
// поэтому проверка кулдауна и запись выполняются как один атомарный шаг.
func (r *CheckInRepository) SaveCheckIn(ctx context.Context, checkIn *models.CheckInRecord, cooldown time.Duration) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return wrapErr(err, "failed to begin check-in transaction")
	}
	// После Commit откат ничего не делает
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0));`, checkIn.UserID); err != nil {
		return wrapErr(err, "failed to lock user for check-in")
	}

	var lastCheckedInAt time.Time
	err = tx.QueryRow(ctx, `
		SELECT checked_in_at
		FROM check_ins
		WHERE user_id = $1
		ORDER BY checked_in_at DESC
		LIMIT 1;
	`, checkIn.UserID).Scan(&lastCheckedInAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return wrapErr(err, "failed to get last check-in")
	default:
		if next := lastCheckedInAt.Add(cooldown); checkIn.CheckedInAt.Before(next) {
			return apperr.CooldownActive(next)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO check_ins (
			id, user_id, location,
			street_name, street_number, city, state, postal_code, country, formatted_address,
			checked_in_at
		)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		checkIn.ID,
		checkIn.UserID,
		checkIn.Longitude,
		checkIn.Latitude,
		checkIn.StreetName,
		checkIn.StreetNumber,
		checkIn.City,
		checkIn.State,
		checkIn.PostalCode,
		checkIn.Country,
		checkIn.FormattedAddress,
		checkIn.CheckedInAt,
	)
	if err != nil {
		return wrapErr(err, "failed to insert check-in")
	}

	if err := upsertLocation(ctx, tx, checkIn.Location()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr(err, "failed to commit check-in")
	}
	return nil
}

// GetLastCheckIn возвращает последний check-in пользователя или nil
func (r *CheckInRepository) GetLastCheckIn(ctx context.Context, userID string) (*models.CheckInRecord, error) {
	checkIns, err := r.ListCheckIns(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(checkIns) == 0 {
		return nil, nil
	}
	return checkIns[0], nil
}

// ListCheckIns возвращает check-in пользователя от новых к старым
func (r *CheckInRepository) ListCheckIns(ctx context.Context, userID string, limit int) ([]*models.CheckInRecord, error) {
	query := `
		SELECT
			id,
			user_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			street_name,
			street_number,
			city,
			state,
			postal_code,
			country,
			formatted_address,
			checked_in_at
		FROM check_ins
		WHERE user_id = $1
		ORDER BY checked_in_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, wrapErr(err, "failed to list check-ins")
	}
	defer rows.Close()

	checkIns := make([]*models.CheckInRecord, 0)
	for rows.Next() {
		checkIn := &models.CheckInRecord{}
		err := rows.Scan(
			&checkIn.ID,
			&checkIn.UserID,
			&checkIn.Latitude,
			&checkIn.Longitude,
			&checkIn.StreetName,
			&checkIn.StreetNumber,
			&checkIn.City,
			&checkIn.State,
			&checkIn.PostalCode,
			&checkIn.Country,
			&checkIn.FormattedAddress,
			&checkIn.CheckedInAt,
		)
		if err != nil {
			return nil, wrapErr(err, "failed to scan check-in row")
		}
		checkIns = append(checkIns, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "error check-in list iteration")
	}
	return checkIns, nil
}

// GetUserStats считает check-in и уникальные места пользователя
func (r *CheckInRepository) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT COALESCE(city, formatted_address)),
			MAX(checked_in_at)
		FROM check_ins
		WHERE user_id = $1;
	`
	stats := &models.UserStats{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&stats.TotalCheckIns, &stats.PlacesVisited, &stats.LastCheckedInAt)
	if err != nil {
		return nil, wrapErr(err, "failed to get user stats")
	}
	return stats, nil
}

// CountActiveUsers возвращает количество уникальных пользователей, делавших check-in с момента since
func (r *CheckInRepository) CountActiveUsers(ctx context.Context, since time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM check_ins
		WHERE checked_in_at >= $1;
	`
	var count int
	err := r.db.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, wrapErr(err, "failed to count active users")
	}
	return count, nil
}
