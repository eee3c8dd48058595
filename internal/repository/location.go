package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/shenikar/geo_checkin/internal/service"
)

// nearbyMargin расширяет радиус индексного фильтра: PostGIS считает по сфероиду,
// сервис - по сфере, и расхождение не превышает 0.5%.
const nearbyMargin = 1.01

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{
		db: db,
	}
}

// execer - общий интерфейс пула и транзакции
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var (
	_ execer = (*pgxpool.Pool)(nil)
	_ execer = (pgx.Tx)(nil)
)

// UpsertLocation создает или полностью перезаписывает местоположение пользователя
func (r *LocationRepository) UpsertLocation(ctx context.Context, location *models.LocationRecord) error {
	return upsertLocation(ctx, r.db, location)
}

func upsertLocation(ctx context.Context, db execer, location *models.LocationRecord) error {
	query := `
		INSERT INTO user_locations (
			user_id, location,
			street_name, street_number, city, state, postal_code, country, formatted_address,
			updated_at
		)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			location = EXCLUDED.location,
			street_name = EXCLUDED.street_name,
			street_number = EXCLUDED.street_number,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			postal_code = EXCLUDED.postal_code,
			country = EXCLUDED.country,
			formatted_address = EXCLUDED.formatted_address,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := db.Exec(ctx, query,
		location.UserID,
		location.Longitude,
		location.Latitude,
		location.StreetName,
		location.StreetNumber,
		location.City,
		location.State,
		location.PostalCode,
		location.Country,
		location.FormattedAddress,
		location.UpdatedAt,
	)
	if err != nil {
		return wrapErr(err, "failed to upsert user location")
	}
	return nil
}

// FindNearby возвращает активных пользователей рядом с точкой, кроме вызывающего
func (r *LocationRepository) FindNearby(ctx context.Context, q models.NearbyQuery) ([]*models.NearbyCandidate, error) {
	query := `
		SELECT
			l.user_id,
			COALESCE(u.name, '') as display_name,
			u.avatar_url,
			ST_Y(l.location::geometry) as latitude,
			ST_X(l.location::geometry) as longitude,
			l.street_name,
			l.street_number,
			l.city,
			l.updated_at
		FROM user_locations l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE
			l.user_id <> $1
			AND l.updated_at >= $2
			AND ST_DWithin(
				l.location,
				ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography,
				$5
			);
	`
	rows, err := r.db.Query(ctx, query, q.CallerID, q.ActiveSince, q.Longitude, q.Latitude, q.RadiusMeters*nearbyMargin)
	if err != nil {
		return nil, wrapErr(err, "failed to find nearby users")
	}
	defer rows.Close()

	candidates := make([]*models.NearbyCandidate, 0)
	for rows.Next() {
		c := &models.NearbyCandidate{}
		err := rows.Scan(
			&c.UserID,
			&c.DisplayName,
			&c.AvatarURL,
			&c.Latitude,
			&c.Longitude,
			&c.StreetName,
			&c.StreetNumber,
			&c.City,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, wrapErr(err, "failed to scan nearby user row")
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "error nearby users iteration")
	}
	return candidates, nil
}
