package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/domain/repository"
	"github.com/citystrata-service/internal/pkg/errors"
)

type evacuationRepository struct {
	db       *sqlx.DB
	logger   *zap.Logger
	cityCode int
}

func NewEvacuationRepository(db *DB, cityCode int) repository.EvacuationRepository {
	return &evacuationRepository{
		db:       db.DB,
		logger:   db.logger,
		cityCode: cityCode,
	}
}

func (r *evacuationRepository) GetAreaCapacities(ctx context.Context, areas []int) ([]domain.AreaCapacityRow, error) {
	query := `
		SELECT
			area_code,
			COUNT(*) AS listing_count,
			COALESCE(SUM(person_capacity), 0)::int AS capacity
		FROM lodging_listings
		WHERE city_code = $1
		  AND area_code = ANY($2::int[])
		GROUP BY area_code
	`

	var result []domain.AreaCapacityRow
	if err := r.db.SelectContext(ctx, &result, query, r.cityCode, pq.Array(areas)); err != nil {
		r.logger.Error("Failed to aggregate lodging capacity by area",
			zap.Ints("areas", areas),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}

	return result, nil
}

func (r *evacuationRepository) GetAreaInstitutionCounts(ctx context.Context, areas []int) ([]domain.AreaInstitutionRow, error) {
	query := `
		SELECT
			area_code,
			COUNT(*) AS institutions_count
		FROM educational_institutions
		WHERE city_code = $1
		  AND area_code = ANY($2::int[])
		GROUP BY area_code
	`

	var result []domain.AreaInstitutionRow
	if err := r.db.SelectContext(ctx, &result, query, r.cityCode, pq.Array(areas)); err != nil {
		r.logger.Error("Failed to aggregate institution counts by area",
			zap.Ints("areas", areas),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}

	return result, nil
}

func (r *evacuationRepository) GetAreaSummary(ctx context.Context, areaCode int) (*domain.AreaSummary, error) {
	// Per-table scalar subqueries instead of one joined aggregate: joining
	// four child tables multiplies rows, which would inflate the capacity sum.
	query := `
		SELECT
			sa.area_code,
			COALESCE(sa.area_m2, 0) AS area_m2,
			(SELECT COUNT(*) FROM educational_institutions ei
				WHERE ei.city_code = sa.city_code AND ei.area_code = sa.area_code) AS institutions_count,
			(SELECT COUNT(*) FROM lodging_listings ll
				WHERE ll.city_code = sa.city_code AND ll.area_code = sa.area_code) AS lodging_count,
			(SELECT COUNT(*) FROM restaurants rst
				WHERE rst.city_code = sa.city_code AND rst.area_code = sa.area_code) AS restaurants_count,
			(SELECT COUNT(*) FROM coffee_shops cs
				WHERE cs.city_code = sa.city_code AND cs.area_code = sa.area_code) AS cafes_count,
			(SELECT COALESCE(SUM(ll.person_capacity), 0)::int FROM lodging_listings ll
				WHERE ll.city_code = sa.city_code AND ll.area_code = sa.area_code) AS total_lodging_capacity
		FROM statistical_areas sa
		WHERE sa.city_code = $1 AND sa.area_code = $2
	`

	var summary domain.AreaSummary
	err := r.db.QueryRowContext(ctx, query, r.cityCode, areaCode).Scan(
		&summary.AreaCode,
		&summary.AreaM2,
		&summary.InstitutionsCount,
		&summary.LodgingCount,
		&summary.RestaurantsCount,
		&summary.CafesCount,
		&summary.TotalLodgingCapacity,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("statistical area %d not found", areaCode)
	}
	if err != nil {
		r.logger.Error("Failed to build area summary",
			zap.Int("area_code", areaCode),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}

	return &summary, nil
}
