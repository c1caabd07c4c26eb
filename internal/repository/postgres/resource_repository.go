package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/domain/repository"
	"github.com/citystrata-service/internal/pkg/errors"
	"github.com/citystrata-service/internal/schema"
)

type resourceRepository struct {
	db       *sqlx.DB
	logger   *zap.Logger
	cityCode int
}

func NewResourceRepository(db *DB, cityCode int) repository.ResourceRepository {
	return &resourceRepository{
		db:       db.DB,
		logger:   db.logger,
		cityCode: cityCode,
	}
}

func (r *resourceRepository) GetCollection(
	ctx context.Context,
	kind domain.ResourceKind,
	filters map[string]string,
) (*domain.FeatureCollection, error) {
	s, err := schema.Describe(kind)
	if err != nil {
		r.logger.Error("Schema registry misconfigured", zap.String("kind", kind.String()), zap.Error(err))
		return nil, err
	}

	pred, err := schema.Compile(s, filters, r.cityCode)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s",
		selectList(s), s.Table, pred.Where(), s.OrderBy,
	)

	rows, err := r.db.QueryContext(ctx, query, pred.Args...)
	if err != nil {
		r.logger.Error("Failed to fetch resource collection",
			zap.String("kind", kind.String()),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}
	defer rows.Close()

	features := []domain.Feature{}
	for rows.Next() {
		feature, err := scanFeature(s, rows, false)
		if err != nil {
			r.logger.Error("Failed to scan resource row",
				zap.String("kind", kind.String()),
				zap.Error(err),
			)
			return nil, errors.ErrStoreUnavailable
		}
		features = append(features, *feature)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Resource collection read failed mid-stream",
			zap.String("kind", kind.String()),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}

	collection := domain.NewFeatureCollection(features)
	return &collection, nil
}

func (r *resourceRepository) GetByKey(
	ctx context.Context,
	kind domain.ResourceKind,
	key string,
) (*domain.Feature, error) {
	s, err := schema.Describe(kind)
	if err != nil {
		r.logger.Error("Schema registry misconfigured", zap.String("kind", kind.String()), zap.Error(err))
		return nil, err
	}
	if s.KeyColumn == "" {
		return nil, errors.InvalidFilter("resource kind %s does not support direct lookup", kind)
	}

	pred, err := schema.Compile(s, nil, r.cityCode)
	if err != nil {
		return nil, err
	}

	if s.KeyType == schema.FieldInt {
		code, convErr := strconv.Atoi(key)
		if convErr != nil {
			return nil, errors.InvalidFilter("%s key expects an integer, got %q", kind, key)
		}
		pred.Append(s.KeyColumn+" = $%d", code)
	} else {
		pred.Append(s.KeyColumn+" = $%d", key)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s",
		selectList(s), s.Table, pred.Where(),
	)

	rows, err := r.db.QueryContext(ctx, query, pred.Args...)
	if err != nil {
		r.logger.Error("Failed to fetch resource by key",
			zap.String("kind", kind.String()),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			r.logger.Error("Resource lookup failed", zap.String("kind", kind.String()), zap.Error(err))
			return nil, errors.ErrStoreUnavailable
		}
		return nil, errors.NotFound("%s %s not found", kind, key)
	}

	feature, err := scanFeature(s, rows, false)
	if err != nil {
		r.logger.Error("Failed to scan resource row",
			zap.String("kind", kind.String()),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}

	return feature, nil
}

func (r *resourceRepository) GetNearby(
	ctx context.Context,
	kind domain.ResourceKind,
	lat, lon float64,
	radiusMeters, limit int,
) (*domain.FeatureCollection, error) {
	s, err := schema.Describe(kind)
	if err != nil {
		r.logger.Error("Schema registry misconfigured", zap.String("kind", kind.String()), zap.Error(err))
		return nil, err
	}
	if !s.Nearby {
		return nil, errors.InvalidFilter("resource kind %s does not support proximity search", kind)
	}

	// Distance and the within-radius test are fully delegated to PostGIS
	// geography; planar math on raw lat/lon drifts at city-scale radii.
	closedFilter := ""
	if s.Closable {
		closedFilter = " AND permanently_closed = false"
	}
	query := fmt.Sprintf(`
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography AS geom
		)
		SELECT %s,
			ST_Distance(%s::geography, point.geom) AS distance_meters
		FROM %s, point
		WHERE city_code = $3%s
		  AND ST_DWithin(%s::geography, point.geom, $4)
		ORDER BY distance_meters
		LIMIT $5
	`, selectList(s), s.GeometryColumn, s.Table, closedFilter, s.GeometryColumn)

	rows, err := r.db.QueryContext(ctx, query, lat, lon, r.cityCode, radiusMeters, limit)
	if err != nil {
		r.logger.Error("Failed to search nearby resources",
			zap.String("kind", kind.String()),
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Int("radius_meters", radiusMeters),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}
	defer rows.Close()

	features := []domain.Feature{}
	for rows.Next() {
		feature, err := scanFeature(s, rows, true)
		if err != nil {
			r.logger.Error("Failed to scan nearby row",
				zap.String("kind", kind.String()),
				zap.Error(err),
			)
			return nil, errors.ErrStoreUnavailable
		}
		features = append(features, *feature)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Nearby read failed mid-stream", zap.String("kind", kind.String()), zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	collection := domain.NewFeatureCollection(features)
	return &collection, nil
}

func (r *resourceRepository) GetFacilityTypes(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT facility_type
		FROM city_facilities
		WHERE city_code = $1
		ORDER BY facility_type
	`

	var types []string
	if err := r.db.SelectContext(ctx, &types, query, r.cityCode); err != nil {
		r.logger.Error("Failed to list facility types", zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	return types, nil
}

// selectList renders the kind's property projection plus the geometry,
// pre-converted to GeoJSON text by the store.
func selectList(s *schema.ResourceSchema) string {
	cols := make([]string, 0, len(s.Columns)+1)
	for _, c := range s.Columns {
		cols = append(cols, c.Expr)
	}
	cols = append(cols, fmt.Sprintf("ST_AsGeoJSON(%s)::text AS geometry", s.GeometryColumn))
	return strings.Join(cols, ", ")
}

// scanFeature materializes one row into a Feature. Nullable store values
// stay null in the properties; they are never coerced to zero or dropped.
func scanFeature(s *schema.ResourceSchema, rows *sql.Rows, withDistance bool) (*domain.Feature, error) {
	holders := make([]interface{}, len(s.Columns))
	dest := make([]interface{}, 0, len(s.Columns)+2)
	for i, c := range s.Columns {
		switch c.Kind {
		case schema.ColInt:
			holders[i] = &sql.NullInt64{}
		case schema.ColFloat:
			holders[i] = &sql.NullFloat64{}
		case schema.ColBool:
			holders[i] = &sql.NullBool{}
		case schema.ColPropsJSON:
			holders[i] = &[]byte{}
		default:
			holders[i] = &sql.NullString{}
		}
		dest = append(dest, holders[i])
	}

	var geomRaw []byte
	dest = append(dest, &geomRaw)

	var distance float64
	if withDistance {
		dest = append(dest, &distance)
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	properties := make(map[string]interface{}, len(s.Columns)+1)
	for i, c := range s.Columns {
		switch c.Kind {
		case schema.ColInt:
			h := holders[i].(*sql.NullInt64)
			if h.Valid {
				properties[c.Property] = h.Int64
			} else {
				properties[c.Property] = nil
			}
		case schema.ColFloat:
			h := holders[i].(*sql.NullFloat64)
			if h.Valid {
				properties[c.Property] = h.Float64
			} else {
				properties[c.Property] = nil
			}
		case schema.ColBool:
			h := holders[i].(*sql.NullBool)
			if h.Valid {
				properties[c.Property] = h.Bool
			} else {
				properties[c.Property] = nil
			}
		case schema.ColPropsJSON:
			raw := *holders[i].(*[]byte)
			if len(raw) > 0 {
				merged := make(map[string]interface{})
				if err := json.Unmarshal(raw, &merged); err != nil {
					return nil, fmt.Errorf("merge properties column: %w", err)
				}
				for k, v := range merged {
					properties[k] = v
				}
			}
		default:
			h := holders[i].(*sql.NullString)
			if h.Valid {
				properties[c.Property] = h.String
			} else {
				properties[c.Property] = nil
			}
		}
	}
	if withDistance {
		properties["distance_meters"] = distance
	}

	geometry, err := domain.ParseGeometry(geomRaw)
	if err != nil {
		return nil, err
	}

	feature := domain.NewFeature(geometry, properties)
	return &feature, nil
}
