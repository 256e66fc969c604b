package archive

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ironsheep/dotpro-mcp/internal/geo"
	"github.com/ironsheep/dotpro-mcp/internal/slice"
)

// ErrNotFound is returned when no slice has the requested id.
var ErrNotFound = errors.New("slice not found")

// DefaultListLimit bounds List when no positive limit is given.
const DefaultListLimit = 20

const pointBatchSize = 500

// Store persists sampled slices.
type Store struct {
	db *gorm.DB
}

// New wraps an open, migrated database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open opens the archive at dsn. See OpenDB.
func Open(dsn string, debug bool) (*Store, error) {
	db, err := OpenDB(dsn, debug)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save stores a slice sampled from source between from and to, and returns
// the new record without its points.
func (s *Store) Save(ctx context.Context, source string, from, to geo.Coordinate, points []slice.Point) (*SliceRecord, error) {
	from.ToDegrees()
	to.ToDegrees()

	rec := &SliceRecord{
		Source:        source,
		FromLongitude: from.Longitude,
		FromLatitude:  from.Latitude,
		ToLongitude:   to.Longitude,
		ToLatitude:    to.Latitude,
		PointCount:    len(points),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Points").Create(rec).Error; err != nil {
			return err
		}
		if len(points) == 0 {
			return nil
		}

		rows := make([]SlicePointRecord, len(points))
		for i, p := range points {
			rows[i] = SlicePointRecord{
				SliceRecordID: rec.ID,
				Sequence:      p.Index,
				X:             p.X,
				Y:             p.Y,
				Longitude:     p.Coordinate.Longitude,
				Latitude:      p.Coordinate.Latitude,
				Brightness:    p.Brightness,
				Temperature:   p.Temperature,
				Distance:      p.Distance,
			}
		}
		return tx.CreateInBatches(rows, pointBatchSize).Error
	})
	if err != nil {
		return nil, fmt.Errorf("save slice: %w", err)
	}

	return rec, nil
}

// List returns up to limit stored slices, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]SliceRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var recs []SliceRecord
	err := s.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list slices: %w", err)
	}
	return recs, nil
}

// Get returns the slice with the given id, without its points.
func (s *Store) Get(ctx context.Context, id uint) (*SliceRecord, error) {
	var rec SliceRecord
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("slice %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get slice %d: %w", id, err)
	}
	return &rec, nil
}

// Points returns the stored points of slice id in sampling order.
func (s *Store) Points(ctx context.Context, id uint) ([]slice.Point, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	var rows []SlicePointRecord
	err := s.db.WithContext(ctx).Where("slice_record_id = ?", id).Order("sequence").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load points of slice %d: %w", id, err)
	}

	points := make([]slice.Point, len(rows))
	for i, r := range rows {
		points[i] = slice.Point{
			Index:       r.Sequence,
			X:           r.X,
			Y:           r.Y,
			Coordinate:  geo.NewCoordinate(r.Longitude, r.Latitude),
			Brightness:  r.Brightness,
			Temperature: r.Temperature,
			Distance:    r.Distance,
		}
	}
	return points, nil
}
