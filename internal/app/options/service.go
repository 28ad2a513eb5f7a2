package options

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/character-customizer/internal/catalog"
	domaincatalog "github.com/preston-bernstein/character-customizer/internal/domain/catalog"
	"github.com/preston-bernstein/character-customizer/internal/logging"
	"github.com/preston-bernstein/character-customizer/internal/metrics"
)

// ErrMissingFilter is returned when a filtered listing is called without its filter values.
var ErrMissingFilter = errors.New("missing catalog filter")

// Catalog is the read side of the cosmetic options database.
type Catalog interface {
	EyeColors(ctx context.Context) ([]domaincatalog.EyeColor, error)
	HairColors(ctx context.Context) ([]domaincatalog.HairColor, error)
	FacePaints(ctx context.Context) ([]domaincatalog.FacePaint, error)
	Hairs(ctx context.Context, gender string) ([]domaincatalog.Hair, error)
	Extras(ctx context.Context, gender, species string) ([]domaincatalog.Extra, error)
	Available() error
}

// Service lists cosmetic options with logging and metrics around each query.
type Service struct {
	catalog Catalog
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(c Catalog, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{catalog: c, logger: logger, metrics: recorder}
}

// Ready reports whether the catalog can be queried.
func (s *Service) Ready() error {
	return s.catalog.Available()
}

// EyeColors lists every eye color.
func (s *Service) EyeColors(ctx context.Context) ([]domaincatalog.EyeColor, error) {
	return observe(ctx, s, catalog.TableEyeColor, func() ([]domaincatalog.EyeColor, error) {
		return s.catalog.EyeColors(ctx)
	})
}

// HairColors lists every hair color.
func (s *Service) HairColors(ctx context.Context) ([]domaincatalog.HairColor, error) {
	return observe(ctx, s, catalog.TableHairColor, func() ([]domaincatalog.HairColor, error) {
		return s.catalog.HairColors(ctx)
	})
}

// FacePaints lists every face paint.
func (s *Service) FacePaints(ctx context.Context) ([]domaincatalog.FacePaint, error) {
	return observe(ctx, s, catalog.TableFacePaint, func() ([]domaincatalog.FacePaint, error) {
		return s.catalog.FacePaints(ctx)
	})
}

// Hairs lists hairstyles for gender.
func (s *Service) Hairs(ctx context.Context, gender string) ([]domaincatalog.Hair, error) {
	gender = strings.TrimSpace(gender)
	if gender == "" {
		return nil, errors.Join(ErrMissingFilter, errors.New("gender required"))
	}
	return observe(ctx, s, catalog.TableHair, func() ([]domaincatalog.Hair, error) {
		return s.catalog.Hairs(ctx, gender)
	})
}

// Extras lists add-ons for a gender and species.
func (s *Service) Extras(ctx context.Context, gender, species string) ([]domaincatalog.Extra, error) {
	gender, species = strings.TrimSpace(gender), strings.TrimSpace(species)
	if gender == "" || species == "" {
		return nil, errors.Join(ErrMissingFilter, errors.New("gender and species required"))
	}
	return observe(ctx, s, catalog.TableExtras, func() ([]domaincatalog.Extra, error) {
		return s.catalog.Extras(ctx, gender, species)
	})
}

func observe[T any](ctx context.Context, s *Service, table string, query func() ([]T, error)) ([]T, error) {
	start := time.Now()
	rows, err := query()
	duration := time.Since(start)
	s.metrics.RecordCatalogQuery(table, len(rows), duration, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Error(logger, "catalog query failed", err, slog.String(logging.FieldTable, table))
		return nil, err
	}
	if logger != nil {
		logger.Debug("catalog query",
			slog.String(logging.FieldTable, table),
			slog.Int(logging.FieldCount, len(rows)),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	}
	return rows, nil
}
