package customization

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/character-customizer/internal/domain/character"
	"github.com/preston-bernstein/character-customizer/internal/logging"
	"github.com/preston-bernstein/character-customizer/internal/metrics"
)

// Operation names used in logs and metrics.
const (
	OpCreate    = "create"
	OpGender    = "gender"
	OpEyes      = "eyes"
	OpHair      = "hair"
	OpSkintone  = "skintone"
	OpExtras    = "extras"
	OpFacePaint = "facepaint"
	OpOpen      = "open"
	OpLoad      = "load"
	OpDocument  = "document"
	OpList      = "list"
)

// ErrInvalidValue is returned for values a character field cannot hold.
var ErrInvalidValue = errors.New("invalid field value")

// Store defines the contract for persisting character documents.
type Store interface {
	Create(ctx context.Context, id character.Identity) (bool, error)
	Load(ctx context.Context, id character.Identity) ([]byte, error)
	Document(ctx context.Context, id character.Identity) (character.Document, error)
	Patch(ctx context.Context, id character.Identity, fields ...character.Field) error
	List(ctx context.Context) ([]string, error)
	Dir() string
	Ready() error
}

// Opener shows a directory to the user.
type Opener interface {
	Open(ctx context.Context, dir string) error
}

// Service coordinates character operations using a Store.
type Service struct {
	store   Store
	opener  Opener
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a Service. opener, logger and recorder may be nil.
func NewService(store Store, opener Opener, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		opener:  opener,
		logger:  logger,
		metrics: recorder,
	}
}

// Create seeds a character from the template; created is false when it already existed.
func (s *Service) Create(ctx context.Context, id character.Identity) (bool, error) {
	start := time.Now()
	logger := s.loggerFor(ctx, id)
	logging.Info(logger, "character create started")

	created, err := s.store.Create(ctx, id)
	s.metrics.RecordCharacterOp(OpCreate, time.Since(start), err)
	if err != nil {
		logging.Error(logger, "character create failed", err)
		return false, err
	}
	if created {
		logging.Info(logger, "character created")
	} else {
		logging.Warn(logger, "character already present, skipping creation")
	}
	return created, nil
}

// Ready reports whether new characters can be seeded.
func (s *Service) Ready() error {
	return s.store.Ready()
}

// Character returns the raw document.
func (s *Service) Character(ctx context.Context, id character.Identity) ([]byte, error) {
	return read(s, OpLoad, s.loggerFor(ctx, id), func() ([]byte, error) {
		return s.store.Load(ctx, id)
	})
}

// Document returns the cosmetic fields of a character.
func (s *Service) Document(ctx context.Context, id character.Identity) (character.Document, error) {
	return read(s, OpDocument, s.loggerFor(ctx, id), func() (character.Document, error) {
		return s.store.Document(ctx, id)
	})
}

// Characters lists stored character names.
func (s *Service) Characters(ctx context.Context) ([]string, error) {
	return read(s, OpList, logging.FromContext(ctx, s.logger), func() ([]string, error) {
		return s.store.List(ctx)
	})
}

// SetGender writes the gender code into both PlayerGUID and PlayerModel.
func (s *Service) SetGender(ctx context.Context, id character.Identity, gender uint8) error {
	return s.patch(ctx, OpGender, id, character.GenderFields(gender)...)
}

// SetEyeColor writes EyeColor.
func (s *Service) SetEyeColor(ctx context.Context, id character.Identity, color int64) error {
	if color < 0 {
		return fmt.Errorf("%w: eye color %d", ErrInvalidValue, color)
	}
	return s.patch(ctx, OpEyes, id, character.NumberField(character.KeyEyeColor, color))
}

// SetHair writes the hairstyle and hair color together.
func (s *Service) SetHair(ctx context.Context, id character.Identity, style string, color int64) error {
	if color < 0 {
		return fmt.Errorf("%w: hair color %d", ErrInvalidValue, color)
	}
	return s.patch(ctx, OpHair, id, character.HairFields(style, color)...)
}

// SetSkintone writes Skintone.
func (s *Service) SetSkintone(ctx context.Context, id character.Identity, tone string) error {
	return s.patch(ctx, OpSkintone, id, character.StringField(character.KeySkintone, tone))
}

// SetExtras writes the extras tag (beards, wings).
func (s *Service) SetExtras(ctx context.Context, id character.Identity, extra string) error {
	return s.patch(ctx, OpExtras, id, character.StringField(character.KeyExtras, extra))
}

// SetFacePaint writes FacePaint.
func (s *Service) SetFacePaint(ctx context.Context, id character.Identity, paint string) error {
	return s.patch(ctx, OpFacePaint, id, character.StringField(character.KeyFacePaint, paint))
}

// OpenFolder shows the characters directory in the file browser.
func (s *Service) OpenFolder(ctx context.Context) error {
	logger := logging.FromContext(ctx, s.logger)
	if s.opener == nil {
		return errors.New("explorer not configured")
	}
	start := time.Now()
	err := s.opener.Open(ctx, s.store.Dir())
	s.metrics.RecordCharacterOp(OpOpen, time.Since(start), err)
	if err != nil {
		logging.Error(logger, "open characters folder failed", err, slog.String("dir", s.store.Dir()))
		return err
	}
	logging.Info(logger, "opened characters folder", slog.String("dir", s.store.Dir()))
	return nil
}

func (s *Service) patch(ctx context.Context, op string, id character.Identity, fields ...character.Field) error {
	start := time.Now()
	logger := s.loggerFor(ctx, id)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldOperation, op))
	}

	logging.Info(logger, "character update started")
	err := s.store.Patch(ctx, id, fields...)
	duration := time.Since(start)
	s.metrics.RecordCharacterOp(op, duration, err)
	if err != nil {
		logging.Warn(logger, "character update failed", "error", err)
		return err
	}
	logging.Info(logger, "character updated", slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))
	return nil
}

// read times and records a store lookup, logging at debug.
func read[T any](s *Service, op string, logger *slog.Logger, load func() (T, error)) (T, error) {
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldOperation, op))
		logger.Debug("character read started")
	}
	start := time.Now()
	out, err := load()
	duration := time.Since(start)
	s.metrics.RecordCharacterOp(op, duration, err)
	if err != nil {
		logging.Warn(logger, "character read failed", "error", err)
		var zero T
		return zero, err
	}
	if logger != nil {
		logger.Debug("character read", slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))
	}
	return out, nil
}

func (s *Service) loggerFor(ctx context.Context, id character.Identity) *slog.Logger {
	logger := logging.FromContext(ctx, s.logger)
	if logger == nil {
		return nil
	}
	return logger.With(slog.String(logging.FieldCharacter, id.Name()))
}
