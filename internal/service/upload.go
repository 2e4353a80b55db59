package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"mapapi/internal/model"
	"mapapi/internal/storage"
)

var (
	ErrReaderNil       = errors.New("reader is nil")
	ErrUnsupportedType = errors.New("only images are allowed")
)

// MapURLPrefix is the public path under which stored map images are served.
const MapURLPrefix = "/maps/"

const mapNameLayout = "20060102_150405"

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// IsAllowedImageType reports whether contentType is accepted for map uploads.
func IsAllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}

// MapFilename builds the stored name for an upload received at t:
// YYYYMMDD_HHMMSS followed by the original extension.
func MapFilename(t time.Time, originalFilename string) string {
	return t.Format(mapNameLayout) + filepath.Ext(originalFilename)
}

// MapService stores uploaded map images.
type MapService interface {
	// Upload validates the declared content type and stores r under a timestamp name.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string) (*model.UploadResult, error)
}

type mapService struct {
	store   storage.Storage
	loc     *time.Location
	now     func() time.Time
	metrics *Metrics
}

// NewMapService constructs a MapService. Names are generated from the wall clock in loc.
func NewMapService(store storage.Storage, loc *time.Location, metrics *Metrics) MapService {
	if loc == nil {
		loc = time.Local
	}
	return &mapService{store: store, loc: loc, now: time.Now, metrics: metrics}
}

func (s *mapService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string) (*model.UploadResult, error) {
	ctx, span := tracer.Start(ctx, "MapService.Upload")
	defer span.End()

	if r == nil {
		return nil, ErrReaderNil
	}
	if !IsAllowedImageType(contentType) {
		s.metrics.upload(UploadRejected)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}

	key := MapFilename(s.now().In(s.loc), originalFilename)
	span.SetAttributes(
		attribute.String("map.key", key),
		attribute.String("map.content_type", contentType),
	)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{ContentType: contentType})
	if err != nil {
		s.metrics.upload(UploadFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "store map")
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	s.metrics.upload(UploadStored)

	return &model.UploadResult{
		Success: true,
		MapFile: MapURLPrefix + info.Key,
		Scaled:  false,
	}, nil
}
