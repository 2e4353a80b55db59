package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"mapapi/internal/model"
	"mapapi/internal/repository"
)

var (
	ErrInvalidFilename   = errors.New("invalid filename")
	ErrNotFound          = errors.New("document not found")
	ErrMalformedDocument = errors.New("document is not valid JSON")
	ErrDataRequired      = errors.New("data is required")
	ErrInvalidData       = errors.New("data is not valid JSON")
)

// modifiedLayout matches JavaScript's Date.toISOString output.
const modifiedLayout = "2006-01-02T15:04:05.000Z"

var tracer = otel.Tracer("mapapi/internal/service")

// ListError is returned by a strict listing when one document could not be described.
type ListError struct {
	Filename string
	Err      error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("describe %s: %v", e.Filename, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// DocumentOptions configures the listing behaviour of the document service.
type DocumentOptions struct {
	// Strict makes a single unreadable document fail the whole listing.
	Strict bool
	// Concurrency bounds the per-file fan-out; zero or less means unbounded.
	Concurrency int
	Metrics     *Metrics
}

// DocumentService defines the use cases for JSON map documents.
type DocumentService interface {
	// Save writes data pretty-printed under filename, overwriting any existing document.
	Save(ctx context.Context, filename string, data json.RawMessage) error

	// Load returns the stored document verbatim.
	Load(ctx context.Context, filename string) (json.RawMessage, error)

	// Delete removes a document. Deleting a missing document is an error.
	Delete(ctx context.Context, filename string) error

	// Exists reports whether a document is present. Absence is not an error.
	Exists(ctx context.Context, filename string) (bool, error)

	// List describes every document in directory order.
	List(ctx context.Context) ([]model.DocumentInfo, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	repo repository.DocumentRepository
	opts DocumentOptions
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(repo repository.DocumentRepository, opts DocumentOptions) DocumentService {
	return &documentService{repo: repo, opts: opts}
}

func (s *documentService) Save(ctx context.Context, filename string, data json.RawMessage) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrDataRequired
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	if err := s.repo.Write(ctx, filename, buf.Bytes()); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (s *documentService) Load(ctx context.Context, filename string) (json.RawMessage, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	b, err := s.repo.Read(ctx, filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, filename)
	}
	return json.RawMessage(b), nil
}

func (s *documentService) Delete(ctx context.Context, filename string) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return fmt.Errorf("remove document: %w", err)
	}
	return nil
}

func (s *documentService) Exists(ctx context.Context, filename string) (bool, error) {
	if err := ValidateFilename(filename); err != nil {
		return false, err
	}
	if _, err := s.repo.Stat(ctx, filename); err != nil {
		return false, nil
	}
	return true, nil
}

// List reads, parses and stats every document concurrently. Rows keep the
// directory order. In strict mode the first failure cancels the rest and
// no rows are returned; otherwise failed rows carry an error annotation.
func (s *documentService) List(ctx context.Context) ([]model.DocumentInfo, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.List")
	defer span.End()

	names, err := s.repo.Names(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read directory")
		return nil, fmt.Errorf("list documents: %w", err)
	}
	span.SetAttributes(
		attribute.Int("documents.count", len(names)),
		attribute.Bool("documents.strict", s.opts.Strict),
	)

	out := make([]model.DocumentInfo, len(names))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	if s.opts.Concurrency > 0 {
		g.SetLimit(s.opts.Concurrency)
	}
	for i, name := range names {
		g.Go(func() error {
			info, err := s.describe(gctx, name)
			if err != nil {
				failed.Add(1)
				if s.opts.Strict {
					return &ListError{Filename: name, Err: err}
				}
				out[i] = model.DocumentInfo{Filename: name, Error: rowError(err)}
				return nil
			}
			out[i] = info
			return nil
		})
	}

	err = g.Wait()
	s.opts.Metrics.listed(len(names), int(failed.Load()))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "describe documents")
		return nil, err
	}
	return out, nil
}

func (s *documentService) describe(ctx context.Context, name string) (model.DocumentInfo, error) {
	b, err := s.repo.Read(ctx, name)
	if err != nil {
		return model.DocumentInfo{}, fmt.Errorf("read: %w", err)
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return model.DocumentInfo{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	st, err := s.repo.Stat(ctx, name)
	if err != nil {
		return model.DocumentInfo{}, fmt.Errorf("stat: %w", err)
	}

	return model.DocumentInfo{
		Filename: name,
		Modified: st.ModTime.UTC().Format(modifiedLayout),
		CPCount:  cpCount(doc),
	}, nil
}

// cpCount is the length of the top-level "cP" member when it is an array.
func cpCount(doc any) int {
	obj, ok := doc.(map[string]any)
	if !ok {
		return 0
	}
	arr, ok := obj["cP"].([]any)
	if !ok {
		return 0
	}
	return len(arr)
}

func rowError(err error) string {
	switch {
	case errors.Is(err, ErrMalformedDocument):
		return "invalid JSON"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unreadable"
	}
}
