package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
	repo "github.com/pogojump/pogojump-api/internal/domain/repository"
	"github.com/pogojump/pogojump-api/internal/metrics"
)

// DocumentStore runs every operation as one load, mutate, save cycle over the
// single persisted document. With Serialize set, cycles never interleave.
type DocumentStore struct {
	Repo      repo.DocumentRepository
	Logger    *logrus.Logger
	Metrics   *metrics.Metrics
	Serialize bool

	mu sync.Mutex
}

func NewDocumentStore(r repo.DocumentRepository, logger *logrus.Logger, m *metrics.Metrics, serialize bool) *DocumentStore {
	return &DocumentStore{Repo: r, Logger: logger, Metrics: m, Serialize: serialize}
}

// Load returns a freshly decoded document, seeding the repository on first use.
// A corrupt or unreadable document is an error; it is never replaced.
func (s *DocumentStore) Load(ctx context.Context) (*entity.Document, error) {
	start := time.Now()
	b, err := s.Repo.Read(ctx)
	s.Metrics.ObserveStore("load", start, err)
	if errors.Is(err, repo.ErrDocumentNotFound) {
		doc := entity.SeedDocument()
		if err := s.Save(ctx, doc); err != nil {
			return nil, err
		}
		if s.Logger != nil {
			s.Logger.Info("seed document created")
		}
		return doc, nil
	}
	if err != nil {
		return nil, s.fail("load", err)
	}
	doc, err := entity.DecodeDocument(b)
	if err != nil {
		return nil, s.fail("decode", err)
	}
	return doc, nil
}

// Save replaces the persisted document.
func (s *DocumentStore) Save(ctx context.Context, doc *entity.Document) error {
	b, err := doc.Encode()
	if err != nil {
		return s.fail("encode", err)
	}
	start := time.Now()
	err = s.Repo.Write(ctx, b)
	s.Metrics.ObserveStore("save", start, err)
	if err != nil {
		return s.fail("save", err)
	}
	return nil
}

// View loads the document and hands it to fn. Nothing is saved.
func (s *DocumentStore) View(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.lock()
	defer s.unlock()
	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update loads the document, applies fn and saves once if fn returns nil.
// When fn fails its mutations are dropped with the in-memory copy.
func (s *DocumentStore) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.lock()
	defer s.unlock()
	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.Save(ctx, doc)
}

// Ping checks that the document can be loaded.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.View(ctx, func(*entity.Document) error { return nil })
}

func (s *DocumentStore) lock() {
	if s.Serialize {
		s.mu.Lock()
	}
}

func (s *DocumentStore) unlock() {
	if s.Serialize {
		s.mu.Unlock()
	}
}

func (s *DocumentStore) fail(op string, err error) error {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("op", op).Error("document store failure")
	}
	return StorageFailure(err)
}
