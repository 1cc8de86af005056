package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/errors"
)

// StoredLayout is a persisted generation run: the input configuration, the
// produced geometry, and bookkeeping. IDs are server-assigned UUIDs; the
// geometry itself stays fully deterministic per config hash.
type StoredLayout struct {
	ID         string         `json:"id" bson:"_id"`
	Name       string         `json:"name,omitempty" bson:"name,omitempty"`
	ConfigHash string         `json:"config_hash" bson:"config_hash"`
	Config     anchor.Config  `json:"config" bson:"config"`
	Layout     *anchor.Result `json:"layout" bson:"layout"`
	Warnings   []string       `json:"warnings,omitempty" bson:"warnings,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
}

// LayoutSummary is the listing view of a stored layout, without geometry.
type LayoutSummary struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name,omitempty" bson:"name,omitempty"`
	ConfigHash     string    `json:"config_hash" bson:"config_hash"`
	AnchorCount    int       `json:"anchor_count" bson:"anchor_count"`
	StabilityScore float64   `json:"stability_score" bson:"stability_score"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// NewLayoutID returns a fresh server-side layout id.
func NewLayoutID() string {
	return uuid.NewString()
}

// LayoutStore persists generated layouts.
type LayoutStore interface {
	// Insert stores a layout. The layout's ID must be set.
	Insert(ctx context.Context, layout *StoredLayout) error

	// Get returns a stored layout by id, or a LAYOUT_NOT_FOUND error.
	Get(ctx context.Context, id string) (*StoredLayout, error)

	// List returns summaries of the most recent layouts, newest first.
	List(ctx context.Context, limit int) ([]LayoutSummary, error)

	// Close releases the store's resources.
	Close(ctx context.Context) error
}

// MemoryStore is a process-local LayoutStore for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]*StoredLayout
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[string]*StoredLayout)}
}

// Insert stores a layout.
func (s *MemoryStore) Insert(ctx context.Context, layout *StoredLayout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts[layout.ID] = layout
	return nil
}

// Get returns a stored layout by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*StoredLayout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	layout, ok := s.layouts[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "layout not found: %s", id)
	}
	return layout, nil
}

// List returns summaries of the most recent layouts, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]LayoutSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]LayoutSummary, 0, len(s.layouts))
	for _, l := range s.layouts {
		summaries = append(summaries, summarize(l))
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func summarize(l *StoredLayout) LayoutSummary {
	sum := LayoutSummary{
		ID:         l.ID,
		Name:       l.Name,
		ConfigHash: l.ConfigHash,
		CreatedAt:  l.CreatedAt,
	}
	if l.Layout != nil {
		sum.AnchorCount = l.Layout.Stats.TotalAnchors
		sum.StabilityScore = l.Layout.Quality.StabilityScore
	}
	return sum
}

// Ensure MemoryStore implements LayoutStore.
var _ LayoutStore = (*MemoryStore)(nil)
