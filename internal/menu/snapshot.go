package menu

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
)

// Snapshot is a point-in-time, read-only copy of the catalog.
type Snapshot struct {
	Items      []models.MenuItem
	CapturedAt time.Time
}

// Categories returns the distinct categories present, lower-cased, in
// catalog order of first appearance.
func (s Snapshot) Categories() []string {
	seen := map[string]struct{}{}
	var categories []string
	for _, item := range s.Items {
		category := strings.ToLower(strings.TrimSpace(item.Category))
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	return categories
}

// HasCategory reports whether the snapshot knows the given category,
// compared case-insensitively.
func (s Snapshot) HasCategory(category string) bool {
	want := strings.ToLower(strings.TrimSpace(category))
	for _, got := range s.Categories() {
		if got == want {
			return true
		}
	}
	return false
}

type catalogLister interface {
	List(ctx context.Context) ([]models.MenuItem, error)
}

// SnapshotCache holds a time-bounded copy of the catalog so the intent
// pipeline does not hit the store on every transcript. Staleness is
// evaluated lazily on Get; there is no background refresh.
type SnapshotCache struct {
	store catalogLister
	ttl   time.Duration
	now   func() time.Time

	mu   sync.Mutex
	snap *Snapshot
}

// NewSnapshotCache builds an empty cache around the given store. A nil
// clock falls back to time.Now.
func NewSnapshotCache(store catalogLister, ttl time.Duration, now func() time.Time) *SnapshotCache {
	if now == nil {
		now = time.Now
	}
	return &SnapshotCache{store: store, ttl: ttl, now: now}
}

// Get returns a fresh snapshot, fetching from the store when the cached
// one is missing or older than the freshness window. A store failure is a
// hard failure: the stale snapshot is never served in its place.
func (c *SnapshotCache) Get(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.snap != nil && now.Sub(c.snap.CapturedAt) <= c.ttl {
		return *c.snap, nil
	}

	items, err := c.store.List(ctx)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching menu catalog")
	}

	snap := Snapshot{Items: items, CapturedAt: now}
	c.snap = &snap
	return snap, nil
}

// Invalidate drops the cached snapshot so the next Get refetches.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
}
