// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// Storage keys. One JSON document per concern.
const (
	keyBookmarks     = "arxiv_bookmarks"
	keyHistory       = "arxiv_history"
	keySearchHistory = "arxiv_search_history"
	keyDarkMode      = "arxiv_dark_mode"
	keyCollections   = "arxiv_collections"
)

const (
	historyCap       = 100
	searchHistoryCap = 20
)

// Library is the user-facing persistence facade. Reads degrade to empty
// defaults and writes report success as a bool; underlying storage
// errors are logged, never returned, so a broken database leaves the
// application browsable.
type Library struct {
	store *Store
	log   *zap.Logger
	now   func() time.Time
}

// New opens the library at cfg.Path. A nil logger disables logging.
func New(cfg types.LibraryConfig, log *zap.Logger) (*Library, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{store: store, log: log, now: time.Now}, nil
}

// Close releases the underlying database.
func (l *Library) Close() error {
	return l.store.Close()
}

// readList unmarshals the JSON list stored under key. Missing keys and
// corrupt documents both yield an empty list.
func readList[T any](ctx context.Context, l *Library, key string) []T {
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		l.log.Warn("library read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		l.log.Warn("library document corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// writeList marshals items as JSON under key. Reports success.
func writeList[T any](ctx context.Context, l *Library, key string, items []T) bool {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		l.log.Warn("library marshal failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := l.store.Set(ctx, key, string(data)); err != nil {
		l.log.Warn("library write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Bookmarks returns saved papers, newest first.
func (l *Library) Bookmarks(ctx context.Context) []types.Bookmark {
	return readList[types.Bookmark](ctx, l, keyBookmarks)
}

// AddBookmark saves a paper. Returns false if the paper is already
// bookmarked or the write fails.
func (l *Library) AddBookmark(ctx context.Context, p types.Paper) bool {
	bookmarks := l.Bookmarks(ctx)
	for _, b := range bookmarks {
		if b.ID == p.ID {
			return false
		}
	}
	entry := types.Bookmark{Paper: p, SavedAt: l.now()}
	bookmarks = append([]types.Bookmark{entry}, bookmarks...)
	return writeList(ctx, l, keyBookmarks, bookmarks)
}

// RemoveBookmark removes the paper with the given ID. Removing an
// absent bookmark still succeeds.
func (l *Library) RemoveBookmark(ctx context.Context, paperID string) bool {
	bookmarks := l.Bookmarks(ctx)
	kept := bookmarks[:0]
	for _, b := range bookmarks {
		if b.ID != paperID {
			kept = append(kept, b)
		}
	}
	return writeList(ctx, l, keyBookmarks, kept)
}

// IsBookmarked reports whether the paper is saved.
func (l *Library) IsBookmarked(ctx context.Context, paperID string) bool {
	for _, b := range l.Bookmarks(ctx) {
		if b.ID == paperID {
			return true
		}
	}
	return false
}

// History returns viewed papers, most recent first.
func (l *Library) History(ctx context.Context) []types.HistoryEntry {
	return readList[types.HistoryEntry](ctx, l, keyHistory)
}

// AddToHistory records a paper view. Re-viewing moves the paper to the
// front; the list is capped at 100 entries.
func (l *Library) AddToHistory(ctx context.Context, p types.Paper) bool {
	history := l.History(ctx)
	kept := history[:0]
	for _, h := range history {
		if h.ID != p.ID {
			kept = append(kept, h)
		}
	}
	entry := types.HistoryEntry{Paper: p, ViewedAt: l.now()}
	kept = append([]types.HistoryEntry{entry}, kept...)
	if len(kept) > historyCap {
		kept = kept[:historyCap]
	}
	return writeList(ctx, l, keyHistory, kept)
}

// ClearHistory empties the viewing history.
func (l *Library) ClearHistory(ctx context.Context) bool {
	return writeList(ctx, l, keyHistory, []types.HistoryEntry{})
}

// SearchHistory returns recent searches, most recent first.
func (l *Library) SearchHistory(ctx context.Context) []types.SearchHistoryEntry {
	return readList[types.SearchHistoryEntry](ctx, l, keySearchHistory)
}

// AddSearchToHistory records a search. Repeating a search (same query
// and type, case-insensitive) replaces the old entry at the front with
// a fresh timestamp and result count. Blank queries are ignored; the
// list is capped at 20 entries.
func (l *Library) AddSearchToHistory(ctx context.Context, query string, searchType types.SearchType, resultCount int) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}

	history := l.SearchHistory(ctx)
	kept := history[:0]
	for _, h := range history {
		if !strings.EqualFold(h.Query, query) || h.SearchType != searchType {
			kept = append(kept, h)
		}
	}
	entry := types.SearchHistoryEntry{
		Query:       query,
		SearchType:  searchType,
		ResultCount: resultCount,
		Timestamp:   l.now().UnixMilli(),
	}
	kept = append([]types.SearchHistoryEntry{entry}, kept...)
	if len(kept) > searchHistoryCap {
		kept = kept[:searchHistoryCap]
	}
	return writeList(ctx, l, keySearchHistory, kept)
}

// RemoveSearchFromHistory deletes the entry with the given timestamp.
func (l *Library) RemoveSearchFromHistory(ctx context.Context, timestamp int64) bool {
	history := l.SearchHistory(ctx)
	kept := history[:0]
	for _, h := range history {
		if h.Timestamp != timestamp {
			kept = append(kept, h)
		}
	}
	return writeList(ctx, l, keySearchHistory, kept)
}

// ClearSearchHistory empties the search history.
func (l *Library) ClearSearchHistory(ctx context.Context) bool {
	return writeList(ctx, l, keySearchHistory, []types.SearchHistoryEntry{})
}

// DarkMode reports the dark-mode preference; default is off.
func (l *Library) DarkMode(ctx context.Context) bool {
	raw, ok, err := l.store.Get(ctx, keyDarkMode)
	if err != nil {
		l.log.Warn("library read failed", zap.String("key", keyDarkMode), zap.Error(err))
		return false
	}
	return ok && raw == "true"
}

// SetDarkMode stores the dark-mode preference.
func (l *Library) SetDarkMode(ctx context.Context, enabled bool) bool {
	value := "false"
	if enabled {
		value = "true"
	}
	if err := l.store.Set(ctx, keyDarkMode, value); err != nil {
		l.log.Warn("library write failed", zap.String("key", keyDarkMode), zap.Error(err))
		return false
	}
	return true
}

// Collections returns all collections in creation order.
func (l *Library) Collections(ctx context.Context) []types.Collection {
	return readList[types.Collection](ctx, l, keyCollections)
}

// CreateCollection creates an empty named collection and returns it.
// Returns nil when the write fails.
func (l *Library) CreateCollection(ctx context.Context, name string) *types.Collection {
	collections := l.Collections(ctx)
	c := types.Collection{
		ID:        uuid.NewString(),
		Name:      name,
		Papers:    []types.Paper{},
		CreatedAt: l.now(),
	}
	collections = append(collections, c)
	if !writeList(ctx, l, keyCollections, collections) {
		return nil
	}
	return &c
}

// AddToCollection adds a paper to a collection. Returns false when the
// collection does not exist or already holds the paper.
func (l *Library) AddToCollection(ctx context.Context, collectionID string, p types.Paper) bool {
	collections := l.Collections(ctx)
	for i := range collections {
		if collections[i].ID != collectionID {
			continue
		}
		for _, existing := range collections[i].Papers {
			if existing.ID == p.ID {
				return false
			}
		}
		collections[i].Papers = append(collections[i].Papers, p)
		return writeList(ctx, l, keyCollections, collections)
	}
	return false
}

// RemoveFromCollection removes a paper from a collection.
func (l *Library) RemoveFromCollection(ctx context.Context, collectionID, paperID string) bool {
	collections := l.Collections(ctx)
	for i := range collections {
		if collections[i].ID != collectionID {
			continue
		}
		kept := collections[i].Papers[:0]
		for _, p := range collections[i].Papers {
			if p.ID != paperID {
				kept = append(kept, p)
			}
		}
		collections[i].Papers = kept
		return writeList(ctx, l, keyCollections, collections)
	}
	return false
}

// DeleteCollection removes an entire collection.
func (l *Library) DeleteCollection(ctx context.Context, collectionID string) bool {
	collections := l.Collections(ctx)
	kept := collections[:0]
	found := false
	for _, c := range collections {
		if c.ID == collectionID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return false
	}
	return writeList(ctx, l, keyCollections, kept)
}
