package journal

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/rustyeddy/tradejournal/pkg/id"
)

// Cache is the in-memory copy of the journal that views read from. It
// loads the full trade list from its Store on first use and drops it after
// every successful create, update or delete, so the next read reflects the
// store again. All writes go through the Cache so it cannot go stale.
type Cache struct {
	store Store
	log   *slog.Logger
	now   func() time.Time

	mu     sync.Mutex
	trades []Trade // newest entry first
	loaded bool
}

func NewCache(store Store, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	return &Cache{store: store, log: log, now: time.Now}
}

// Trades returns a copy of every trade, newest entry first.
func (c *Cache) Trades(ctx context.Context) ([]Trade, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return nil, err
	}
	out := make([]Trade, len(c.trades))
	for i, t := range c.trades {
		out[i] = t.clone()
	}
	return out, nil
}

// Between returns cached trades entered within [start, end), oldest first.
func (c *Cache) Between(ctx context.Context, start, end time.Time) ([]Trade, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return nil, err
	}
	var out []Trade
	for i := len(c.trades) - 1; i >= 0; i-- {
		t := c.trades[i]
		if !t.EntryTime.Before(start) && t.EntryTime.Before(end) {
			out = append(out, t.clone())
		}
	}
	return out, nil
}

func (c *Cache) Get(ctx context.Context, tradeID string) (Trade, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return Trade{}, err
	}
	for _, t := range c.trades {
		if t.ID == tradeID {
			return t.clone(), nil
		}
	}
	return Trade{}, fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
}

// Create stamps t, assigns an ID when it has none and persists it. The
// stored trade is returned.
func (c *Cache) Create(ctx context.Context, t Trade) (Trade, error) {
	if err := t.Stamp(); err != nil {
		return Trade{}, err
	}
	now := c.now().UTC()
	if t.ID == "" {
		t.ID = id.New()
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Create(ctx, t); err != nil {
		return Trade{}, err
	}
	c.invalidate("create", t.ID)
	return t, nil
}

// Update restamps t and writes it over the stored trade with the same ID.
func (c *Cache) Update(ctx context.Context, t Trade) (Trade, error) {
	if t.ID == "" {
		return Trade{}, fmt.Errorf("update trade: missing id")
	}
	if err := t.Stamp(); err != nil {
		return Trade{}, err
	}
	t.UpdatedAt = c.now().UTC()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Update(ctx, t); err != nil {
		return Trade{}, err
	}
	c.invalidate("update", t.ID)
	return t, nil
}

func (c *Cache) Delete(ctx context.Context, tradeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(ctx, tradeID); err != nil {
		return err
	}
	c.invalidate("delete", tradeID)
	return nil
}

// Invalidate forces the next read to reload from the store.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidate("manual", "")
}

func (c *Cache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *Cache) Close() error {
	c.Invalidate()
	return c.store.Close()
}

func (c *Cache) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	trades, err := c.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load trades: %w", err)
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].EntryTime.After(trades[j].EntryTime)
	})
	c.trades = trades
	c.loaded = true
	c.log.Debug("trade cache loaded", "trades", len(trades))
	return nil
}

func (c *Cache) invalidate(reason, tradeID string) {
	c.trades = nil
	c.loaded = false
	c.log.Debug("trade cache invalidated", "reason", reason, "trade_id", tradeID)
}
