/*
Package settings manages the configurable compensation rates.

PURPOSE:
  The oncall engine takes rates as an explicit parameter and accepts any
  non-negative number; the bounds policy lives HERE, at the settings
  surface, the same place the dashboard's settings form enforced it.

BOUNDS:
  Both rates must fall within [25, 200] currency units per day. Updates
  outside that range are rejected before anything is persisted.

STORES:
  Store is the persistence interface. Two implementations:
  - MemoryStore (this package): tests and dev servers
  - store/sqlite: durable storage for a deployed dashboard backend

SEE ALSO:
  - oncall/types.go: RateConfig consumed by the engine
  - store/sqlite/sqlite.go: SQLite-backed Store
*/
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lonelydev/caloohpay/oncall"
)

// =============================================================================
// RATE SETTINGS
// =============================================================================

// Rate bounds enforced on updates. The engine itself never re-validates.
const (
	MinRate = 25.0
	MaxRate = 200.0
)

// ErrRateOutOfRange is returned when an updated rate falls outside
// [MinRate, MaxRate].
var ErrRateOutOfRange = errors.New("rate out of range")

// RateSettings is the persisted rate configuration.
type RateSettings struct {
	WeekdayRate float64   `json:"weekday_rate"`
	WeekendRate float64   `json:"weekend_rate"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Default returns the rates used before anyone has saved a configuration.
func Default() RateSettings {
	return RateSettings{WeekdayRate: 50, WeekendRate: 75}
}

// Validate checks both rates against the allowed range.
func (s RateSettings) Validate() error {
	if s.WeekdayRate < MinRate || s.WeekdayRate > MaxRate {
		return &RateError{Field: "weekday_rate", Value: s.WeekdayRate}
	}
	if s.WeekendRate < MinRate || s.WeekendRate > MaxRate {
		return &RateError{Field: "weekend_rate", Value: s.WeekendRate}
	}
	return nil
}

// Rates converts the settings into the engine's rate configuration.
func (s RateSettings) Rates() oncall.RateConfig {
	return oncall.NewRateConfig(s.WeekdayRate, s.WeekendRate)
}

// RateError reports which rate violated the bounds.
type RateError struct {
	Field string
	Value float64
}

func (e *RateError) Error() string {
	return fmt.Sprintf("%s %.2f outside allowed range [%.0f, %.0f]",
		e.Field, e.Value, MinRate, MaxRate)
}

func (e *RateError) Unwrap() error { return ErrRateOutOfRange }

// IsRateError returns true if the error is a bounds violation, as
// opposed to a storage failure.
func IsRateError(err error) bool {
	return errors.Is(err, ErrRateOutOfRange)
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store persists the rate configuration.
type Store interface {
	// Get returns the current settings, or Default() when none were
	// ever saved.
	Get(ctx context.Context) (RateSettings, error)

	// Save validates and persists new settings.
	Save(ctx context.Context, s RateSettings) error
}

// =============================================================================
// IN-MEMORY STORE - For tests and dev servers
// =============================================================================

// MemoryStore keeps settings in memory. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	current *RateSettings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (RateSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return Default(), nil
	}
	return *m.current, nil
}

func (m *MemoryStore) Save(ctx context.Context, s RateSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &s
	return nil
}

var _ Store = (*MemoryStore)(nil)
