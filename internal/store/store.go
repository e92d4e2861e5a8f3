package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ErrUnchanged is returned by an Update mutation that decided not to
// modify anything. Update swallows it and skips the save.
var ErrUnchanged = errors.New("store: unchanged")

// Store is the single source of truth for the shop. Mutations are
// serialized and flushed to the backend before they become visible.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	logger  *zap.Logger
	data    Collections
}

func New(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger}
}

// Load replaces the in-memory state with what the backend holds. A
// missing or malformed key yields an empty collection; a backend
// failure is returned.
func (s *Store) Load(ctx context.Context) error {
	var next Collections

	decoders := map[string]func(raw string) error{
		KeyPatients:     func(raw string) error { return decodeInto(raw, &next.Patients) },
		KeyOrders:       func(raw string) error { return decodeInto(raw, &next.Orders) },
		KeyInvoices:     func(raw string) error { return decodeInto(raw, &next.Invoices) },
		KeyAppointments: func(raw string) error { return decodeInto(raw, &next.Appointments) },
		KeyMessages:     func(raw string) error { return decodeInto(raw, &next.Messages) },
	}

	for _, key := range Keys {
		raw, ok, err := s.backend.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
			s.logger.Warn("discarding malformed collection", zap.String("key", key))
			continue
		}
		if err := decoders[key](raw); err != nil {
			s.logger.Warn("discarding undecodable collection", zap.String("key", key), zap.Error(err))
		}
	}

	s.mu.Lock()
	s.data = next
	s.mu.Unlock()

	s.logger.Info("store loaded",
		zap.Int("patients", len(next.Patients)),
		zap.Int("orders", len(next.Orders)),
		zap.Int("invoices", len(next.Invoices)),
		zap.Int("appointments", len(next.Appointments)),
		zap.Int("messages", len(next.Messages)),
	)
	return nil
}

// Save writes all five collections. There is no cross-key transaction:
// a failure midway leaves the earlier keys already written.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()
	return s.write(ctx, data)
}

// Update applies fn to a copy of the state, persists the copy and only
// then makes it current. Calls are serialized.
func (s *Store) Update(ctx context.Context, fn func(c *Collections) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.Clone()
	if err := fn(&working); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return nil
		}
		return err
	}

	if err := s.write(ctx, working); err != nil {
		s.logger.Error("persist failed, change discarded", zap.Error(err))
		return err
	}
	s.data = working
	return nil
}

// View runs fn with read access to the current state. fn must not keep
// or modify the slices.
func (s *Store) View(fn func(c Collections)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// Snapshot returns an independent copy of the current state.
func (s *Store) Snapshot() Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *Store) write(ctx context.Context, data Collections) error {
	values := map[string]any{
		KeyPatients:     nonNil(data.Patients),
		KeyOrders:       nonNil(data.Orders),
		KeyInvoices:     nonNil(data.Invoices),
		KeyAppointments: nonNil(data.Appointments),
		KeyMessages:     nonNil(data.Messages),
	}

	for _, key := range Keys {
		b, err := json.Marshal(values[key])
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		if err := s.backend.Set(ctx, key, string(b)); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// nonNil makes empty collections serialize as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// decodeInto only assigns dst when the whole array decodes.
func decodeInto[T any](raw string, dst *[]T) error {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return err
	}
	*dst = items
	return nil
}
