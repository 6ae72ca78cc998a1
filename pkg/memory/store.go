package memory

import (
	"context"
	"reflect"
	"sync"
)

type key struct {
	table  string
	column string
}

// Store is a concurrency-safe set of values keyed by table and column.
type Store struct {
	mu   sync.RWMutex
	sets map[key]map[any]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{sets: make(map[key]map[any]struct{})}
}

// Add records values under table/column.
// Nothing is stored if any value has a non-comparable type.
func (s *Store) Add(table, column string, values ...any) error {
	for _, v := range values {
		if !hashable(v) {
			return ErrUnhashableValue
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{table, column}
	set, ok := s.sets[k]
	if !ok {
		set = make(map[any]struct{}, len(values))
		s.sets[k] = set
	}
	for _, v := range values {
		set[v] = struct{}{}
	}
	return nil
}

// Remove deletes values from table/column. Missing values are ignored.
func (s *Store) Remove(table, column string, values ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{table, column}
	set, ok := s.sets[k]
	if !ok {
		return
	}
	for _, v := range values {
		if hashable(v) {
			delete(set, v)
		}
	}
	if len(set) == 0 {
		delete(s.sets, k)
	}
}

// Len returns the number of values stored under table/column.
func (s *Store) Len(table, column string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sets[key{table, column}])
}

// Exists implements rules.Lookup.
// Values of non-comparable types yield ErrUnhashableValue.
func (s *Store) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !hashable(value) {
		return false, ErrUnhashableValue
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sets[key{table, column}][value]
	return ok, nil
}

func hashable(v any) bool {
	if v == nil {
		return true
	}
	// checks dynamic values too: struct{ V any }{[]int{1}} has a comparable type but cannot be hashed
	return reflect.ValueOf(v).Comparable()
}
