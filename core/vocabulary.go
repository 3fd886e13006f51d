// SPDX-License-Identifier: MIT
//
// File: vocabulary.go
// Role: Bidirectional name↔id dictionary used for nodes, node types and edge types.
// Policy:
//   - Both views are exported so loaders can hand over whatever they parsed;
//     Consistent() reports whether the two views agree.
//   - The builder treats type vocabularies as opaque values and never mutates them.

package core

import (
	"fmt"
	"maps"
	"slices"
)

// Index is the set of integer kinds a Vocabulary can map names to.
type Index interface {
	~uint16 | ~uint32
}

// Vocabulary maps names to dense ids and back.
//
// Map is the name → id view; Names is the id → name view where the slice
// index is the id. A well-formed vocabulary has len(Map) == len(Names) and
// Map[Names[i]] == i for every i.
type Vocabulary[T Index] struct {
	Map   map[string]T `msgpack:"map" yaml:"map"`
	Names []string     `msgpack:"names" yaml:"names"`
}

// NewVocabulary assigns ids 0..len(names)-1 to names in order.
// A repeated name returns ErrDuplicateName; more names than T can address
// returns ErrVocabularyOverflow.
// Complexity: O(n) time and space.
func NewVocabulary[T Index](names []string) (Vocabulary[T], error) {
	if capacity := uint64(^T(0)) + 1; uint64(len(names)) > capacity {
		return Vocabulary[T]{}, fmt.Errorf("NewVocabulary: %d names, at most %d ids: %w", len(names), capacity, ErrVocabularyOverflow)
	}
	v := Vocabulary[T]{
		Map:   make(map[string]T, len(names)),
		Names: make([]string, 0, len(names)),
	}
	for i, name := range names {
		if prev, ok := v.Map[name]; ok {
			return Vocabulary[T]{}, fmt.Errorf("NewVocabulary: %q at %d and %d: %w", name, prev, i, ErrDuplicateName)
		}
		v.Map[name] = T(i)
		v.Names = append(v.Names, name)
	}

	return v, nil
}

// Len returns the number of names in the id → name view.
func (v Vocabulary[T]) Len() int { return len(v.Names) }

// ID returns the id for name.
func (v Vocabulary[T]) ID(name string) (T, bool) {
	id, ok := v.Map[name]
	return id, ok
}

// Name returns the name for id.
func (v Vocabulary[T]) Name(id T) (string, bool) {
	if int(id) >= len(v.Names) {
		return "", false
	}
	return v.Names[id], true
}

// Consistent reports whether both views have equal cardinality and agree.
// Complexity: O(n).
func (v Vocabulary[T]) Consistent() bool {
	if len(v.Map) != len(v.Names) {
		return false
	}
	for i, name := range v.Names {
		if id, ok := v.Map[name]; !ok || int(id) != i {
			return false
		}
	}

	return true
}

// Clone returns a deep copy that shares no memory with v.
func (v Vocabulary[T]) Clone() Vocabulary[T] {
	return Vocabulary[T]{Map: maps.Clone(v.Map), Names: slices.Clone(v.Names)}
}

// cloneVocab deep-copies an optional vocabulary.
func cloneVocab[T Index](v *Vocabulary[T]) *Vocabulary[T] {
	if v == nil {
		return nil
	}
	c := v.Clone()
	return &c
}
