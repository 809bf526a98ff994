// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bag

import (
	"reflect"

	"github.com/bitmark-inc/venued/fault"
)

// one stored value and the static type recorded at insertion
type entry struct {
	value   interface{} // always a pointer to the stored value
	valueOf reflect.Type
}

// Bag - a keyed store of values of mixed static types
//
// no internal locking: the caller must hold exclusive access for any
// mutating call, shared access is sufficient for queries
type Bag[K comparable] struct {
	entries map[K]entry
}

// New - create an empty bag
func New[K comparable]() *Bag[K] {
	return &Bag[K]{
		entries: make(map[K]entry),
	}
}

// typeOf - the recorded identity of a static type parameter
//
// taken from the type parameter itself, not from the dynamic type of
// a value, so interface types keep their own identity
func typeOf[V any]() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}

// Insert - store value under key recording the static type V
//
// keys are supplied by an identifier generator that never repeats, so
// a duplicate insert is a caller bug and aborts the process
func Insert[K comparable, V any](b *Bag[K], key K, value V) {
	if _, ok := b.entries[key]; ok {
		fault.Panicf("bag.Insert: duplicate key: %v", key)
	}
	b.entries[key] = entry{
		value:   &value,
		valueOf: typeOf[V](),
	}
}

// Get - typed access to a stored value
//
// the returned pointer aliases the stored value, so it also provides
// mutable access (there is no separate getMut)
func Get[V any, K comparable](b *Bag[K], key K) (*V, error) {
	e, ok := b.entries[key]
	if !ok {
		return nil, fault.KeyNotFound
	}
	if typeOf[V]() != e.valueOf {
		return nil, fault.WrongValueType
	}
	return e.value.(*V), nil
}

// Remove - remove a stored value returning ownership to the caller
//
// same type contract as Get; used only by deconstruction paths
func Remove[V any, K comparable](b *Bag[K], key K) (V, error) {
	var zero V
	e, ok := b.entries[key]
	if !ok {
		return zero, fault.KeyNotFound
	}
	if typeOf[V]() != e.valueOf {
		return zero, fault.WrongValueType
	}
	delete(b.entries, key)
	return *e.value.(*V), nil
}

// Contains - non-failing existence and type check
func Contains[V any, K comparable](b *Bag[K], key K) bool {
	e, ok := b.entries[key]
	return ok && typeOf[V]() == e.valueOf
}

// Has - existence check regardless of stored type
func (b *Bag[K]) Has(key K) bool {
	_, ok := b.entries[key]
	return ok
}

// Len - number of stored values
func (b *Bag[K]) Len() int {
	return len(b.entries)
}

// IsEmpty - check if nothing is stored
func (b *Bag[K]) IsEmpty() bool {
	return 0 == len(b.entries)
}
