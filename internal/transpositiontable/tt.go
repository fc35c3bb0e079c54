//
// minishogi - 5x5 Shogi (Minishogi) engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable caches search results keyed by Zobrist
// hash. It is a plain map rather than the fixed-size, bit-packed table
// a full-size engine would use: a 5x5 game tree explored to the depths
// this engine searches never grows the map large enough for a
// replacement scheme or cache-line packing to pay for the complexity
// they would add.
package transpositiontable

import (
	. "github.com/frankkopp/minishogi/internal/types"
)

// Bound records whether a stored score is exact, or only a bound
// produced by an alpha or beta cutoff.
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

// Entry is one transposition table record.
type Entry struct {
	Depth    int
	Score    int
	Bound    Bound
	BestMove Move
	HasMove  bool
}

// Table is a depth-preferred transposition table, keyed by Zobrist
// hash.
type Table struct {
	m map[uint64]Entry
}

// New returns an empty table.
func New() *Table {
	return &Table{m: make(map[uint64]Entry)}
}

// Clear empties the table without shrinking its backing storage.
func (t *Table) Clear() {
	for k := range t.m {
		delete(t.m, k)
	}
}

// Store records entry under hash, unless an existing entry there was
// searched to a greater depth.
func (t *Table) Store(hash uint64, entry Entry) {
	if existing, ok := t.m[hash]; ok && existing.Depth > entry.Depth {
		return
	}
	t.m[hash] = entry
}

// Probe returns the entry stored for hash, if any.
func (t *Table) Probe(hash uint64) (Entry, bool) {
	entry, ok := t.m[hash]
	return entry, ok
}
