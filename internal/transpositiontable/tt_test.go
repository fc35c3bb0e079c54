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

package transpositiontable

import (
	"os"
	"testing"

	logging2 "github.com/op/go-logging"

	. "github.com/frankkopp/minishogi/internal/types"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/stretchr/testify/assert"
)

var logTest *logging2.Logger

// Setup the tests.
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestStoreAndProbeRoundtrip(t *testing.T) {
	logTest.Debug("Starting store/probe roundtrip test")
	tbl := New()
	entry := Entry{Depth: 4, Score: 123, Bound: Exact, BestMove: NewDropMove(SquareOf(2, 2), Pawn), HasMove: true}
	tbl.Store(0xdeadbeef, entry)

	got, ok := tbl.Probe(0xdeadbeef)
	assert.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestProbeMissReturnsFalse(t *testing.T) {
	tbl := New()
	_, ok := tbl.Probe(1)
	assert.False(t, ok)
}

func TestStoreKeepsDeeperEntry(t *testing.T) {
	tbl := New()
	tbl.Store(1, Entry{Depth: 5, Score: 10, Bound: Exact})
	tbl.Store(1, Entry{Depth: 2, Score: 99, Bound: Exact})

	got, ok := tbl.Probe(1)
	assert.True(t, ok)
	assert.Equal(t, 5, got.Depth)
	assert.Equal(t, 10, got.Score)
}

func TestStoreOverwritesWithEqualOrGreaterDepth(t *testing.T) {
	tbl := New()
	tbl.Store(1, Entry{Depth: 2, Score: 10, Bound: Exact})
	tbl.Store(1, Entry{Depth: 3, Score: 99, Bound: Exact})

	got, ok := tbl.Probe(1)
	assert.True(t, ok)
	assert.Equal(t, 3, got.Depth)
	assert.Equal(t, 99, got.Score)
}

func TestClearEmptiesTable(t *testing.T) {
	tbl := New()
	tbl.Store(1, Entry{Depth: 1, Score: 1, Bound: Exact})
	tbl.Store(2, Entry{Depth: 1, Score: 1, Bound: Exact})
	tbl.Clear()

	_, ok := tbl.Probe(1)
	assert.False(t, ok)
	_, ok = tbl.Probe(2)
	assert.False(t, ok)
}
