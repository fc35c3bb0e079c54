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

package search

import (
	"bytes"
	"os"
	"strings"
	"testing"

	logging2 "github.com/op/go-logging"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/position"
	. "github.com/frankkopp/minishogi/internal/types"
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

func TestTerminalScoreImprovesWithDistanceFromRoot(t *testing.T) {
	logTest.Debug("Starting terminal score test")
	assert.Greater(t, terminalScore(1), terminalScore(0), "a mate one ply further out scores less badly")
	assert.Equal(t, -MateValue, terminalScore(0))
}

func TestRepetitionTerminalValueThresholds(t *testing.T) {
	_, ok := repetitionTerminalValue(Black, 1, 0)
	assert.False(t, ok, "a single occurrence is not yet a repetition")

	score, ok := repetitionTerminalValue(Black, 2, 0)
	assert.True(t, ok)
	assert.Less(t, score, 0, "two repetitions is scored unfavorably for the mover, Black")

	score, ok = repetitionTerminalValue(White, 2, 0)
	assert.True(t, ok)
	assert.Greater(t, score, 0)

	score, ok = repetitionTerminalValue(Black, 4, 0)
	assert.True(t, ok)
	assert.Less(t, score, -MateValue/2, "four repetitions is treated as a forced loss for the repeating side")
}

func TestSimpleRngIsDeterministicGivenSeed(t *testing.T) {
	a := newSimpleRng(42)
	b := newSimpleRng(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.nextU64(), b.nextU64())
	}
}

func TestSimpleRngGenRangeStaysInBounds(t *testing.T) {
	r := newSimpleRng(1)
	for i := 0; i < 100; i++ {
		v := r.genRange(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, r.genRange(0))
}

func TestSearchFindsAMoveFromInitialPosition(t *testing.T) {
	pos, err := position.Initial()
	assert.NoError(t, err)

	s := New()
	var buf bytes.Buffer
	s.Info = &buf

	result, err := s.Search(pos, SearchLimits{Depth: 2})
	assert.NoError(t, err)
	assert.True(t, result.HasMove)
	assert.NotZero(t, result.Nodes)
	assert.Contains(t, buf.String(), "info depth")
}

func TestSearchWithNoLegalMovesReportsNoMove(t *testing.T) {
	// A lone White king with nowhere to go and Black controlling every
	// flight square: no legal moves for the side to move.
	pos, err := position.FromSFEN("4k/3RR/5/5/4K w - 1")
	assert.NoError(t, err)

	s := New()
	result, err := s.Search(pos, SearchLimits{Depth: 2})
	assert.NoError(t, err)
	assert.False(t, result.HasMove)
}

func TestSearchRandomnessStillReturnsALegalMove(t *testing.T) {
	pos, err := position.Initial()
	assert.NoError(t, err)
	legal, err := pos.GenerateLegalMoves()
	assert.NoError(t, err)

	s := New()
	result, err := s.Search(pos, SearchLimits{Depth: 1, Randomness: 1000})
	assert.NoError(t, err)
	assert.True(t, result.HasMove)

	found := false
	for _, mv := range legal {
		if mv == result.BestMove {
			found = true
			break
		}
	}
	assert.True(t, found, "the chosen move must be among the legal root moves")
}

func TestPrintInfoFormatsMateScore(t *testing.T) {
	s := New()
	var buf bytes.Buffer
	s.Info = &buf
	mv := NewDropMove(SquareOf(2, 2), Pawn)
	s.printInfo(3, MateValue-1, mv, true, 42)
	assert.True(t, strings.Contains(buf.String(), "score mate"))
}
