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

// Package zobrist holds the process-wide, lazily-initialized random
// tables used to key positions for the transposition table and
// repetition detection. The tables are generated once with a
// deterministic SplitMix64 stream so that keys are stable within a
// single binary across runs.
package zobrist

import (
	"sync"

	. "github.com/frankkopp/minishogi/internal/types"
)

const seed uint64 = 0x9E3779B97F4A7C15

type tables struct {
	pieceSquare [2][PieceKindCount][BoardSquares]uint64
	hand        [2][HandPieceKindCount][HandMaxCount]uint64
	sideToMove  uint64
}

var (
	once  sync.Once
	table tables
)

func splitMix64(x uint64) uint64 {
	x += seed
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func generate() {
	state := seed
	next := func() uint64 {
		state = splitMix64(state)
		return state
	}
	for c := 0; c < 2; c++ {
		for k := 0; k < PieceKindCount; k++ {
			for sq := 0; sq < BoardSquares; sq++ {
				table.pieceSquare[c][k][sq] = next()
			}
		}
	}
	for c := 0; c < 2; c++ {
		for k := 0; k < HandPieceKindCount; k++ {
			for n := 0; n < HandMaxCount; n++ {
				table.hand[c][k][n] = next()
			}
		}
	}
	table.sideToMove = next()
}

func ensureInit() {
	once.Do(generate)
}

// PieceSquare returns the key term for a piece of the given color and
// kind sitting on sq.
func PieceSquare(c Color, k PieceKind, sq Square) uint64 {
	ensureInit()
	return table.pieceSquare[c.Index()][k.Index()][sq]
}

// Hand returns the key term for a player holding count pieces of kind
// in hand, clamped to the table's bound.
func Hand(c Color, k HandPieceKind, count int) uint64 {
	ensureInit()
	if count >= HandMaxCount {
		count = HandMaxCount - 1
	}
	if count < 0 {
		count = 0
	}
	return table.hand[c.Index()][k.Index()][count]
}

// SideToMove returns the key term toggled in whenever White is to move.
func SideToMove() uint64 {
	ensureInit()
	return table.sideToMove
}
