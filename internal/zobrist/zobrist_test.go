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

package zobrist

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

func TestPieceSquareDeterministicAndDistinct(t *testing.T) {
	logTest.Debug("Starting piece-square key test")
	a := PieceSquare(Black, Pawn, SquareOf(0, 0))
	b := PieceSquare(Black, Pawn, SquareOf(0, 0))
	assert.Equal(t, a, b, "same inputs always yield the same key term")

	c := PieceSquare(Black, Pawn, SquareOf(1, 0))
	assert.NotEqual(t, a, c)

	d := PieceSquare(White, Pawn, SquareOf(0, 0))
	assert.NotEqual(t, a, d)
}

func TestHandClampsCountToTableBound(t *testing.T) {
	atBound := Hand(Black, 0, HandMaxCount-1)
	overBound := Hand(Black, 0, HandMaxCount+5)
	assert.Equal(t, atBound, overBound)

	negative := Hand(Black, 0, -3)
	zero := Hand(Black, 0, 0)
	assert.Equal(t, zero, negative)
}

func TestSideToMoveIsNonZeroAndStable(t *testing.T) {
	a := SideToMove()
	b := SideToMove()
	assert.Equal(t, a, b)
	assert.NotZero(t, a)
}
