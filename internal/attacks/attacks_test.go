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

package attacks

import (
	"os"
	"testing"

	logging2 "github.com/op/go-logging"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
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

func TestKingAttacksCenterHasEightNeighbors(t *testing.T) {
	logTest.Debug("Starting king attack tests")
	center := SquareOf(2, 2)
	assert.Equal(t, 8, KingAttacks(center).Len())
}

func TestKingAttacksCornerHasThreeNeighbors(t *testing.T) {
	corner := SquareOf(0, 0)
	assert.Equal(t, 3, KingAttacks(corner).Len())
}

func TestPawnAttacksDirectionByColor(t *testing.T) {
	sq := SquareOf(2, 2)
	black := PawnAttacks(Black, sq)
	white := PawnAttacks(White, sq)
	assert.True(t, black.Contains(SquareOf(2, 1)))
	assert.True(t, white.Contains(SquareOf(2, 3)))
	assert.NotEqual(t, black, white)
}

func TestRookAttacksStopsAtFirstBlocker(t *testing.T) {
	sq := SquareOf(2, 2)
	blocker := SquareOf(2, 3)
	occ := BbOf(blocker)
	bb := RookAttacks(sq, occ)
	assert.True(t, bb.Contains(blocker), "includes the blocking square itself")
	assert.False(t, bb.Contains(SquareOf(2, 4)), "does not see past the blocker")
	assert.True(t, bb.Contains(SquareOf(2, 0)), "the unblocked ray still reaches the far edge")
}

func TestRookAttacksEmptyBoardReachesEdges(t *testing.T) {
	sq := SquareOf(0, 0)
	bb := RookAttacks(sq, Empty)
	assert.True(t, bb.Contains(SquareOf(4, 0)))
	assert.True(t, bb.Contains(SquareOf(0, 4)))
}

func TestBishopAttacksDiagonalOnly(t *testing.T) {
	sq := SquareOf(2, 2)
	bb := BishopAttacks(sq, Empty)
	assert.True(t, bb.Contains(SquareOf(0, 0)))
	assert.True(t, bb.Contains(SquareOf(4, 4)))
	assert.False(t, bb.Contains(SquareOf(2, 0)))
}

func TestHorseAndDragonAddKingSteps(t *testing.T) {
	sq := SquareOf(2, 2)
	horse := HorseAttacks(sq, Empty)
	dragon := DragonAttacks(sq, Empty)
	for _, adjacent := range []Square{SquareOf(1, 2), SquareOf(3, 2), SquareOf(2, 1), SquareOf(2, 3)} {
		assert.True(t, horse.Contains(adjacent))
	}
	assert.True(t, dragon.Contains(SquareOf(1, 1)))
}

func TestKindAttacksDispatch(t *testing.T) {
	sq := SquareOf(2, 2)
	assert.Equal(t, KingAttacks(sq), KindAttacks(Black, King, sq, Empty))
	assert.Equal(t, GoldAttacks(Black, sq), KindAttacks(Black, Gold, sq, Empty))
	assert.Equal(t, GoldAttacks(White, sq), KindAttacks(White, Tokin, sq, Empty))
	assert.Equal(t, Empty, KindAttacks(Black, PieceKindCount, sq, Empty))
}
