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

package types

import (
	"os"
	"testing"

	logging2 "github.com/op/go-logging"

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

func TestSquareCoordRoundtrip(t *testing.T) {
	logTest.Debug("Starting square coord roundtrip test")
	for _, sq := range AllSquares() {
		coord := sq.Coord()
		assert.Equal(t, sq, FromCoord(coord))
	}
}

func TestSquareFileRank(t *testing.T) {
	sq := SquareOf(3, 1)
	assert.Equal(t, 3, sq.File())
	assert.Equal(t, 1, sq.Rank())
	assert.True(t, sq.IsValid())
	assert.False(t, SqNone.IsValid())
}

func TestSquareOffsetOutOfBounds(t *testing.T) {
	corner := SquareOf(0, 0)
	assert.False(t, corner.Offset(-1, 0).IsValid())
}

func TestBitboardSetOps(t *testing.T) {
	var bb Bitboard
	sq := SquareOf(2, 2)
	assert.True(t, bb.IsEmpty())
	bb = bb.Insert(sq)
	assert.True(t, bb.Contains(sq))
	assert.Equal(t, 1, bb.Len())
	bb = bb.Remove(sq)
	assert.False(t, bb.Contains(sq))
	assert.True(t, bb.IsEmpty())
}

func TestBitboardPop(t *testing.T) {
	bb := BbOf(SquareOf(0, 0)) | BbOf(SquareOf(4, 4))
	var popped []Square
	for {
		sq, ok := bb.Pop()
		if !ok {
			break
		}
		popped = append(popped, sq)
	}
	assert.Len(t, popped, 2)
}

func TestColorOpponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.NotEqual(t, Black.Index(), White.Index())
}

func TestPieceKindPromoteDemote(t *testing.T) {
	promoted, ok := Pawn.Promote()
	assert.True(t, ok)
	assert.True(t, promoted.IsPromoted())
	base, ok := promoted.Demote()
	assert.True(t, ok)
	assert.Equal(t, Pawn, base)

	_, ok = King.Promote()
	assert.False(t, ok, "king has no promoted form")
}

func TestSfenLetterRoundtrip(t *testing.T) {
	for _, k := range AllPieceKinds() {
		base := k.Base()
		letter := base.SfenLetter()
		parsed, ok := KindFromSfenLetter(letter, false)
		assert.True(t, ok)
		assert.Equal(t, base, parsed)
	}
}

func TestHandAddRemoveCount(t *testing.T) {
	var h Hand
	assert.True(t, h.IsEmpty())
	gk, ok := HandKindFromPieceKind(Gold)
	assert.True(t, ok)
	h.Add(gk, 2)
	assert.Equal(t, uint8(2), h.Count(gk))
	assert.False(t, h.IsEmpty())
	h.Remove(gk, 1)
	assert.Equal(t, uint8(1), h.Count(gk))
}

func TestHandKindFromPieceKindExcludesKing(t *testing.T) {
	_, ok := HandKindFromPieceKind(King)
	assert.False(t, ok, "king is never held in hand")
}

func TestMoveToUsiBoardAndDrop(t *testing.T) {
	from := SquareOf(0, 0)
	to := SquareOf(0, 1)
	mv := NewNormalMove(from, to, Pawn, false)
	assert.Equal(t, from.Coord()+to.Coord(), mv.ToUsi())

	promoMv := NewNormalMove(from, to, Pawn, true)
	assert.Equal(t, from.Coord()+to.Coord()+"+", promoMv.ToUsi())

	gk, _ := HandKindFromPieceKind(Gold)
	dropMv := NewDropMove(to, Gold)
	assert.True(t, dropMv.IsDrop())
	assert.Equal(t, string(gk.Letter())+"*"+to.Coord(), dropMv.ToUsi())
}
