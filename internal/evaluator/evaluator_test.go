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

package evaluator

import (
	"os"
	"testing"

	logging2 "github.com/op/go-logging"

	. "github.com/frankkopp/minishogi/internal/types"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/position"
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

func TestPieceMaterialValueOrdering(t *testing.T) {
	logTest.Debug("Starting piece material value test")
	assert.Greater(t, PieceMaterialValue(King), PieceMaterialValue(Rook))
	assert.Greater(t, PieceMaterialValue(Rook), PieceMaterialValue(Pawn))
	assert.Greater(t, PieceMaterialValue(PromotedRook), PieceMaterialValue(Rook), "promotion increases a rook's value")
	assert.Greater(t, PieceMaterialValue(Tokin), PieceMaterialValue(Pawn), "promotion increases a pawn's value")
}

func TestEvaluateInitialPositionIsSymmetric(t *testing.T) {
	pos, err := position.Initial()
	assert.NoError(t, err)
	assert.Equal(t, 0, Evaluate(pos), "the starting position is a 180-degree mirror, so no side is favored")
}

func TestEvaluateFavorsSideWithMaterialInHand(t *testing.T) {
	pos, err := position.FromSFEN("4k/5/5/5/4K b G 1")
	assert.NoError(t, err)
	assert.Greater(t, Evaluate(pos), 0, "Black to move with a captured Gold in hand should score above parity")
}

func TestEvaluateFlipsWithSideToMove(t *testing.T) {
	blackToMove, err := position.FromSFEN("4k/5/5/5/4K b G 1")
	assert.NoError(t, err)
	whiteToMove, err := position.FromSFEN("4k/5/5/5/4K w G 1")
	assert.NoError(t, err)
	assert.Equal(t, Evaluate(blackToMove), -Evaluate(whiteToMove))
}
