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

// Package evaluator scores a position from the side-to-move's point of
// view: material, a handful of positional terms, and piece-in-hand
// material. It holds no search state and no tunables beyond what is
// exported here, in line with the fixed interface search calls
// through.
package evaluator

import (
	. "github.com/frankkopp/minishogi/internal/types"

	"github.com/frankkopp/minishogi/internal/position"
)

// pieceValues is indexed by PieceKind.
var pieceValues = [PieceKindCount]int{
	King:           15000,
	Gold:           700,
	Silver:         600,
	PromotedSilver: 650,
	Bishop:         900,
	PromotedBishop: 1100,
	Rook:           1000,
	PromotedRook:   1200,
	Pawn:           100,
	Tokin:          400,
}

// PieceMaterialValue returns the standalone material value of a piece
// kind, used by search move ordering (MVV-LVA) as well as evaluation.
func PieceMaterialValue(k PieceKind) int {
	return pieceValues[k.Index()]
}

func handPieceValue(k HandPieceKind) int {
	return PieceMaterialValue(k.PieceKind())
}

func scoreHand(c Color, hand *Hand) int {
	score := 0
	for _, kind := range AllHandPieceKinds() {
		count := int(hand.Count(kind))
		if count == 0 {
			continue
		}
		value := handPieceValue(kind) * count
		if c == White {
			value = -value
		}
		score += value
	}
	return score
}

const centerFile = (BoardFiles - 1) / 2
const centerRank = (BoardRanks - 1) / 2

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// positionalBonus scores a piece's placement: a bonus for sitting near
// the center of the board, and a bonus for how far it has advanced
// into enemy territory, weighted per kind. Coefficients are tuned by
// feel rather than derived from anything principled.
func positionalBonus(piece Piece, sq Square) int {
	file := sq.File()
	rank := sq.Rank()
	centerDistance := abs(file-centerFile) + abs(rank-centerRank)
	centerBonus := max0(4-centerDistance) * 10

	var advancement int
	if piece.Color == Black {
		advancement = BoardRanks - 1 - rank
	} else {
		advancement = rank
	}

	switch piece.Kind {
	case Pawn:
		return advancement*25 + centerBonus*2
	case Tokin:
		return advancement*20 + centerBonus*3 + 50
	case Silver:
		return advancement*15 + centerBonus*3
	case PromotedSilver:
		return advancement*20 + centerBonus*3 + 40
	case Bishop:
		return centerBonus * 5
	case PromotedBishop:
		return centerBonus*6 + 40
	case Rook:
		return advancement*10 + centerBonus*6
	case PromotedRook:
		return advancement*12 + centerBonus*6 + 60
	case Gold:
		return advancement*12 + centerBonus*3
	case King:
		return (4-abs(rank-centerRank))*20 - advancement*10
	default:
		return 0
	}
}

func scoreBoard(pos *position.Position) int {
	score := 0
	for _, sq := range AllSquares() {
		piece := pos.PieceAt(sq)
		if piece == nil {
			continue
		}
		value := PieceMaterialValue(piece.Kind) + positionalBonus(*piece, sq)
		if piece.Color == White {
			value = -value
		}
		score += value
	}
	return score
}

// Evaluate scores pos from the side-to-move's perspective: positive
// means the side to move stands better.
func Evaluate(pos *position.Position) int {
	score := scoreBoard(pos)
	for _, c := range Colors {
		score += scoreHand(c, pos.Hand(c))
	}
	if pos.SideToMove() == White {
		score = -score
	}
	return score
}
