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

// Package attacks holds pure functions mapping (square, occupancy) to
// the bitboard of squares a given piece kind attacks from that square.
// Unlike a full-size chess board, a 5x5 board has no sliding piece
// further than four squares from any origin, so rays are walked
// directly at call time rather than precomputed via magic bitboards -
// the setup cost of a magic multiplication table would dwarf the
// four-iteration loop it replaces.
package attacks

import (
	. "github.com/frankkopp/minishogi/internal/types"
)

type offset struct{ df, dr int }

var rookDirections = [4]offset{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
var bishopDirections = [4]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var blackPawnStep = [1]offset{{0, -1}}
var whitePawnStep = [1]offset{{0, 1}}

var blackSilverSteps = [5]offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 1}, {1, 1}}
var whiteSilverSteps = [5]offset{{-1, -1}, {1, -1}, {-1, 1}, {0, 1}, {1, 1}}

var blackGoldSteps = [6]offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {0, 1}, {1, 0}}
var whiteGoldSteps = [6]offset{{-1, 0}, {0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

var kingSteps = [8]offset{
	{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

func stepAttacks(sq Square, offsets []offset) Bitboard {
	var bb Bitboard
	for _, o := range offsets {
		if to := sq.Offset(o.df, o.dr); to.IsValid() {
			bb = bb.Insert(to)
		}
	}
	return bb
}

func rayAttacks(sq Square, occ Bitboard, directions [4]offset) Bitboard {
	var bb Bitboard
	for _, d := range directions {
		cur := sq
		for {
			to := cur.Offset(d.df, d.dr)
			if !to.IsValid() {
				break
			}
			bb = bb.Insert(to)
			if occ.Contains(to) {
				break
			}
			cur = to
		}
	}
	return bb
}

// PawnAttacks returns the single forward step of a pawn of the given
// color from sq.
func PawnAttacks(c Color, sq Square) Bitboard {
	if c == Black {
		return stepAttacks(sq, blackPawnStep[:])
	}
	return stepAttacks(sq, whitePawnStep[:])
}

// SilverAttacks returns the five squares a Silver General can step to:
// both forward diagonals, straight forward, and both rear diagonals.
func SilverAttacks(c Color, sq Square) Bitboard {
	if c == Black {
		return stepAttacks(sq, blackSilverSteps[:])
	}
	return stepAttacks(sq, whiteSilverSteps[:])
}

// GoldAttacks returns the six squares a Gold General (and the Gold
// movers: PromotedSilver and Tokin) can step to.
func GoldAttacks(c Color, sq Square) Bitboard {
	if c == Black {
		return stepAttacks(sq, blackGoldSteps[:])
	}
	return stepAttacks(sq, whiteGoldSteps[:])
}

// KingAttacks returns all eight neighbors of sq.
func KingAttacks(sq Square) Bitboard {
	return stepAttacks(sq, kingSteps[:])
}

// BishopAttacks slides along both diagonals, stopping at (and
// including) the first occupied square.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, bishopDirections)
}

// RookAttacks slides along both files and ranks, stopping at (and
// including) the first occupied square.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, rookDirections)
}

// HorseAttacks is the Promoted Bishop: bishop slides plus king steps.
func HorseAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | KingAttacks(sq)
}

// DragonAttacks is the Promoted Rook: rook slides plus king steps.
func DragonAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | KingAttacks(sq)
}

// KindAttacks dispatches to the attack set for a single piece kind,
// consulting occ only for the sliding kinds.
func KindAttacks(c Color, k PieceKind, sq Square, occ Bitboard) Bitboard {
	switch k {
	case King:
		return KingAttacks(sq)
	case Gold, PromotedSilver, Tokin:
		return GoldAttacks(c, sq)
	case Silver:
		return SilverAttacks(c, sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case PromotedBishop:
		return HorseAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case PromotedRook:
		return DragonAttacks(sq, occ)
	case Pawn:
		return PawnAttacks(c, sq)
	default:
		return Empty
	}
}
