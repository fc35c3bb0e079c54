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

import "math/bits"

// Bitboard is a 25-bit set of squares. Bits 25..31 are always zero.
type Bitboard uint32

// Empty and Full are the two degenerate bitboards.
const (
	Empty Bitboard = 0
	Full  Bitboard = (1 << BoardSquares) - 1
)

// BbOf returns the singleton bitboard containing just sq.
func BbOf(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Contains reports whether sq is a member of bb.
func (bb Bitboard) Contains(sq Square) bool {
	return bb&BbOf(sq) != 0
}

// Insert returns bb with sq added.
func (bb Bitboard) Insert(sq Square) Bitboard {
	return bb | BbOf(sq)
}

// Remove returns bb with sq cleared.
func (bb Bitboard) Remove(sq Square) Bitboard {
	return bb &^ BbOf(sq)
}

// IsEmpty reports whether bb has no members.
func (bb Bitboard) IsEmpty() bool {
	return bb == 0
}

// Len returns the number of squares in bb.
func (bb Bitboard) Len() int {
	return bits.OnesCount32(uint32(bb))
}

// Not returns the complement of bb, masked to the 25 valid bits.
func (bb Bitboard) Not() Bitboard {
	return ^bb & Full
}

// Pop removes and returns the least-significant square in bb, and
// reports whether bb was non-empty.
func (bb *Bitboard) Pop() (Square, bool) {
	if *bb == 0 {
		return SqNone, false
	}
	lsb := bits.TrailingZeros32(uint32(*bb))
	*bb &= *bb - 1
	return Square(lsb), true
}
