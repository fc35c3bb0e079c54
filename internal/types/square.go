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

// Package types holds the core value types shared across the engine:
// squares, bitboards, colors, pieces and hands. None of these types
// depend on Position so they can be imported from anywhere without
// cycles.
package types

import "fmt"

// BoardFiles and BoardRanks define the 5x5 Minishogi board.
const (
	BoardFiles  = 5
	BoardRanks  = 5
	BoardSquares = BoardFiles * BoardRanks
)

// Square is a single square on the 5x5 board, encoded as rank*5+file
// in [0, 25).
type Square uint8

// SqNone is the invalid/sentinel square, one past the last real square.
const SqNone Square = BoardSquares

// SquareOf builds a Square from file and rank, both in [0,5). Returns
// SqNone if either is out of range.
func SquareOf(file, rank int) Square {
	if file < 0 || file >= BoardFiles || rank < 0 || rank >= BoardRanks {
		return SqNone
	}
	return Square(rank*BoardFiles + file)
}

// IsValid reports whether sq is a real board square.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// File returns the file in [0,5), file 0 is the rightmost file from
// Black's point of view (printed as "1").
func (sq Square) File() int {
	return int(sq) % BoardFiles
}

// Rank returns the rank in [0,5), rank 0 is the 'a' rank (White's back
// rank in the initial position).
func (sq Square) Rank() int {
	return int(sq) / BoardFiles
}

// Offset returns the square reached by moving df files and dr ranks
// from sq, or SqNone if that leaves the board.
func (sq Square) Offset(df, dr int) Square {
	file := sq.File() + df
	rank := sq.Rank() + dr
	return SquareOf(file, rank)
}

// FromCoord parses external notation such as "5e" into a Square.
// File digits run 1..5, rank letters run a..e. Returns SqNone on any
// malformed input.
func FromCoord(coord string) Square {
	if len(coord) != 2 {
		return SqNone
	}
	fileDigit := coord[0]
	rankLetter := coord[1]
	if fileDigit < '1' || fileDigit > '5' {
		return SqNone
	}
	if rankLetter < 'a' || rankLetter > 'e' {
		return SqNone
	}
	file := int(fileDigit-'1')
	rank := int(rankLetter - 'a')
	return SquareOf(file, rank)
}

// Coord renders the square in external notation, e.g. "5e".
func (sq Square) Coord() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d%c", sq.File()+1, 'a'+rune(sq.Rank()))
}

// String implements fmt.Stringer using the same notation as Coord.
func (sq Square) String() string {
	return sq.Coord()
}

// AllSquares returns every square on the board in index order.
func AllSquares() [BoardSquares]Square {
	var squares [BoardSquares]Square
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}
