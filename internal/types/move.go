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

// Move is either a board move (From valid) or a drop (From == SqNone).
// Piece is the mover's kind before promotion is applied.
type Move struct {
	From    Square
	To      Square
	Piece   PieceKind
	Promote bool
}

// NewNormalMove builds a board move from `from` to `to`.
func NewNormalMove(from, to Square, piece PieceKind, promote bool) Move {
	return Move{From: from, To: to, Piece: piece, Promote: promote}
}

// NewDropMove builds a drop of piece onto `to`.
func NewDropMove(to Square, piece PieceKind) Move {
	return Move{From: SqNone, To: to, Piece: piece, Promote: false}
}

// IsDrop reports whether the move is a hand drop rather than a board
// move.
func (m Move) IsDrop() bool {
	return m.From == SqNone
}

// ToUsi renders the move in external notation: "<from><to>[+]" for
// board moves, "<LETTER>*<to>" for drops.
func (m Move) ToUsi() string {
	if m.IsDrop() {
		b := make([]byte, 0, 4)
		b = append(b, m.Piece.dropLetterOrPanic())
		b = append(b, '*')
		b = append(b, m.To.Coord()...)
		return string(b)
	}
	s := m.From.Coord() + m.To.Coord()
	if m.Promote {
		s += "+"
	}
	return s
}

// dropLetterOrPanic returns the hand letter for a droppable piece
// kind. It is only ever called on drop moves, which by construction
// carry a droppable kind.
func (k PieceKind) dropLetterOrPanic() byte {
	if hk, ok := HandKindFromPieceKind(k); ok {
		return hk.Letter()
	}
	panic("minishogi: drop move carries a non-droppable piece kind")
}

// String implements fmt.Stringer via ToUsi.
func (m Move) String() string {
	return m.ToUsi()
}

// MoveList is an ordered collection of moves, generated during move
// generation and reordered in place during search.
type MoveList []Move

// NewMoveList creates an empty move list with the given capacity hint.
func NewMoveList(capHint int) MoveList {
	return make(MoveList, 0, capHint)
}
