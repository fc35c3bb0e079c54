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

import "unicode"

// PieceKind enumerates the ten piece kinds of Minishogi, base and
// promoted forms alike.
type PieceKind uint8

const (
	King PieceKind = iota
	Gold
	Silver
	PromotedSilver
	Bishop
	PromotedBishop
	Rook
	PromotedRook
	Pawn
	Tokin
	PieceKindCount
)

// Horse and Dragon are the conventional Shogi names for the promoted
// Bishop and Rook.
const (
	Horse  = PromotedBishop
	Dragon = PromotedRook
)

// AllPieceKinds lists every piece kind in declaration order.
func AllPieceKinds() [PieceKindCount]PieceKind {
	return [PieceKindCount]PieceKind{
		King, Gold, Silver, PromotedSilver, Bishop, PromotedBishop,
		Rook, PromotedRook, Pawn, Tokin,
	}
}

// Index returns the kind as an array index.
func (k PieceKind) Index() int {
	return int(k)
}

// IsPromoted reports whether k is a promoted piece kind.
func (k PieceKind) IsPromoted() bool {
	switch k {
	case PromotedSilver, PromotedBishop, PromotedRook, Tokin:
		return true
	default:
		return false
	}
}

// CanPromote reports whether k has a promoted form it can move into.
func (k PieceKind) CanPromote() bool {
	switch k {
	case Silver, Bishop, Rook, Pawn:
		return true
	default:
		return false
	}
}

// Promote returns the promoted form of k and true, or (k, false) if k
// has no promotion.
func (k PieceKind) Promote() (PieceKind, bool) {
	switch k {
	case Silver:
		return PromotedSilver, true
	case Bishop:
		return PromotedBishop, true
	case Rook:
		return PromotedRook, true
	case Pawn:
		return Tokin, true
	default:
		return k, false
	}
}

// Demote returns the unpromoted form of k and true, or (k, false) if k
// is not a promoted kind.
func (k PieceKind) Demote() (PieceKind, bool) {
	switch k {
	case PromotedSilver:
		return Silver, true
	case PromotedBishop:
		return Bishop, true
	case PromotedRook:
		return Rook, true
	case Tokin:
		return Pawn, true
	default:
		return k, false
	}
}

// Base returns the unpromoted form of k, or k itself if it already is
// unpromoted.
func (k PieceKind) Base() PieceKind {
	if base, ok := k.Demote(); ok {
		return base
	}
	return k
}

// sfenLetters maps a base piece kind to its lower-case SFEN letter.
var sfenLetters = map[PieceKind]byte{
	King:   'k',
	Gold:   'g',
	Silver: 's',
	Bishop: 'b',
	Rook:   'r',
	Pawn:   'p',
}

var sfenLetterToKind = map[byte]PieceKind{
	'k': King,
	'g': Gold,
	's': Silver,
	'b': Bishop,
	'r': Rook,
	'p': Pawn,
}

// SfenLetter returns the lower-case SFEN letter for the base form of k.
func (k PieceKind) SfenLetter() byte {
	return sfenLetters[k.Base()]
}

// KindFromSfenLetter resolves a board-piece SFEN letter (case
// insensitive) to a piece kind, applying promotion if requested.
// Returns (kind, true) on success.
func KindFromSfenLetter(ch byte, promoted bool) (PieceKind, bool) {
	base, ok := sfenLetterToKind[byte(unicode.ToLower(rune(ch)))]
	if !ok {
		return 0, false
	}
	if !promoted {
		return base, true
	}
	return base.Promote()
}

// Piece is a (Color, PieceKind) pair sitting on the board.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NewPiece constructs a Piece.
func NewPiece(c Color, k PieceKind) Piece {
	return Piece{Color: c, Kind: k}
}

// SfenString renders the piece in SFEN form: a '+' for promoted pieces
// followed by the kind letter, upper-case for Black.
func (p Piece) SfenString() string {
	letter := p.Kind.SfenLetter()
	if p.Color == Black {
		letter = byte(unicode.ToUpper(rune(letter)))
	}
	if p.Kind.IsPromoted() {
		return "+" + string(letter)
	}
	return string(letter)
}

// String implements fmt.Stringer via SfenString.
func (p Piece) String() string {
	return p.SfenString()
}
