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
	"strconv"
	"strings"
	"unicode"
)

// HandPieceKind enumerates the five kinds that can sit in a player's
// hand and be dropped back onto the board.
type HandPieceKind uint8

const (
	HandGold HandPieceKind = iota
	HandSilver
	HandBishop
	HandRook
	HandPawn
	HandPieceKindCount
)

// HandMaxCount bounds the Zobrist table for hand counts; a count at or
// above this index is folded into the last table entry.
const HandMaxCount = 6

// AllHandPieceKinds lists every hand piece kind in declaration order.
func AllHandPieceKinds() [HandPieceKindCount]HandPieceKind {
	return [HandPieceKindCount]HandPieceKind{HandGold, HandSilver, HandBishop, HandRook, HandPawn}
}

// Index returns the hand kind as an array index.
func (k HandPieceKind) Index() int {
	return int(k)
}

// HandKindFromPieceKind maps a board piece kind to the hand kind it is
// captured as, or false for kinds that can never be held in hand
// (King and the promoted pieces, which revert to their base on
// capture before being looked up by the caller).
func HandKindFromPieceKind(k PieceKind) (HandPieceKind, bool) {
	switch k {
	case Gold:
		return HandGold, true
	case Silver:
		return HandSilver, true
	case Bishop:
		return HandBishop, true
	case Rook:
		return HandRook, true
	case Pawn:
		return HandPawn, true
	default:
		return 0, false
	}
}

// PieceKind returns the board piece kind that dropping this hand kind
// places on the board.
func (k HandPieceKind) PieceKind() PieceKind {
	switch k {
	case HandGold:
		return Gold
	case HandSilver:
		return Silver
	case HandBishop:
		return Bishop
	case HandRook:
		return Rook
	default:
		return Pawn
	}
}

var handKindLetters = [HandPieceKindCount]byte{'G', 'S', 'B', 'R', 'P'}

// Letter returns the upper-case SFEN letter for this hand kind.
func (k HandPieceKind) Letter() byte {
	return handKindLetters[k]
}

// HandKindFromLetter resolves a (case-insensitive) SFEN hand letter.
func HandKindFromLetter(ch byte) (HandPieceKind, bool) {
	switch unicode.ToUpper(rune(ch)) {
	case 'G':
		return HandGold, true
	case 'S':
		return HandSilver, true
	case 'B':
		return HandBishop, true
	case 'R':
		return HandRook, true
	case 'P':
		return HandPawn, true
	default:
		return 0, false
	}
}

// Hand tracks captured-piece counts for one player. Counts saturate at
// the range of uint8 on Add; Remove saturates at zero.
type Hand struct {
	counts [HandPieceKindCount]uint8
}

// Add increases the count of kind by amount, saturating at 255, and
// returns the new count.
func (h *Hand) Add(kind HandPieceKind, amount uint8) uint8 {
	sum := uint16(h.counts[kind]) + uint16(amount)
	if sum > 255 {
		sum = 255
	}
	h.counts[kind] = uint8(sum)
	return h.counts[kind]
}

// Remove decreases the count of kind by amount, saturating at zero,
// and returns the new count.
func (h *Hand) Remove(kind HandPieceKind, amount uint8) uint8 {
	if h.counts[kind] < amount {
		h.counts[kind] = 0
	} else {
		h.counts[kind] -= amount
	}
	return h.counts[kind]
}

// Count returns the current count for kind.
func (h *Hand) Count(kind HandPieceKind) uint8 {
	return h.counts[kind]
}

// IsEmpty reports whether every kind has a zero count.
func (h *Hand) IsEmpty() bool {
	for _, c := range h.counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// SfenString renders the hand's contribution to the SFEN hands field:
// concatenated "[count?]<letter>" tokens, lower-cased when lower is
// true (White's hand).
func (h *Hand) SfenString(lower bool) string {
	var b strings.Builder
	for _, kind := range AllHandPieceKinds() {
		count := h.Count(kind)
		if count == 0 {
			continue
		}
		if count > 1 {
			b.WriteString(strconv.Itoa(int(count)))
		}
		letter := kind.Letter()
		if lower {
			letter = byte(unicode.ToLower(rune(letter)))
		}
		b.WriteByte(letter)
	}
	return b.String()
}
