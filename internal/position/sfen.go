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

package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	. "github.com/frankkopp/minishogi/internal/types"
)

var (
	errTooManyFields     = errors.New("position: too many fields in sfen")
	errDanglingPromotion = errors.New("position: dangling promotion marker")
	errInvalidHandCount  = errors.New("position: invalid hand count")
	errDanglingHandCount = errors.New("position: dangling hand count")
)

// ToSFEN renders the position as "<board> <turn> <hands> <ply>".
func (p *Position) ToSFEN() string {
	ranks := make([]string, 0, BoardRanks)
	for rank := 0; rank < BoardRanks; rank++ {
		var row strings.Builder
		empties := 0
		for file := BoardFiles - 1; file >= 0; file-- {
			sq := SquareOf(file, rank)
			if piece := p.PieceAt(sq); piece != nil {
				if empties > 0 {
					row.WriteString(strconv.Itoa(empties))
					empties = 0
				}
				row.WriteString(piece.SfenString())
			} else {
				empties++
			}
		}
		if empties > 0 {
			row.WriteString(strconv.Itoa(empties))
		}
		ranks = append(ranks, row.String())
	}

	upper := p.hands[Black.Index()].SfenString(false)
	lower := p.hands[White.Index()].SfenString(true)
	handStr := upper + lower
	if handStr == "" {
		handStr = "-"
	}

	turn := "b"
	if p.sideToMove == White {
		turn = "w"
	}

	return fmt.Sprintf("%s %s %s %d", strings.Join(ranks, "/"), turn, handStr, p.ply)
}

// FromSFEN parses a complete SFEN string into a new Position.
func FromSFEN(s string) (*Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: sfen has %d fields, want 4", len(fields))
	}
	if len(fields) > 4 {
		return nil, errTooManyFields
	}
	boardPart, turnPart, handPart, plyPart := fields[0], fields[1], fields[2], fields[3]

	pos := NewEmpty()

	ranks := strings.Split(boardPart, "/")
	if len(ranks) != BoardRanks {
		return nil, fmt.Errorf("position: board has %d ranks, want %d", len(ranks), BoardRanks)
	}

	for rankIdx, rankStr := range ranks {
		file := BoardFiles - 1
		runes := []rune(rankStr)
		for i := 0; i < len(runes); i++ {
			ch := runes[i]
			if unicode.IsDigit(ch) {
				skip := int(ch - '0')
				if skip <= 0 || skip > file+1 {
					return nil, fmt.Errorf("position: invalid empty count %d in rank %d", skip, rankIdx)
				}
				file -= skip
				continue
			}

			promoted := false
			if ch == '+' {
				i++
				if i >= len(runes) {
					return nil, errDanglingPromotion
				}
				promoted = true
				ch = runes[i]
			}

			if err := placeBoardPiece(pos, byte(ch), promoted, rankIdx, file); err != nil {
				return nil, err
			}
			file--
		}

		if file != -1 {
			return nil, fmt.Errorf("position: rank %d does not cover all files", rankIdx)
		}
	}

	switch turnPart {
	case "b", "B":
		pos.sideToMove = Black
	case "w", "W":
		pos.sideToMove = White
	default:
		return nil, fmt.Errorf("position: turn must be b or w, got %q", turnPart)
	}

	if err := pos.parseHands(handPart); err != nil {
		return nil, err
	}

	ply, err := strconv.ParseUint(plyPart, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("position: invalid ply %q", plyPart)
	}
	pos.ply = uint32(ply)
	if pos.ply == 0 {
		pos.ply = 1
	}

	pos.recomputeHash()

	return pos, nil
}

func placeBoardPiece(pos *Position, ch byte, promoted bool, rankIdx, file int) error {
	if file < 0 {
		return fmt.Errorf("position: too many squares in rank %d", rankIdx)
	}
	color := White
	if unicode.IsUpper(rune(ch)) {
		color = Black
	}
	kind, ok := KindFromSfenLetter(ch, promoted)
	if !ok {
		return fmt.Errorf("position: invalid piece letter %q", string(ch))
	}
	sq := SquareOf(file, rankIdx)
	return pos.SetPiece(sq, NewPiece(color, kind))
}

func (p *Position) parseHands(handPart string) error {
	if handPart == "-" {
		return nil
	}

	var countBuf strings.Builder
	for _, ch := range handPart {
		if unicode.IsDigit(ch) {
			countBuf.WriteRune(ch)
			continue
		}

		count := uint64(1)
		if countBuf.Len() > 0 {
			n, err := strconv.ParseUint(countBuf.String(), 10, 8)
			if err != nil {
				return errInvalidHandCount
			}
			count = n
			countBuf.Reset()
		}

		handKind, ok := HandKindFromLetter(byte(ch))
		if !ok {
			return fmt.Errorf("position: invalid hand piece %q", string(ch))
		}
		color := White
		if unicode.IsUpper(ch) {
			color = Black
		}

		p.hands[color.Index()].Add(handKind, uint8(count))
	}

	if countBuf.Len() > 0 {
		return errDanglingHandCount
	}

	return nil
}
