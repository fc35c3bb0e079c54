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

// Package position represents a 5x5 Minishogi board: piece placement,
// both players' hands, side to move, ply count and Zobrist hash. It
// owns move generation and legality filtering (check, nifu, and
// uchifu-zume) and SFEN (de)serialization.
//
// Create a starting position with Initial(), or an empty board with
// NewEmpty() to be filled with SetPiece.
package position

import (
	"errors"
	"fmt"

	"github.com/frankkopp/minishogi/internal/attacks"
	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/zobrist"
)

// InitialSFEN is the Minishogi starting position.
const InitialSFEN = "rbsgk/4p/5/P4/KGSBR b - 1"

// Position is a mutable, clonable snapshot of a Minishogi game state.
type Position struct {
	board      [BoardSquares]*Piece
	bitboards  [2][PieceKindCount]Bitboard
	occupancy  [2]Bitboard
	hands      [2]Hand
	sideToMove Color
	ply        uint32
	hash       uint64
	history    []uint64
}

// NewEmpty returns a Position with no pieces, Black to move, ply 1.
func NewEmpty() *Position {
	return &Position{sideToMove: Black, ply: 1}
}

// Initial returns the Minishogi starting position.
func Initial() (*Position, error) {
	return FromSFEN(InitialSFEN)
}

// Clone returns an independent deep copy of p.
func (p *Position) Clone() *Position {
	next := *p
	next.history = append([]uint64(nil), p.history...)
	return &next
}

// SideToMove returns the player on move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// SetSideToMove forces the side to move, updating the hash if it
// actually changes.
func (p *Position) SetSideToMove(c Color) {
	if c != p.sideToMove {
		p.hash ^= zobrist.SideToMove()
		p.sideToMove = c
	}
}

// Ply returns the current ply counter (starts at 1).
func (p *Position) Ply() uint32 {
	return p.ply
}

// SetPly sets the ply counter, clamped to a minimum of 1.
func (p *Position) SetPly(ply uint32) {
	if ply < 1 {
		ply = 1
	}
	p.ply = ply
}

// PieceAt returns the piece on sq, or nil if the square is empty.
func (p *Position) PieceAt(sq Square) *Piece {
	return p.board[sq]
}

// SetPiece places piece on sq. It is an error to call this on an
// occupied square; remove the existing piece first.
func (p *Position) SetPiece(sq Square, piece Piece) error {
	if p.board[sq] != nil {
		return fmt.Errorf("position: square %s is already occupied", sq)
	}
	pc := piece
	p.board[sq] = &pc
	p.bitboards[piece.Color.Index()][piece.Kind.Index()] = p.bitboards[piece.Color.Index()][piece.Kind.Index()].Insert(sq)
	p.occupancy[piece.Color.Index()] = p.occupancy[piece.Color.Index()].Insert(sq)
	p.hash ^= zobrist.PieceSquare(piece.Color, piece.Kind, sq)
	return nil
}

// RemovePiece clears sq and returns what was there, or nil if empty.
func (p *Position) RemovePiece(sq Square) *Piece {
	piece := p.board[sq]
	if piece == nil {
		return nil
	}
	p.hash ^= zobrist.PieceSquare(piece.Color, piece.Kind, sq)
	p.board[sq] = nil
	p.bitboards[piece.Color.Index()][piece.Kind.Index()] = p.bitboards[piece.Color.Index()][piece.Kind.Index()].Remove(sq)
	p.occupancy[piece.Color.Index()] = p.occupancy[piece.Color.Index()].Remove(sq)
	return piece
}

// Pieces returns the bitboard of squares holding a piece of the given
// color and kind.
func (p *Position) Pieces(c Color, k PieceKind) Bitboard {
	return p.bitboards[c.Index()][k.Index()]
}

// Occupancy returns the bitboard of all squares occupied by c.
func (p *Position) Occupancy(c Color) Bitboard {
	return p.occupancy[c.Index()]
}

// OccupancyAll returns the bitboard of every occupied square.
func (p *Position) OccupancyAll() Bitboard {
	return p.occupancy[Black.Index()] | p.occupancy[White.Index()]
}

// KingSquare returns c's king's square, or (SqNone, false) if c has no
// king on the board.
func (p *Position) KingSquare(c Color) (Square, bool) {
	kings := p.Pieces(c, King)
	return kings.Pop()
}

// Hand returns a pointer to c's captured-piece counts, mutable in
// place.
func (p *Position) Hand(c Color) *Hand {
	return &p.hands[c.Index()]
}

// Clear resets the position to an empty board, Black to move, ply 1.
func (p *Position) Clear() {
	for i := range p.board {
		p.board[i] = nil
	}
	p.bitboards = [2][PieceKindCount]Bitboard{}
	p.occupancy = [2]Bitboard{}
	p.hands = [2]Hand{}
	p.sideToMove = Black
	p.ply = 1
	p.hash = 0
	p.history = p.history[:0]
	p.history = append(p.history, p.hash)
}

func (p *Position) switchSide() {
	p.hash ^= zobrist.SideToMove()
	p.sideToMove = p.sideToMove.Opponent()
}

func (p *Position) updateHandHash(c Color, kind HandPieceKind, oldCount, newCount uint8) {
	p.hash ^= zobrist.Hand(c, kind, int(oldCount))
	p.hash ^= zobrist.Hand(c, kind, int(newCount))
}

// ZobristKey returns the incremental Zobrist hash of the position.
func (p *Position) ZobristKey() uint64 {
	return p.hash
}

// CurrentRepetitionCount returns how many times the current hash has
// occurred in this position's history, including the current entry.
func (p *Position) CurrentRepetitionCount() int {
	if len(p.history) == 0 {
		return 0
	}
	return p.RepetitionCount(p.history[len(p.history)-1])
}

// RepetitionCount returns how many times key occurs in history.
func (p *Position) RepetitionCount(key uint64) int {
	count := 0
	for _, k := range p.history {
		if k == key {
			count++
		}
	}
	return count
}

func (p *Position) recomputeHash() {
	p.hash = 0
	for idx := 0; idx < BoardSquares; idx++ {
		if piece := p.board[idx]; piece != nil {
			p.hash ^= zobrist.PieceSquare(piece.Color, piece.Kind, Square(idx))
		}
	}
	for _, c := range Colors {
		for _, handKind := range AllHandPieceKinds() {
			count := int(p.hands[c.Index()].Count(handKind))
			p.hash ^= zobrist.Hand(c, handKind, count)
		}
	}
	if p.sideToMove == White {
		p.hash ^= zobrist.SideToMove()
	}
	p.history = p.history[:0]
	p.history = append(p.history, p.hash)
}

func promotionZone(c Color, sq Square) bool {
	if c == Black {
		return sq.Rank() == 0
	}
	return sq.Rank() == BoardRanks-1
}

func canPromote(c Color, k PieceKind, from, to Square) bool {
	if !k.CanPromote() {
		return false
	}
	return promotionZone(c, from) || promotionZone(c, to)
}

func mustPromote(c Color, k PieceKind, to Square) bool {
	return k == Pawn && promotionZone(c, to)
}

func (p *Position) isSquareAttacked(sq Square, by Color) bool {
	occ := p.OccupancyAll()
	for _, kind := range AllPieceKinds() {
		pieces := p.Pieces(by, kind)
		for {
			src, ok := pieces.Pop()
			if !ok {
				break
			}
			if attacks.KindAttacks(by, kind, src, occ).Contains(sq) {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether c's king is currently attacked. A color
// with no king on the board is never in check.
func (p *Position) IsInCheck(c Color) bool {
	kingSq, ok := p.KingSquare(c)
	if !ok {
		return false
	}
	return p.isSquareAttacked(kingSq, c.Opponent())
}

// applyMoveInternal mutates p by playing mv, which must be at least
// pseudo-legal. It does not check for self-check or the drop-pawn-mate
// rule; callers that need legality should go through PlayMove plus a
// legality test, or GenerateLegalMoves.
func (p *Position) applyMoveInternal(mv Move) error {
	color := p.sideToMove

	if mv.IsDrop() {
		handKind, ok := HandKindFromPieceKind(mv.Piece)
		if !ok {
			return errors.New("position: cannot drop this piece kind")
		}
		if p.hands[color.Index()].Count(handKind) == 0 {
			return errors.New("position: no piece in hand for drop")
		}
		if p.PieceAt(mv.To) != nil {
			return errors.New("position: drop target not empty")
		}
		old := p.hands[color.Index()].Count(handKind)
		newCount := p.hands[color.Index()].Remove(handKind, 1)
		p.updateHandHash(color, handKind, old, newCount)
		if err := p.SetPiece(mv.To, NewPiece(color, mv.Piece)); err != nil {
			return err
		}
	} else {
		if mv.From == SqNone {
			return errors.New("position: missing from square")
		}
		movingPiece := p.PieceAt(mv.From)
		if movingPiece == nil {
			return errors.New("position: no piece on from square")
		}
		if movingPiece.Color != color {
			return errors.New("position: moving opponent's piece")
		}

		resultingKind := movingPiece.Kind
		if mv.Promote {
			promoted, ok := resultingKind.Promote()
			if !ok {
				return errors.New("position: piece cannot promote")
			}
			resultingKind = promoted
		}

		if targetPiece := p.PieceAt(mv.To); targetPiece != nil {
			if targetPiece.Color == color {
				return errors.New("position: cannot capture own piece")
			}
			p.RemovePiece(mv.To)
			if handKind, ok := HandKindFromPieceKind(targetPiece.Kind.Base()); ok {
				old := p.hands[color.Index()].Count(handKind)
				newCount := p.hands[color.Index()].Add(handKind, 1)
				p.updateHandHash(color, handKind, old, newCount)
			}
		}

		if p.RemovePiece(mv.From) == nil {
			return errors.New("position: piece missing from source square")
		}
		if err := p.SetPiece(mv.To, NewPiece(color, resultingKind)); err != nil {
			return err
		}
	}

	p.switchSide()
	p.ply++
	p.history = append(p.history, p.hash)
	return nil
}

// PlayMove returns a new Position reached by playing mv on a clone of
// p, leaving p untouched.
func (p *Position) PlayMove(mv Move) (*Position, error) {
	next := p.Clone()
	if err := next.applyMoveInternal(mv); err != nil {
		return nil, err
	}
	return next, nil
}

// PlayMoveMut plays mv on p in place.
func (p *Position) PlayMoveMut(mv Move) error {
	return p.applyMoveInternal(mv)
}

// isMoveLegalInternal tests whether mv leaves the mover out of check
// and, when enforceDropRule is set, whether a checking pawn drop
// leaves the opponent at least one legal reply (the uchifu-zume
// rule). The reply search itself keeps enforcing the drop rule, since
// a forced mate further down the tree is still a forced mate.
func (p *Position) isMoveLegalInternal(mv Move, enforceDropRule bool) (bool, error) {
	mover := p.sideToMove
	next, err := p.PlayMove(mv)
	if err != nil {
		return false, err
	}
	if next.IsInCheck(mover) {
		return false, nil
	}

	if enforceDropRule && mv.IsDrop() && mv.Piece == Pawn && next.IsInCheck(mover.Opponent()) {
		hasReply, err := next.hasAnyLegalMoveInternal(true)
		if err != nil {
			return false, err
		}
		if !hasReply {
			return false, nil
		}
	}

	return true, nil
}

func (p *Position) hasAnyLegalMoveInternal(enforceDropRule bool) (bool, error) {
	for _, mv := range p.GeneratePseudoLegalMoves() {
		legal, err := p.isMoveLegalInternal(mv, enforceDropRule)
		if err != nil {
			return false, err
		}
		if legal {
			return true, nil
		}
	}
	return false, nil
}

// GenerateLegalMoves returns every fully legal move (board moves and
// drops) available to the side to move.
func (p *Position) GenerateLegalMoves() (MoveList, error) {
	result := NewMoveList(32)
	for _, mv := range p.GeneratePseudoLegalMoves() {
		legal, err := p.isMoveLegalInternal(mv, true)
		if err != nil {
			return nil, err
		}
		if legal {
			result = append(result, mv)
		}
	}
	return result, nil
}

func (p *Position) generatePieceMoves(c Color, k PieceKind, pieces Bitboard, moves *MoveList) {
	if pieces.IsEmpty() {
		return
	}
	ourOcc := p.Occupancy(c)
	allOcc := p.OccupancyAll()

	for {
		from, ok := pieces.Pop()
		if !ok {
			break
		}
		targets := attacks.KindAttacks(c, k, from, allOcc) &^ ourOcc
		for {
			to, ok := targets.Pop()
			if !ok {
				break
			}
			forced := mustPromote(c, k, to)
			optional := canPromote(c, k, from, to)
			if forced {
				*moves = append(*moves, NewNormalMove(from, to, k, true))
			} else {
				*moves = append(*moves, NewNormalMove(from, to, k, false))
				if optional {
					*moves = append(*moves, NewNormalMove(from, to, k, true))
				}
			}
		}
	}
}

func (p *Position) hasPawnOnFile(c Color, file int) bool {
	pawns := p.Pieces(c, Pawn)
	for {
		sq, ok := pawns.Pop()
		if !ok {
			return false
		}
		if sq.File() == file {
			return true
		}
	}
}

func (p *Position) generateDropMoves(c Color, moves *MoveList) {
	empty := p.OccupancyAll().Not()
	for {
		to, ok := empty.Pop()
		if !ok {
			break
		}
		for _, handKind := range AllHandPieceKinds() {
			count := p.Hand(c).Count(handKind)
			if count == 0 {
				continue
			}
			pieceKind := handKind.PieceKind()

			if pieceKind == Pawn {
				if promotionZone(c, to) {
					continue
				}
				if p.hasPawnOnFile(c, to.File()) {
					continue
				}
			}

			*moves = append(*moves, NewDropMove(to, pieceKind))
		}
	}
}

// GeneratePseudoLegalMoves returns every board move and drop available
// to the side to move without filtering for self-check or
// uchifu-zume.
func (p *Position) GeneratePseudoLegalMoves() MoveList {
	moves := NewMoveList(48)
	color := p.sideToMove

	for _, kind := range AllPieceKinds() {
		pieces := p.Pieces(color, kind)
		if pieces.IsEmpty() {
			continue
		}
		p.generatePieceMoves(color, kind, pieces, &moves)
	}

	p.generateDropMoves(color, &moves)
	return moves
}
