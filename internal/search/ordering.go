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

package search

import (
	"sort"

	"github.com/frankkopp/minishogi/internal/evaluator"
	"github.com/frankkopp/minishogi/internal/position"
	. "github.com/frankkopp/minishogi/internal/types"
)

// orderMoves sorts moves best-first using a fixed band scheme: the TT
// move, then killers, then captures (MVV-LVA) and promotions, then
// history heuristic as a tiebreaker within a band.
func (s *Searcher) orderMoves(pos *position.Position, moves MoveList, ttMove Move, hasTTMove bool, ply int) {
	sort.SliceStable(moves, func(i, j int) bool {
		return s.moveScore(pos, moves[i], ttMove, hasTTMove, ply) > s.moveScore(pos, moves[j], ttMove, hasTTMove, ply)
	})
}

func (s *Searcher) moveScore(pos *position.Position, mv, ttMove Move, hasTTMove bool, ply int) int {
	if hasTTMove && mv == ttMove {
		return 1000000
	}

	score := 0
	idx := ply
	if idx >= MaxPly {
		idx = MaxPly - 1
	}
	killers := s.killers[idx]
	if killers[0].ok && killers[0].mv == mv {
		score += 900000
	} else if killers[1].ok && killers[1].mv == mv {
		score += 800000
	}

	if captured := pos.PieceAt(mv.To); captured != nil {
		captureValue := evaluator.PieceMaterialValue(captured.Kind)
		moverValue := evaluator.PieceMaterialValue(mv.Piece)
		score += 500000 + (captureValue - moverValue)
	} else if mv.Promote {
		score += 400000
	}

	colorIdx := pos.SideToMove().Index()
	score += int(s.history[colorIdx][mv.Piece.Index()][mv.To])

	return score
}

// captureOrderScore ranks quiescence moves by simple MVV-LVA: the
// value of what is captured minus the value of the capturing piece.
func (s *Searcher) captureOrderScore(pos *position.Position, mv Move) int {
	capturedValue := 0
	if captured := pos.PieceAt(mv.To); captured != nil {
		capturedValue = evaluator.PieceMaterialValue(captured.Kind)
	}
	return capturedValue - evaluator.PieceMaterialValue(mv.Piece)
}

// registerCutoff records a beta cutoff for move ordering: mv becomes
// the top killer for ply if it was a quiet move, and its history score
// grows by (ply+1)^2, halved once it passes a ceiling so that old
// history doesn't dominate forever.
func (s *Searcher) registerCutoff(pos *position.Position, mv Move, ply int) {
	idx := ply
	if idx >= MaxPly {
		idx = MaxPly - 1
	}

	if !mv.IsDrop() && pos.PieceAt(mv.To) == nil {
		if !(s.killers[idx][0].ok && s.killers[idx][0].mv == mv) {
			s.killers[idx][1] = s.killers[idx][0]
			s.killers[idx][0] = moveSlot{mv: mv, ok: true}
		}
	}

	colorIdx := pos.SideToMove().Index()
	h := &s.history[colorIdx][mv.Piece.Index()][mv.To]
	*h += int32((ply + 1) * (ply + 1))
	if *h > 200000 {
		*h /= 2
	}
}

// pickRootMove chooses among the most recently completed iteration's
// root moves. With zero randomness it always plays the best move;
// otherwise it gathers every move within Randomness centipawns of the
// best (the list is sorted, so this is a prefix) and picks uniformly
// at random among them.
func (s *Searcher) pickRootMove() (Move, bool) {
	if len(s.rootEntries) == 0 {
		return Move{}, false
	}

	bestScore := s.rootEntries[0].score
	if s.limits.Randomness <= 0 {
		return s.rootEntries[0].mv, true
	}

	threshold := bestScore - s.limits.Randomness
	candidates := make([]Move, 0, len(s.rootEntries))
	for _, entry := range s.rootEntries {
		if entry.score >= threshold {
			candidates = append(candidates, entry.mv)
		} else {
			break
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, s.rootEntries[0].mv)
	}
	idx := s.rng.genRange(len(candidates))
	return candidates[idx], true
}

func (s *Searcher) clearHeuristics() {
	s.killers = [MaxPly][2]moveSlot{}
	s.history = [2][PieceKindCount][BoardSquares]int32{}
}
