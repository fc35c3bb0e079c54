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

// Package search implements iterative-deepening alpha-beta negamax
// with aspiration windows, quiescence search, a transposition table,
// killer moves and history ordering, and check extensions. A search
// runs synchronously to its configured depth: there is no pondering,
// no background goroutine and no cancellation, since a 5x5 board
// never needs more than a handful of plies to reach a strong move.
package search

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/frankkopp/minishogi/internal/evaluator"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/position"
	"github.com/frankkopp/minishogi/internal/transpositiontable"
	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/util"
)

// log is the search package's own logger, kept separate from the
// standard engine-wide logger (internal/logging.GetLog) so search
// tracing can be turned up via config.SearchLogLevel without flooding
// every other subsystem's output.
var log = logging.GetSearchLog()

// SearchResult is what one call to Search produces.
type SearchResult struct {
	BestMove Move
	HasMove  bool
	Score    int
	Depth    int
	Nodes    uint64
}

// SearchLimits bounds a single search call.
type SearchLimits struct {
	// Depth is the maximum iterative-deepening depth, at least 1.
	Depth int
	// Randomness widens root move selection to any move within this
	// many centipawns of the best, chosen uniformly at random. Zero
	// (the default) always plays the single best move.
	Randomness int
}

// DefaultSearchLimits matches the engine's out-of-the-box behavior.
func DefaultSearchLimits() SearchLimits {
	return SearchLimits{Depth: 3, Randomness: 0}
}

type moveSlot struct {
	mv Move
	ok bool
}

type rootEntry struct {
	mv    Move
	score int
}

// Searcher holds all per-search mutable state: node count, the
// transposition table, killer and history tables, and the root move
// candidates gathered by the most recent iteration. A Searcher is not
// safe for concurrent use; callers running more than one search at a
// time should use one Searcher per goroutine.
type Searcher struct {
	tt          *transpositiontable.Table
	nodes       uint64
	killers     [MaxPly][2]moveSlot
	history     [2][PieceKindCount][BoardSquares]int32
	rng         *simpleRng
	limits      SearchLimits
	rootEntries []rootEntry

	// Info receives "info depth ... score ... nodes ... pv ..." lines
	// as the search deepens, in the same format a protocol front end
	// forwards verbatim to its caller.
	Info io.Writer
}

// New returns a ready-to-use Searcher seeded from the wall clock.
func New() *Searcher {
	return &Searcher{
		tt:     transpositiontable.New(),
		rng:    newSimpleRng(uint64(time.Now().UnixNano())),
		limits: DefaultSearchLimits(),
		Info:   os.Stdout,
	}
}

// Search runs iterative deepening up to limits.Depth and returns the
// best move found, or HasMove false if the position has none.
func (s *Searcher) Search(pos *position.Position, limits SearchLimits) (SearchResult, error) {
	s.limits = limits
	maxDepth := limits.Depth
	if maxDepth < 1 {
		maxDepth = 1
	}
	s.nodes = 0
	s.tt.Clear()
	s.clearHeuristics()
	s.rootEntries = nil

	log.Debugf("Search starting: depth=%d randomness=%d", maxDepth, limits.Randomness)

	rootMoves, err := pos.GenerateLegalMoves()
	if err != nil {
		return SearchResult{}, err
	}
	if len(rootMoves) == 0 {
		log.Debug("Search found no legal root moves")
		return SearchResult{Score: terminalScore(0), Nodes: s.nodes}, nil
	}

	var result SearchResult
	lastScore := 0

	for depth := 1; depth <= maxDepth; depth++ {
		alpha := -MateValue
		beta := MateValue

		if depth > 1 {
			const window = 50
			alpha = util.Max(lastScore-window, -MateValue)
			beta = util.Min(lastScore+window, MateValue)
		}

		for {
			iteration, err := s.rootIteration(pos, depth, alpha, beta)
			if err != nil {
				return SearchResult{}, err
			}
			if !iteration.HasMove {
				break
			}

			score := iteration.Score
			lastScore = score
			result = iteration
			s.printInfo(depth, score, iteration.BestMove, true, s.nodes)

			if score <= alpha {
				log.Debugf("Depth %d failed low at %d, re-searching with open alpha", depth, score)
				alpha = -MateValue
				beta = score + 1
				continue
			}
			if score >= beta {
				log.Debugf("Depth %d failed high at %d, re-searching with open beta", depth, score)
				beta = MateValue
				alpha = score - 1
				continue
			}
			break
		}
	}

	if mv, ok := s.pickRootMove(); ok {
		result.BestMove = mv
		result.HasMove = true
	}
	log.Debugf("Search finished: %d nodes, score %d", s.nodes, result.Score)
	return result, nil
}

func (s *Searcher) rootIteration(pos *position.Position, depth, alpha, beta int) (SearchResult, error) {
	s.nodes++
	hash := pos.ZobristKey()
	ttMove, hasTTMove := s.probeMove(hash)

	moves, err := pos.GenerateLegalMoves()
	if err != nil {
		return SearchResult{}, err
	}
	if len(moves) == 0 {
		return SearchResult{Score: terminalScore(0), Nodes: s.nodes}, nil
	}

	s.orderMoves(pos, moves, ttMove, hasTTMove, 0)

	var bestMove Move
	hasBest := false
	bestScore := -MateValue
	localEntries := make([]rootEntry, 0, len(moves))

	for _, mv := range moves {
		mover := pos.SideToMove()
		next, err := pos.PlayMove(mv)
		if err != nil {
			return SearchResult{}, err
		}

		if score, ok := repetitionTerminalValue(mover, next.CurrentRepetitionCount(), 1); ok {
			localEntries = append(localEntries, rootEntry{mv: mv, score: score})
			if score > bestScore {
				bestScore = score
				bestMove = mv
				hasBest = true
			}
			if score > alpha {
				alpha = score
			}
			continue
		}

		childDepth := depth - 1
		if next.IsInCheck(next.SideToMove()) {
			childDepth++
		}
		childScore, err := s.alphaBeta(next, childDepth, -beta, -alpha, 1)
		if err != nil {
			return SearchResult{}, err
		}
		score := -childScore
		localEntries = append(localEntries, rootEntry{mv: mv, score: score})

		if score > bestScore {
			bestScore = score
			bestMove = mv
			hasBest = true
		}
		if score > alpha {
			alpha = score
		}
	}

	sort.SliceStable(localEntries, func(i, j int) bool {
		return localEntries[i].score > localEntries[j].score
	})
	s.rootEntries = localEntries

	if hasBest {
		s.tt.Store(hash, transpositiontable.Entry{
			Depth: depth, Score: bestScore, Bound: transpositiontable.Exact,
			BestMove: bestMove, HasMove: true,
		})
	}

	return SearchResult{BestMove: bestMove, HasMove: hasBest, Score: bestScore, Depth: depth, Nodes: s.nodes}, nil
}

func (s *Searcher) alphaBeta(pos *position.Position, depth, alpha, beta, ply int) (int, error) {
	s.nodes++

	if score, ok := repetitionTerminalValue(pos.SideToMove(), pos.CurrentRepetitionCount(), ply); ok {
		return score, nil
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	hash := pos.ZobristKey()
	origAlpha, origBeta := alpha, beta
	if entry, ok := s.tt.Probe(hash); ok && entry.Depth >= depth {
		switch entry.Bound {
		case transpositiontable.Exact:
			return entry.Score, nil
		case transpositiontable.Lower:
			alpha = util.Max(alpha, entry.Score)
		case transpositiontable.Upper:
			beta = util.Min(beta, entry.Score)
		}
		if alpha >= beta {
			return entry.Score, nil
		}
	}

	moves, err := pos.GenerateLegalMoves()
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		return terminalScore(ply), nil
	}

	ttMove, hasTTMove := s.probeMove(hash)
	s.orderMoves(pos, moves, ttMove, hasTTMove, ply)

	bestValue := -MateValue
	var bestMove Move
	hasBest := false
	searchedAny := false

	for _, mv := range moves {
		mover := pos.SideToMove()
		next, err := pos.PlayMove(mv)
		if err != nil {
			return 0, err
		}

		if score, ok := repetitionTerminalValue(mover, next.CurrentRepetitionCount(), ply+1); ok {
			if score > bestValue {
				bestValue = score
				bestMove = mv
				hasBest = true
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				s.registerCutoff(pos, mv, ply)
				break
			}
			continue
		}

		childDepth := depth - 1
		if next.IsInCheck(next.SideToMove()) {
			childDepth++
		}
		childScore, err := s.alphaBeta(next, childDepth, -beta, -alpha, ply+1)
		if err != nil {
			return 0, err
		}
		score := -childScore
		searchedAny = true

		if score > bestValue {
			bestValue = score
			bestMove = mv
			hasBest = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.registerCutoff(pos, mv, ply)
			break
		}
	}

	var bound transpositiontable.Bound
	switch {
	case bestValue <= origAlpha:
		bound = transpositiontable.Upper
	case bestValue >= origBeta:
		bound = transpositiontable.Lower
	default:
		bound = transpositiontable.Exact
	}

	if searchedAny {
		s.tt.Store(hash, transpositiontable.Entry{
			Depth: depth, Score: bestValue, Bound: bound,
			BestMove: bestMove, HasMove: hasBest,
		})
	}

	return bestValue, nil
}

func (s *Searcher) quiescence(pos *position.Position, alpha, beta, ply int) (int, error) {
	s.nodes++

	if score, ok := repetitionTerminalValue(pos.SideToMove(), pos.CurrentRepetitionCount(), ply); ok {
		return score, nil
	}

	standPat := evaluator.Evaluate(pos)
	if standPat >= beta {
		return beta, nil
	}
	value := standPat
	if value > alpha {
		alpha = value
	}

	moves, err := s.generateTacticalMoves(pos)
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		return value, nil
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return s.captureOrderScore(pos, moves[i]) > s.captureOrderScore(pos, moves[j])
	})

	for _, mv := range moves {
		mover := pos.SideToMove()
		next, err := pos.PlayMove(mv)
		if err != nil {
			return 0, err
		}

		if score, ok := repetitionTerminalValue(mover, next.CurrentRepetitionCount(), ply+1); ok {
			if score > value {
				value = score
			}
			if value >= beta {
				return beta, nil
			}
			if value > alpha {
				alpha = value
			}
			continue
		}

		childScore, err := s.quiescence(next, -beta, -alpha, ply+1)
		if err != nil {
			return 0, err
		}
		score := -childScore
		if score >= beta {
			return beta, nil
		}
		if score > value {
			value = score
		}
		if score > alpha {
			alpha = score
		}
	}

	return value, nil
}

func (s *Searcher) generateTacticalMoves(pos *position.Position) (MoveList, error) {
	legal, err := pos.GenerateLegalMoves()
	if err != nil {
		return nil, err
	}
	result := NewMoveList(len(legal))
	for _, mv := range legal {
		if mv.IsDrop() {
			continue
		}
		if pos.PieceAt(mv.To) != nil || mv.Promote {
			result = append(result, mv)
		}
	}
	return result, nil
}

func (s *Searcher) probeMove(hash uint64) (Move, bool) {
	entry, ok := s.tt.Probe(hash)
	if !ok || !entry.HasMove {
		return Move{}, false
	}
	return entry.BestMove, true
}

func (s *Searcher) printInfo(depth, score int, best Move, hasBest bool, nodes uint64) {
	if s.Info == nil {
		return
	}
	scoreTag, scoreValue := "cp", fmt.Sprintf("%d", score)
	if util.Abs(score) >= MateValue-100 {
		var mate int
		if score > 0 {
			mate = (MateValue - score + 1) / 2
		} else {
			mate = -((MateValue + score + 1) / 2)
		}
		scoreTag, scoreValue = "mate", fmt.Sprintf("%d", mate)
	}

	if hasBest {
		fmt.Fprintf(s.Info, "info depth %d score %s %s nodes %d pv %s\n", depth, scoreTag, scoreValue, nodes, best.ToUsi())
	} else {
		fmt.Fprintf(s.Info, "info depth %d score %s %s nodes %d\n", depth, scoreTag, scoreValue, nodes)
	}
}
