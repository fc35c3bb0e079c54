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
	. "github.com/frankkopp/minishogi/internal/types"
)

// MateValue is the score assigned to an immediate loss, discounted by
// ply so that a shorter forced mate scores better than a longer one.
const MateValue = 30000

// MaxPly bounds the killer-move table; plies beyond this share the
// last slot.
const MaxPly = 64

// terminalScore scores a position with no legal moves for the side to
// move. Minishogi treats a side with no reply the same whether it is
// in check (checkmate) or not (stalemate): both are scored as an
// immediate loss for the side to move, discounted by ply. This
// mirrors strict shogi practice, where a side unable to move has
// already lost regardless of whether its king is attacked.
func terminalScore(ply int) int {
	return -MateValue + ply
}

// repetitionTerminalValue scores a position whose hash has repeated,
// from mover's perspective but signed for Black-maximizing negamax
// (positive favors Black). Four or more repetitions is a forced
// result (treated as a loss for the side that allowed the position to
// repeat that many times); three repetitions is a heavy penalty; two
// is a mild nudge away from repeating. Anything else returns false.
func repetitionTerminalValue(mover Color, repeatCount, plyFromRoot int) (int, bool) {
	if repeatCount >= 4 {
		mateScore := MateValue - plyFromRoot
		if mateScore < 1 {
			mateScore = 1
		}
		if mover == Black {
			return -mateScore, true
		}
		return mateScore, true
	}

	if repeatCount == 3 {
		penalty := MateValue / 4
		if penalty < 1 {
			penalty = 1
		}
		if mover == Black {
			return -penalty, true
		}
		return penalty, true
	}

	if repeatCount == 2 {
		const softPenalty = 500
		if mover == Black {
			return -softPenalty, true
		}
		return softPenalty, true
	}

	return 0, false
}
