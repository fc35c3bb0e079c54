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

// Package protocol implements the line-oriented text front-end that
// drives a Searcher over a position: a small, USI-flavored command
// set (usi/isready/usinewgame/position/legalmoves/go/stop/quit) read
// from an input stream and answered on an output stream.
package protocol

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/frankkopp/minishogi/internal/config"
	myLogging "github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/position"
	"github.com/frankkopp/minishogi/internal/search"
	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/version"
)

var log *logging.Logger

// Handler owns one position and one Searcher and answers commands
// read from InIo on OutIo. Create one with NewHandler(); replace InIo
// /OutIo before Loop() to redirect from the default stdin/stdout.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos      *position.Position
	searcher *search.Searcher
	protoLog *logging.Logger

	lastBest    Move
	lastHasBest bool
}

// NewHandler creates a Handler wired to stdin/stdout with a fresh
// initial position and Searcher.
func NewHandler() *Handler {
	if log == nil {
		log = myLogging.GetLog()
	}
	initial, err := position.Initial()
	if err != nil {
		panic("minishogi: initial position failed to parse: " + err.Error())
	}
	h := &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		pos:      initial,
		searcher: search.New(),
		protoLog: myLogging.GetProtocolLog(),
	}
	return h
}

// Loop reads commands from InIo until "quit" or end of input.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handleReceivedCommand(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote
// to OutIo, useful for tests that don't want to wire up real IO.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handleReceivedCommand(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (h *Handler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	h.protoLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "usi":
		h.usiCommand()
	case "isready":
		h.isReadyCommand()
	case "usinewgame":
		h.usiNewGameCommand()
	case "position":
		h.positionCommand(tokens)
	case "legalmoves":
		h.legalMovesCommand()
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.stopCommand()
	default:
		log.Warningf("unknown command: %s", cmd)
		h.send("info string unknown command " + tokens[0])
	}
	return false
}

func (h *Handler) usiCommand() {
	h.send("id name minishogi " + version.Version())
	h.send("id author the minishogi engine authors")
	h.send("usiok")
}

func (h *Handler) isReadyCommand() {
	h.send("readyok")
}

func (h *Handler) usiNewGameCommand() {
	initial, err := position.Initial()
	if err != nil {
		h.send("info string internal error resetting position: " + err.Error())
		return
	}
	h.pos = initial
	h.lastHasBest = false
}

// positionCommand handles "position (startpos|sfen <4 fields>) [moves m1 m2 ...]".
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.send("info string malformed position command")
		return
	}
	i := 1
	switch tokens[i] {
	case "startpos":
		initial, err := position.Initial()
		if err != nil {
			h.send("info string internal error setting startpos: " + err.Error())
			return
		}
		h.pos = initial
		i++
	case "sfen":
		i++
		if i+4 > len(tokens) {
			h.send("info string malformed position command: missing sfen fields")
			return
		}
		sfen := strings.Join(tokens[i:i+4], " ")
		pos, err := position.FromSFEN(sfen)
		if err != nil {
			h.send("info string malformed sfen: " + err.Error())
			return
		}
		h.pos = pos
		i += 4
	default:
		h.send("info string malformed position command")
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			mv, ok := h.moveFromUsi(tokens[i])
			if !ok {
				h.send("info string invalid move in position command: " + tokens[i])
				return
			}
			if err := h.pos.PlayMoveMut(mv); err != nil {
				h.send("info string illegal move in position command: " + tokens[i])
				return
			}
		}
	}
}

// legalMovesCommand emits every legal move from the current position
// and whether the side to move is in check.
func (h *Handler) legalMovesCommand() {
	moves, err := h.pos.GenerateLegalMoves()
	if err != nil {
		h.send("info string error generating legal moves: " + err.Error())
		return
	}
	var b strings.Builder
	b.WriteString("legalmoves")
	for _, mv := range moves {
		b.WriteString(" ")
		b.WriteString(mv.ToUsi())
	}
	h.send(b.String())

	inCheck := h.pos.IsInCheck(h.pos.SideToMove())
	h.send("checkstate " + strconv.FormatBool(inCheck))
}

// goCommand handles "go [depth N] [random M]".
func (h *Handler) goCommand(tokens []string) {
	limits := search.SearchLimits{
		Depth:      config.Settings.Search.DefaultDepth,
		Randomness: config.Settings.Search.DefaultRandomness,
	}
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			i++
			if i >= len(tokens) {
				h.send("info string go malformed: missing depth value")
				return
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.send("info string go malformed: depth not a number: " + tokens[i])
				return
			}
			limits.Depth = d
		case "random":
			i++
			if i >= len(tokens) {
				h.send("info string go malformed: missing random value")
				return
			}
			r, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.send("info string go malformed: random not a number: " + tokens[i])
				return
			}
			limits.Randomness = r
		default:
			h.send("info string go malformed: unknown subcommand " + tokens[i])
			return
		}
	}

	h.searcher.Info = h.OutIo
	result, err := h.searcher.Search(h.pos, limits)
	if err != nil {
		h.send("info string search error: " + err.Error())
		h.lastHasBest = false
		h.send("bestmove resign")
		return
	}

	if !result.HasMove {
		h.lastHasBest = false
		h.send("bestmove resign")
		return
	}

	if err := h.pos.PlayMoveMut(result.BestMove); err != nil {
		h.send("info string search returned illegal move: " + err.Error())
		h.lastHasBest = false
		h.send("bestmove resign")
		return
	}
	h.lastBest = result.BestMove
	h.lastHasBest = true
	h.send("bestmove " + result.BestMove.ToUsi())
}

// stopCommand re-emits the last bestmove: search is synchronous, so by
// the time "stop" arrives there is nothing in flight to interrupt.
func (h *Handler) stopCommand() {
	if !h.lastHasBest {
		h.send("bestmove resign")
		return
	}
	h.send("bestmove " + h.lastBest.ToUsi())
}

// moveFromUsi resolves a USI-notation move string against the legal
// moves of the current position, since Move itself carries no parser
// independent of board context (a drop's piece kind and a board
// move's promotion legality both depend on the position).
func (h *Handler) moveFromUsi(s string) (Move, bool) {
	moves, err := h.pos.GenerateLegalMoves()
	if err != nil {
		return Move{}, false
	}
	for _, mv := range moves {
		if mv.ToUsi() == s {
			return mv, true
		}
	}
	return Move{}, false
}

func (h *Handler) send(s string) {
	h.protoLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
