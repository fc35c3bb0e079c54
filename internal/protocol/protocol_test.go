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

package protocol

import (
	"os"
	"strings"
	"testing"

	logging2 "github.com/op/go-logging"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/stretchr/testify/assert"
)

var logTest *logging2.Logger

// Setup the tests.
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestUsiCommandAnnouncesIdentityAndOk(t *testing.T) {
	logTest.Debug("Starting usi command test")
	h := NewHandler()
	out := h.Command("usi")
	assert.True(t, strings.Contains(out, "id name minishogi"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "usiok"))
}

func TestIsReadyCommandRespondsReadyOk(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposThenLegalMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("legalmoves")
	assert.True(t, strings.HasPrefix(out, "legalmoves "))
	assert.True(t, strings.Contains(out, "checkstate false"))
}

func TestPositionSfenMatchesStartpos(t *testing.T) {
	h1 := NewHandler()
	h1.Command("position startpos")
	movesFromStartpos := h1.Command("legalmoves")

	h2 := NewHandler()
	h2.Command("position sfen rbsgk/4p/5/P4/KGSBR b - 1")
	movesFromSfen := h2.Command("legalmoves")

	assert.Equal(t, movesFromStartpos, movesFromSfen)
}

func TestPositionWithMovesAppliesThem(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	firstLegal := h.Command("legalmoves")
	firstMove := strings.Fields(firstLegal)[1]

	h.Command("position startpos moves " + firstMove)
	out := h.Command("legalmoves")
	assert.True(t, strings.HasPrefix(out, "legalmoves "))
}

func TestPositionRejectsMalformedSfen(t *testing.T) {
	h := NewHandler()
	out := h.Command("position sfen not-a-valid-sfen")
	assert.True(t, strings.Contains(out, "info string"))
}

func TestUsiNewGameResetsPosition(t *testing.T) {
	h := NewHandler()
	firstLegal := h.Command("legalmoves")
	firstMove := strings.Fields(firstLegal)[1]
	h.Command("position startpos moves " + firstMove)

	h.Command("usinewgame")
	out := h.Command("legalmoves")
	assert.Equal(t, firstLegal, out)
}

func TestGoCommandReturnsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go depth 1")
	assert.True(t, strings.Contains(out, "bestmove "))
}

func TestStopWithoutPriorSearchResigns(t *testing.T) {
	h := NewHandler()
	out := h.Command("stop")
	assert.Equal(t, "bestmove resign\n", out)
}

func TestStopAfterGoRepeatsLastBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	goOut := h.Command("go depth 1")
	lines := strings.Split(strings.TrimSpace(goOut), "\n")
	bestLine := lines[len(lines)-1]

	stopOut := h.Command("stop")
	assert.Equal(t, bestLine+"\n", stopOut)
}

func TestUnknownCommandReportsInfoString(t *testing.T) {
	h := NewHandler()
	out := h.Command("notacommand")
	assert.True(t, strings.Contains(out, "info string unknown command notacommand"))
}

func TestHandleReceivedCommandQuitSignalsStop(t *testing.T) {
	h := NewHandler()
	assert.True(t, h.handleReceivedCommand("quit"))
	assert.False(t, h.handleReceivedCommand("isready"))
}
