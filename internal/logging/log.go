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

// Package logging is a thin helper around "github.com/op/go-logging"
// that keeps each call site down to a single GetXxxLog() call instead
// of repeating backend/formatter boilerplate throughout the engine.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/util"
)

// Out is a locale-aware printer for human-facing numeric output (node
// counts, nps, centipawn scores) in command-line tooling.
var Out = message.NewPrinter(language.English)

var (
	standardLog  *logging.Logger
	searchLog    *logging.Logger
	testLog      *logging.Logger
	protocolLog  *logging.Logger
	protocolFile *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	protocolLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")

	// Prefer an already-existing log folder; only create one (via
	// ResolveCreateFolder) if ResolveFolder can't find it.
	logsDir, err := util.ResolveFolder(config.Settings.Log.LogPath)
	if err != nil {
		logsDir, err = util.ResolveCreateFolder(config.Settings.Log.LogPath)
	}
	if err != nil {
		logsDir = filepath.Dir(programName)
	}
	protocolLogFilePath = filepath.Join(logsDir, exeName+"_protocol.log")

	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
	protocolLog = logging.MustGetLogger("protocol")
}

// GetLog returns the standard engine-wide logger, preconfigured with
// an os.Stdout backend at the level configured via config.LogLevel.
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackend := logging.AddModuleLevel(backend1Formatter)
	standardBackend.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(standardBackend)
	return standardLog
}

// GetSearchLog returns the logger used from inside the search package,
// kept separate from GetLog so search tracing can be turned up without
// flooding every other subsystem's output.
func GetSearchLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	searchBackend := logging.AddModuleLevel(backend1Formatter)
	searchBackend.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(searchBackend)
	return searchLog
}

// GetTestLog returns the logger used by _test.go files.
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	testBackend := logging.AddModuleLevel(backend1Formatter)
	testBackend.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(testBackend)
	return testLog
}

// GetProtocolLog returns a logger dedicated to the command/response
// traffic of the USI-style text protocol, logging to both stdout and a
// file opened in append mode in the configured log folder (the
// executable's folder if no log folder could be found or created) so a
// session can be replayed.
func GetProtocolLog() *logging.Logger {
	protoFormat := logging.MustStringFormatter(`%{time:15:04:05.000} PROTO %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, protoFormat)
	backend1Leveled := logging.AddModuleLevel(backend1Formatter)
	backend1Leveled.SetLevel(logging.DEBUG, "")

	var err error
	protocolFile, err = os.OpenFile(protocolLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("protocol logfile could not be created:", err)
		protocolLog.SetBackend(backend1Leveled)
		return protocolLog
	}

	backend2 := logging.NewLogBackend(protocolFile, "", log.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, protoFormat)
	backend2Leveled := logging.AddModuleLevel(backend2Formatter)
	backend2Leveled.SetLevel(logging.DEBUG, "")

	multi := logging.SetBackend(backend1Leveled, backend2Leveled)
	protocolLog.SetBackend(multi)
	return protocolLog
}
