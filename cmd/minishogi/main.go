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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/position"
	"github.com/frankkopp/minishogi/internal/protocol"
	"github.com/frankkopp/minishogi/internal/search"
	"github.com/frankkopp/minishogi/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	depth := flag.Int("depth", 0, "search depth for a single -fen search; 0 skips the single search and starts the protocol loop")
	fen := flag.String("fen", position.InitialSFEN, "sfen position to search when -depth is given")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) of the run to the current directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}

	// resetting log level on standard log - required as most packages
	// include the standard logger as a global var and therefore even
	// before main() is called; those loggers start at the compiled-in
	// default and must be reset to the actual configured level.
	logging.GetLog()
	logging.GetSearchLog()

	if *depth > 0 {
		runOneShotSearch(*fen, *depth)
		return
	}

	h := protocol.NewHandler()
	h.Loop()
}

func runOneShotSearch(fen string, depth int) {
	pos, err := position.FromSFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -fen:", err)
		os.Exit(1)
	}
	s := search.New()
	s.Info = os.Stdout
	result, err := s.Search(pos, search.SearchLimits{Depth: depth})
	if err != nil {
		fmt.Fprintln(os.Stderr, "search error:", err)
		os.Exit(1)
	}
	if !result.HasMove {
		out.Println("bestmove resign")
		return
	}
	out.Printf("bestmove %s\n", result.BestMove.ToUsi())
}

func printVersionInfo() {
	out.Printf("minishogi %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
