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

package config

// LogLevels maps the op/go-logging level names accepted on the command
// line to the numeric logging.Level values config.LogLevel/
// SearchLogLevel hold.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// logConfiguration holds the toml-configurable logging levels, using
// the same 0-5 (CRITICAL..DEBUG) scale as github.com/op/go-logging's
// logging.Level. Zero is a valid level (CRITICAL), so a negative
// sentinel marks "not set in config.toml".
type logConfiguration struct {
	LogLvl       int
	SearchLogLvl int
	LogPath      string
}

func init() {
	Settings.Log = logConfiguration{LogLvl: -1, SearchLogLvl: -1, LogPath: "./logs"}
}

// setupLogLvl overlays toml-provided log levels onto the package-level
// LogLevel/SearchLogLevel vars that the logging package actually reads.
// It runs after toml.DecodeFile so a config.toml without a [Log]
// section leaves both vars at their compiled-in defaults.
func setupLogLvl() {
	if Settings.Log.LogLvl >= 0 {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Log.SearchLogLvl >= 0 {
		SearchLogLevel = Settings.Log.SearchLogLvl
	}
}
