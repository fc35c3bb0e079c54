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

// searchConfiguration holds the few knobs the search package exposes.
// Minishogi's tree is tiny compared to chess, so there is no opening
// book, ponder, null-move, or late-move-reduction machinery to
// configure; what remains is the default iterative-deepening depth
// and the root-move randomness band (see internal/search.SearchLimits).
type searchConfiguration struct {
	DefaultDepth      int
	DefaultRandomness int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.DefaultDepth = 3
	Settings.Search.DefaultRandomness = 0
}

// setupSearch re-applies sane bounds after toml.DecodeFile, replacing
// a non-positive depth or a negative randomness read from config.toml
// with the defaults.
func setupSearch() {
	if Settings.Search.DefaultDepth <= 0 {
		Settings.Search.DefaultDepth = 3
	}
	if Settings.Search.DefaultRandomness < 0 {
		Settings.Search.DefaultRandomness = 0
	}
}
