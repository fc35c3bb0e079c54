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

// Package version holds the engine's release identifier. goReleaseVersion
// is the only value that changes from release to release; everything
// that reads a version string goes through Version() rather than the
// var directly so the source of truth stays in one place.
package version

import "fmt"

const (
	majorVersion = 0
	minorVersion = 1
	patchVersion = 0
)

// preRelease is appended to the dotted version when non-empty, e.g.
// "alpha", "beta", "rc1". Leave empty for a release build.
var preRelease = "alpha"

// Version returns the engine's version string, e.g. "0.1.0-alpha".
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", majorVersion, minorVersion, patchVersion)
	if preRelease != "" {
		v += "-" + preRelease
	}
	return v
}
