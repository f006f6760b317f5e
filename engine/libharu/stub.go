// seehuhn.de/go/haru - Go bindings for the libharu PDF library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

//go:build !libharu

// Package libharu implements [engine.Engine] on top of the libharu C
// library.  This build does not include the C library.  Rebuild with
// "go build -tags libharu" to enable it.
package libharu

import (
	"errors"

	"seehuhn.de/go/haru/engine"
)

// ErrNotAvailable is returned by [New] if the package was built without
// the "libharu" build tag.
var ErrNotAvailable = errors.New("libharu: not available, build with -tags libharu")

// New returns an engine backed by libharu.
func New() (engine.Engine, error) {
	return nil, ErrNotAvailable
}
