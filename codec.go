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

package haru

import "golang.org/x/exp/constraints"

// The enumerations in this package are converted to and from the engine's
// numeric constants using tables indexed by the enum value.  Decoding is
// total: engine values which are not in the table give the EOF member of
// the enumeration.

func decodeEnum[T constraints.Unsigned](v int, codes []int, eof T) T {
	for i, c := range codes {
		if c == v {
			return T(i)
		}
	}
	return eof
}

func encodeEnum[T constraints.Unsigned](x T, codes []int) (int, bool) {
	if uint64(x) >= uint64(len(codes)) {
		return 0, false
	}
	return codes[x], true
}
