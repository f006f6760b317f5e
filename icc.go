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

import (
	"fmt"
	"os"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/haru/engine"
)

// OutputIntent is an ICC profile loaded into the engine.
type OutputIntent struct {
	doc *Document
	h   engine.Handle

	// NumComponents is the number of color components of the profile's
	// color space.
	NumComponents int
}

// LoadICCProfile loads an ICC profile from a file.  The number of color
// components is taken from the profile header.
func (d *Document) LoadICCProfile(fileName string) (*OutputIntent, error) {
	const op = "LoadICCProfile"
	if err := d.ready(op); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p, err := icc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", newError(op, ErrInvalidParameter), fileName, err)
	}
	n := p.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return nil, fmt.Errorf("%w: %s: %d color components",
			newError(op, ErrInvalidParameter), fileName, n)
	}

	h := d.eng.LoadIccProfileFromFile(d.h, fileName, n)
	if err := d.check(op); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError(op, ErrInvalidParameter)
	}
	return &OutputIntent{doc: d, h: h, NumComponents: n}, nil
}

// AddOutputIntent registers an ICC profile as an output intent of the
// document.
func (d *Document) AddOutputIntent(intent *OutputIntent) error {
	const op = "AddOutputIntent"
	if err := d.ready(op); err != nil {
		return err
	}
	if intent == nil || intent.doc != d {
		return newError(op, ErrInvalidObject)
	}
	d.eng.AddIntent(d.h, intent.h)
	return d.check(op)
}
