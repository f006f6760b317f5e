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

	"github.com/xdg-go/stringprep"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/haru/engine"
)

// Permissions describes which operations are allowed on an encrypted
// document.  The zero value only allows reading.
type Permissions uint32

// The permission flags.
const (
	PermRead    Permissions = engine.EnableRead
	PermPrint   Permissions = engine.EnablePrint
	PermEditAll Permissions = engine.EnableEditAll
	PermCopy    Permissions = engine.EnableCopy
	PermEdit    Permissions = engine.EnableEdit
)

// CompressionMode selects which streams are compressed.
type CompressionMode uint32

// The compression flags.
const (
	CompressNone     CompressionMode = engine.CompNone
	CompressText     CompressionMode = engine.CompText
	CompressImage    CompressionMode = engine.CompImage
	CompressMetadata CompressionMode = engine.CompMetadata
	CompressAll      CompressionMode = engine.CompAll
)

// SetCompressionMode selects which streams are compressed.
func (d *Document) SetCompressionMode(mode CompressionMode) error {
	if err := d.ready("SetCompressionMode"); err != nil {
		return err
	}
	d.eng.SetCompressionMode(d.h, uint32(mode))
	return d.check("SetCompressionMode")
}

// maxPasswordLength is the number of password bytes used by the
// standard security handler.
const maxPasswordLength = 32

// preparePassword normalises a password using the SASLprep profile and
// converts it to the single byte encoding used by the standard security
// handler for revisions 2 and 3.
func preparePassword(passwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return nil, err
	}
	enc, err := charmap.Windows1252.NewEncoder().String(prepped)
	if err != nil {
		return nil, err
	}
	if len(enc) > maxPasswordLength {
		enc = enc[:maxPasswordLength]
	}
	return []byte(enc), nil
}

// SetPassword enables encryption.  The owner password is needed to change
// the permissions of the document.  If user is empty, the document can be
// opened without a password.
//
// Passwords are normalised with SASLprep.  Characters which cannot be
// represented in the Windows-1252 encoding are rejected.
func (d *Document) SetPassword(owner, user string) error {
	const op = "SetPassword"
	if err := d.ready(op); err != nil {
		return err
	}

	ownerBytes, err := preparePassword(owner)
	if err != nil {
		return fmt.Errorf("%w: owner password: %w", newError(op, ErrInvalidPassword), err)
	}
	var userBytes []byte
	if user != "" {
		userBytes, err = preparePassword(user)
		if err != nil {
			return fmt.Errorf("%w: user password: %w", newError(op, ErrInvalidPassword), err)
		}
	}

	d.eng.SetPassword(d.h, ownerBytes, userBytes)
	return d.check(op)
}

// SetPermissions sets the operations allowed to users who open the
// document with the user password.  [Document.SetPassword] must be called
// first.
func (d *Document) SetPermissions(perm Permissions) error {
	if err := d.ready("SetPermissions"); err != nil {
		return err
	}
	d.eng.SetPermission(d.h, uint32(perm))
	return d.check("SetPermissions")
}

// SetEncryptionR2 selects revision 2 of the standard security handler,
// with a 40-bit key.
func (d *Document) SetEncryptionR2() error {
	if err := d.ready("SetEncryptionR2"); err != nil {
		return err
	}
	d.eng.SetEncryptionMode(d.h, engine.EncryptR2, 5)
	return d.check("SetEncryptionR2")
}

// SetEncryptionR3 selects revision 3 of the standard security handler.
// The key length is given in bytes and must be between 5 and 16.
func (d *Document) SetEncryptionR3(keyLen int) error {
	const op = "SetEncryptionR3"
	if keyLen < 5 || keyLen > 16 {
		return newError(op, ErrInvalidEncryptionKeyLength)
	}
	if err := d.ready(op); err != nil {
		return err
	}
	d.eng.SetEncryptionMode(d.h, engine.EncryptR3, uint32(keyLen))
	return d.check(op)
}
