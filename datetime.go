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
	"errors"
	"fmt"
	"time"

	"seehuhn.de/go/haru/engine"
)

// UTCIndicator describes how a [DateTime] relates to universal time.
type UTCIndicator uint8

// Possible values for UTCIndicator.
const (
	// UTCNone means that no relation to universal time is given.
	UTCNone UTCIndicator = iota

	// UTCPlus means that local time is later than UT.
	UTCPlus

	// UTCMinus means that local time is earlier than UT.
	UTCMinus

	// UTCZ means that the time is universal time.
	UTCZ
)

func (u UTCIndicator) char() byte {
	switch u {
	case UTCPlus:
		return '+'
	case UTCMinus:
		return '-'
	case UTCZ:
		return 'Z'
	default:
		return ' '
	}
}

func utcIndicatorOf(c byte) UTCIndicator {
	switch c {
	case '+':
		return UTCPlus
	case '-':
		return UTCMinus
	case 'Z':
		return UTCZ
	default:
		return UTCNone
	}
}

// DateTime is a date as stored in the document information dictionary.
//
// The fields are not validated here.  Out of range values are reported
// by the engine as [ErrInvalidDateTime] when the date is used.
type DateTime struct {
	Year, Month, Day       int
	Hour, Minutes, Seconds int

	UTC        UTCIndicator
	OffHour    int
	OffMinutes int
}

// DateTimeOf converts a [time.Time] to a DateTime.
func DateTimeOf(t time.Time) DateTime {
	res := DateTime{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minutes: t.Minute(),
		Seconds: t.Second(),
	}

	_, offset := t.Zone()
	offset /= 60
	switch {
	case offset > 0:
		res.UTC = UTCPlus
	case offset < 0:
		res.UTC = UTCMinus
		offset = -offset
	default:
		res.UTC = UTCZ
	}
	res.OffHour = offset / 60
	res.OffMinutes = offset % 60
	return res
}

// Time converts d to a [time.Time].
// If no UTC relation is given, the time is interpreted as UTC.
func (d DateTime) Time() time.Time {
	loc := time.UTC
	switch d.UTC {
	case UTCPlus, UTCMinus:
		offset := (d.OffHour*60 + d.OffMinutes) * 60
		if d.UTC == UTCMinus {
			offset = -offset
		}
		if offset != 0 {
			loc = time.FixedZone("", offset)
		}
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day,
		d.Hour, d.Minutes, d.Seconds, 0, loc)
}

// String returns the PDF date string for d.
func (d DateTime) String() string {
	s := fmt.Sprintf("D:%04d%02d%02d%02d%02d%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minutes, d.Seconds)
	switch d.UTC {
	case UTCZ:
		s += "Z"
	case UTCPlus, UTCMinus:
		s += fmt.Sprintf("%c%02d'%02d'", d.UTC.char(), d.OffHour, d.OffMinutes)
	}
	return s
}

func (d DateTime) toEngine() engine.Date {
	return engine.Date{
		Year:       d.Year,
		Month:      d.Month,
		Day:        d.Day,
		Hour:       d.Hour,
		Minutes:    d.Minutes,
		Seconds:    d.Seconds,
		Ind:        d.UTC.char(),
		OffHour:    d.OffHour,
		OffMinutes: d.OffMinutes,
	}
}

// errShortDate is returned by ParseDateTime for strings which are too
// short to contain the date and time fields.
var errShortDate = errors.New("date string too short")

// ParseDateTime decodes a date in the fixed-width format used by the
// engine for the document information dictionary, for example
// "D:20240131235959+01'00'".
//
// The first two characters are not inspected.  Characters after position
// 16 are optional: if the string ends there, or if the UTC indicator is not
// one of '+', '-' and 'Z', the result has [UTCNone].  Missing offset digits
// give zero offsets.
func ParseDateTime(raw string) (DateTime, error) {
	if len(raw) < 16 {
		return DateTime{}, fmt.Errorf("invalid date %q: %w", raw, errShortDate)
	}

	var d DateTime
	fields := []struct {
		dst        *int
		start, end int
	}{
		{&d.Year, 2, 6},
		{&d.Month, 6, 8},
		{&d.Day, 8, 10},
		{&d.Hour, 10, 12},
		{&d.Minutes, 12, 14},
		{&d.Seconds, 14, 16},
	}
	for _, f := range fields {
		v, ok := parseDigits(raw[f.start:f.end])
		if !ok {
			return DateTime{}, fmt.Errorf("invalid date %q: bad digits %q",
				raw, raw[f.start:f.end])
		}
		*f.dst = v
	}
	if len(raw) <= 16 {
		return d, nil
	}

	d.UTC = utcIndicatorOf(raw[16])
	if len(raw) >= 19 {
		if v, ok := parseDigits(raw[17:19]); ok {
			d.OffHour = v
		}
	}
	if len(raw) >= 22 {
		if v, ok := parseDigits(raw[20:22]); ok {
			d.OffMinutes = v
		}
	}
	return d, nil
}

func parseDigits(s string) (int, bool) {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = 10*v + int(c-'0')
	}
	return v, true
}
