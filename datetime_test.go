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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		in   string
		want DateTime
	}{
		{"D:20240131235959", DateTime{Year: 2024, Month: 1, Day: 31, Hour: 23, Minutes: 59, Seconds: 59}},
		{"D:20240131235959Z", DateTime{Year: 2024, Month: 1, Day: 31, Hour: 23, Minutes: 59, Seconds: 59, UTC: UTCZ}},
		{"D:19991231120000+01'30'", DateTime{Year: 1999, Month: 12, Day: 31, Hour: 12,
			UTC: UTCPlus, OffHour: 1, OffMinutes: 30}},
		{"D:20000101000000-08'00'", DateTime{Year: 2000, Month: 1, Day: 1,
			UTC: UTCMinus, OffHour: 8}},
		{"D:20000101000000+05", DateTime{Year: 2000, Month: 1, Day: 1,
			UTC: UTCPlus, OffHour: 5}},
		{"D:20000101000000?", DateTime{Year: 2000, Month: 1, Day: 1}},
	}
	for _, c := range cases {
		got, err := ParseDateTime(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: (-want +got):\n%s", c.in, d)
		}
	}
}

func TestParseDateTimeErrors(t *testing.T) {
	for _, in := range []string{"", "D:2024", "D:202401312359", "D:2024013123595x"} {
		_, err := ParseDateTime(in)
		if err == nil {
			t.Errorf("%q: missing error", in)
		}
	}
}

func TestDateTimeString(t *testing.T) {
	cases := []struct {
		in   DateTime
		want string
	}{
		{DateTime{Year: 2024, Month: 2, Day: 3, Hour: 4, Minutes: 5, Seconds: 6},
			"D:20240203040506"},
		{DateTime{Year: 2024, Month: 2, Day: 3, UTC: UTCZ},
			"D:20240203000000Z"},
		{DateTime{Year: 2024, Month: 2, Day: 3, UTC: UTCMinus, OffHour: 5, OffMinutes: 30},
			"D:20240203000000-05'30'"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
		back, err := ParseDateTime(c.want)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.in, back); d != "" {
			t.Errorf("round trip (-want +got):\n%s", d)
		}
	}
}

func TestDateTimeOf(t *testing.T) {
	loc := time.FixedZone("", -(3*60+30)*60)
	tm := time.Date(2021, 7, 8, 9, 10, 11, 0, loc)

	dt := DateTimeOf(tm)
	want := DateTime{
		Year: 2021, Month: 7, Day: 8, Hour: 9, Minutes: 10, Seconds: 11,
		UTC: UTCMinus, OffHour: 3, OffMinutes: 30,
	}
	if d := cmp.Diff(want, dt); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if !dt.Time().Equal(tm) {
		t.Errorf("Time() = %v, want %v", dt.Time(), tm)
	}

	utc := DateTimeOf(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	if utc.UTC != UTCZ {
		t.Errorf("UTC time has indicator %d", utc.UTC)
	}
}
