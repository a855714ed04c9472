// This file is part of Gopher6809.
//
// Gopher6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6809.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/disk"
	"github.com/jetsetilly/gopher6809/modalflag"
	"github.com/jetsetilly/gopher6809/test"
)

func newModes(args ...string) (*modalflag.Modes, *test.CompareWriter) {
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return md, w
}

func TestNewDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "blank.dsk")

	md, _ := newModes("NEWDISK", fn)
	test.ExpectEquality(t, launch(md), 0)

	st, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.Size(), int64(disk.ImageSize))

	// existing files are not overwritten
	md, _ = newModes("NEWDISK", fn)
	test.ExpectEquality(t, launch(md), 20)

	md, _ = newModes("NEWDISK")
	test.ExpectEquality(t, launch(md), 20)
}

func TestHeadless(t *testing.T) {
	// ROM with a reset vector pointing at BRA *
	rom := make([]uint8, 0x2000)
	rom[0] = 0x20
	rom[1] = 0xfe
	rom[0x1ffe] = 0xa0
	rom[0x1fff] = 0x00

	fn := filepath.Join(t.TempDir(), "test.rom")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0644))

	md, w := newModes("HEADLESS", "-rom1", fn, "-fields", "2")
	test.ExpectEquality(t, launch(md), 0)
	test.ExpectSuccess(t, w.Contains("PC="))

	// registers and next instruction followed by the text screen
	test.ExpectEquality(t, len(w.Lines()), 18)
	test.ExpectSuccess(t, w.Contains("a000"))

	// no ROMs
	md, _ = newModes("HEADLESS", "-fields", "1")
	test.ExpectEquality(t, launch(md), 20)
}

func TestBadFlag(t *testing.T) {
	md, _ := newModes("HEADLESS", "-nosuchflag")
	test.ExpectEquality(t, launch(md), 20)
}

// the number of open file descriptors for the process
func openFiles(t *testing.T) int {
	t.Helper()
	fds, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("open file count not available on this platform")
	}
	return len(fds)
}

func TestLoadFailureReleasesDisks(t *testing.T) {
	dir := t.TempDir()

	rom := filepath.Join(dir, "test.rom")
	test.DemandSuccess(t, os.WriteFile(rom, make([]uint8, 0x2000), 0644))

	dsk := filepath.Join(dir, "test.dsk")
	test.DemandSuccess(t, disk.CreateBlankImage(dsk))

	before := openFiles(t)

	// the disk image is opened before the cassette fails to load
	md, w := newModes("HEADLESS", "-rom1", rom, "-disk0", dsk, "-cassette", filepath.Join(dir, "tape.xyz"))
	test.ExpectEquality(t, launch(md), 20)
	test.ExpectSuccess(t, w.Contains("cassette"))

	test.ExpectEquality(t, openFiles(t), before)
}
