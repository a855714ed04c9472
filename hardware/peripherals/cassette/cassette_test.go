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

package cassette_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher6809/curated"
	"github.com/jetsetilly/gopher6809/hardware/peripherals/cassette"
	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/test"
)

const ms = 1000000

func newCassette(t *testing.T) (*pia.PIA, *cassette.Cassette) {
	t.Helper()
	p := pia.NewPIA("pia2")
	p.WriteRegister(pia.SideA, pia.DataRegister, 0xfc)
	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x34)
	return p, cassette.NewCassette(nil, p)
}

func input(p *pia.PIA) uint8 {
	return p.ReadRegister(pia.SideA, pia.DataRegister) & 0x01
}

func TestPlayback(t *testing.T) {
	p, c := newCassette(t)
	test.ExpectFailure(t, c.Loaded())

	c.Insert(cassette.Recording{
		SampleRate: 1000,
		Data:       []float32{0.5, -0.5, 0.5, -0.5},
	})
	test.ExpectSuccess(t, c.Loaded())
	test.ExpectApproximate(t, cassette.Recording{SampleRate: 1000, Data: make([]float32, 500)}.Seconds(), 0.5, 0.0001)

	// motor is off so the tape does not move
	c.Step(0)
	c.Step(1 * ms)
	test.ExpectEquality(t, input(p), 0x00)
	test.ExpectEquality(t, c.Position(), 0)

	// motor on
	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x3c)
	test.ExpectSuccess(t, c.Motor())
	c.Step(1 * ms)
	test.ExpectEquality(t, input(p), 0x01)
	c.Step(2 * ms)
	test.ExpectEquality(t, input(p), 0x00)

	// motor off
	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x34)
	c.Step(10 * ms)
	test.ExpectEquality(t, int64(c.Position()), 1*ms)

	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x3c)
	c.Step(11 * ms)
	test.ExpectEquality(t, input(p), 0x01)

	// past the end of the tape the input does not change
	c.Step(50 * ms)
	test.ExpectEquality(t, input(p), 0x01)

	c.Rewind()
	test.ExpectEquality(t, c.Position(), 0)

	// a jump in the virtual clock does not move the tape
	c.Resync(100 * ms)
	c.Step(100 * ms)
	test.ExpectEquality(t, c.Position(), 0)

	c.Reset()
	test.ExpectFailure(t, c.Motor())

	c.Eject()
	test.ExpectFailure(t, c.Loaded())
}

func TestDecodeWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, 8000, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:           []int{1000, 5, -1000, 5, 2000, 5},
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	rec, err := cassette.Decode(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.SampleRate, 8000)
	test.DemandEquality(t, len(rec.Data), 3)
	test.ExpectEquality(t, rec.Data[0], 1000)
	test.ExpectEquality(t, rec.Data[1], -1000)
	test.ExpectEquality(t, rec.Data[2], 2000)

	_, c := newCassette(t)
	test.ExpectSuccess(t, c.Load(fn))
	test.ExpectEquality(t, c.Filename, fn)
}

func TestDecodeErrors(t *testing.T) {
	_, err := cassette.Decode("tape.cas")
	test.ExpectSuccess(t, curated.Is(err, cassette.UnsupportedFormat))

	_, err = cassette.Decode(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, cassette.DecodeError))
}
