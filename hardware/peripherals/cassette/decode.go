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

package cassette

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher6809/curated"
)

// Error patterns returned by Decode().
const (
	UnsupportedFormat = "cassette: unsupported format (%s)"
	DecodeError       = "cassette: %s: %v"
)

// Recording is a mono PCM recording with silence at zero.
type Recording struct {
	SampleRate float64
	Data       []float32
}

// Seconds returns the length of the recording.
func (r Recording) Seconds() float64 {
	if r.SampleRate == 0 {
		return 0
	}
	return float64(len(r.Data)) / r.SampleRate
}

// Decode reads a recording from the file. The format is chosen by the file
// extension.
func Decode(filename string) (Recording, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".wav" && ext != ".mp3" {
		return Recording{}, curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Open(filename)
	if err != nil {
		return Recording{}, curated.Errorf(DecodeError, filename, err)
	}
	defer f.Close()

	if ext == ".wav" {
		return decodeWAV(f)
	}
	return decodeMP3(f)
}

func decodeWAV(f io.ReadSeeker) (Recording, error) {
	var r Recording

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return r, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return r, curated.Errorf(DecodeError, "wav", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// eight bit wav data is unsigned
	var bias float32
	if dec.BitDepth == 8 {
		bias = 128
	}

	r.SampleRate = float64(dec.SampleRate)
	r.Data = make([]float32, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		r.Data = append(r.Data, float32(buf.Data[i])-bias)
	}

	return r, nil
}

func decodeMP3(f io.Reader) (Recording, error) {
	var r Recording

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return r, curated.Errorf(DecodeError, "mp3", err)
	}

	// the decoded stream is always 16bit little endian with two channels
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			r.Data = append(r.Data, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return r, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	r.SampleRate = float64(dec.SampleRate())

	return r, nil
}
