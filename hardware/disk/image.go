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

package disk

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/jetsetilly/gopher6809/curated"
)

// geometry of the disk images.
const (
	Tracks       = 35
	Sectors      = 18
	SectorLength = 256
	ImageSize    = Tracks * Sectors * SectorLength
)

// Sentinal errors returned by image functions.
const (
	ImageError  = "disk: image: %v"
	ImageExists = "disk: image: %s already exists"
)

// Image is a disk image. The contents of the file are held in memory and
// written back to the file with Flush().
type Image struct {
	Filename string

	data []uint8
	file *os.File

	// the image file could not be opened for writing
	WriteProtected bool

	// data has changed since the last flush
	dirty bool
}

// LoadImage opens the named file. If the file cannot be opened for writing
// the image is write protected.
func LoadImage(filename string) (*Image, error) {
	img := &Image{Filename: filename}

	f, err := os.OpenFile(filename, os.O_RDWR, 0)
	if err != nil {
		if !errors.Is(err, fs.ErrPermission) {
			return nil, curated.Errorf(ImageError, err)
		}
		f, err = os.Open(filename)
		if err != nil {
			return nil, curated.Errorf(ImageError, err)
		}
		img.WriteProtected = true
	}

	img.data, err = io.ReadAll(f)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(ImageError, err)
	}

	if img.WriteProtected {
		f.Close()
	} else {
		img.file = f
	}

	return img, nil
}

// NewImage creates an image that is not backed by a file. Useful for testing.
func NewImage(data []uint8, writeProtected bool) *Image {
	return &Image{
		Filename:       "memory",
		data:           data,
		WriteProtected: writeProtected,
	}
}

// CreateBlankImage creates a new file of the correct size for a disk image,
// filled with zero bytes. An existing file will not be overwritten.
func CreateBlankImage(filename string) error {
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return curated.Errorf(ImageExists, filename)
		}
		return curated.Errorf(ImageError, err)
	}
	defer f.Close()

	err = f.Truncate(ImageSize)
	if err != nil {
		return curated.Errorf(ImageError, err)
	}

	return nil
}

// Size returns the number of bytes in the image.
func (img *Image) Size() int {
	return len(img.data)
}

func (img *Image) read(offset int) (uint8, bool) {
	if offset < 0 || offset >= len(img.data) {
		return 0, false
	}
	return img.data[offset], true
}

func (img *Image) write(offset int, v uint8) {
	if offset < 0 || offset >= len(img.data) {
		return
	}
	img.data[offset] = v
	img.dirty = true
}

// Flush writes any changed data back to the file.
func (img *Image) Flush() error {
	if !img.dirty || img.file == nil {
		return nil
	}
	_, err := img.file.WriteAt(img.data, 0)
	if err != nil {
		return curated.Errorf(ImageError, err)
	}
	img.dirty = false
	return nil
}

// Close flushes the image and closes the file.
func (img *Image) Close() error {
	err := img.Flush()
	if img.file != nil {
		img.file.Close()
		img.file = nil
	}
	return err
}
