// Package snapshot writes simulation snapshots to a filesystem.
//
// Every file is written to a temporary name first and renamed into place,
// so a reader never sees a partial snapshot.
package snapshot

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/ioutil"
	"path"

	"teppa/heightmap"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// ErrFormat is returned when loading a file that is not a field snapshot.
var ErrFormat = errors.New("not a field snapshot")

var magic = [8]byte{'t', 'e', 'p', 'p', 'a', 'f', 'l', 'd'}

// Store saves and loads snapshots under the root of a filesystem.
type Store struct {
	// Filesystem is an object representing the directory to use for storage.
	Filesystem billy.Filesystem
}

// Name returns the conventional file name of a snapshot taken at a tick.
func Name(prefix string, tick int, ext string) string {
	return fmt.Sprintf("%s-%06d.%s", prefix, tick, ext)
}

// SaveImage writes img as a PNG.
func (s *Store) SaveImage(name string, img image.Image) error {
	return s.write(name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// SaveField writes a field losslessly: a magic header, the width and height
// as little endian uint32, then every elevation as a little endian float32.
func (s *Store) SaveField(name string, field *heightmap.Field) error {
	return s.write(name, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		header := struct {
			Magic         [8]byte
			Width, Height uint32
		}{magic, uint32(field.Width), uint32(field.Height)}
		if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, field.Data); err != nil {
			return err
		}
		return bw.Flush()
	})
}

// LoadField reads a field written by SaveField.
func (s *Store) LoadField(name string) (*heightmap.Field, error) {
	file, err := s.Filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, err
	}
	const headerSize = 16
	if len(buf) < headerSize || string(buf[:8]) != string(magic[:]) {
		return nil, fmt.Errorf("%w: %q", ErrFormat, name)
	}
	width := int(binary.LittleEndian.Uint32(buf[8:]))
	height := int(binary.LittleEndian.Uint32(buf[12:]))
	body := buf[headerSize:]
	data := make([]float32, len(body)/4)
	if err := binary.Read(bytes.NewReader(body), binary.LittleEndian, data); err != nil {
		return nil, err
	}
	field, err := heightmap.New(width, height, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrFormat, name, err)
	}
	return field, nil
}

func (s *Store) write(name string, encode func(w io.Writer) error) error {
	dir := path.Dir(name)
	if err := s.Filesystem.MkdirAll(dir, 0755); err != nil {
		return err
	}

	temp, err := s.Filesystem.TempFile(dir, path.Base(name))
	if err != nil {
		return err
	}

	if err = encode(temp); err != nil {
		err = multierr.Append(err, temp.Close())
		return multierr.Append(err, s.Filesystem.Remove(temp.Name()))
	}
	if err = temp.Close(); err != nil {
		return multierr.Append(err, s.Filesystem.Remove(temp.Name()))
	}
	if err = s.Filesystem.Rename(temp.Name(), name); err != nil {
		return multierr.Append(err, s.Filesystem.Remove(temp.Name()))
	}
	return nil
}
