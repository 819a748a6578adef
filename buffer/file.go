package buffer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

const defaultFileMode = 0o644

// Read builds a Buffer from raw UTF-8 text. Lines are split on '\n' only, so
// '\r' stays inside its line and WriteTo reproduces the input exactly.
func Read(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffer: read: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("buffer: read: %w", ErrInvalidUTF8)
	}
	return New(string(data)), nil
}

// WriteTo writes the lines joined by '\n'.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for i, line := range b.lines {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return n, err
			}
			n++
		}
		m, err := bw.WriteString(string(line))
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Load reads the file at path. A missing file yields an error wrapping
// fs.ErrNotExist.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: load %s: %w", path, err)
	}
	defer f.Close()

	b, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("buffer: load %s: %w", path, err)
	}
	return b, nil
}

// Save writes the document to path, keeping the mode of an existing file. It
// returns the number of bytes written.
func (b *Buffer) Save(path string) (int64, error) {
	mode := os.FileMode(defaultFileMode)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, fmt.Errorf("buffer: save %s: %w", path, err)
	}
	n, err := b.WriteTo(f)
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("buffer: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("buffer: save %s: %w", path, err)
	}
	return n, nil
}
