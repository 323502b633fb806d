package record

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Encode returns the PGN, zstd-compressed when compress is set.
func (r *Record) Encode(compress bool) ([]byte, error) {
	return encode(r.PGN(), compress)
}

func encode(text string, compress bool) ([]byte, error) {
	data := []byte(text)
	if !compress {
		return data, nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// Write writes the encoded record to w.
func (r *Record) Write(w io.Writer, compress bool) error {
	data, err := r.Encode(compress)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the encoded record to path, replacing any existing file.
func (r *Record) WriteFile(path string, compress bool) error {
	data, err := r.Encode(compress)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// WriteGames writes several PGN games to one file, separated by blank
// lines, as a single zstd frame when compress is set.
func WriteGames(path string, pgns []string, compress bool) error {
	data, err := encode(strings.Join(pgns, "\n\n"), compress)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: record files are meant to be shared
		return fmt.Errorf("write record %s: %w", path, err)
	}
	return nil
}

// Decode reverses Encode.
func Decode(data []byte, compressed bool) (string, error) {
	if !compressed {
		return string(data), nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return "", fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return "", fmt.Errorf("decode record: %w", err)
	}
	return string(out), nil
}
