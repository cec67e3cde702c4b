package permutation

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tableDoc is the YAML shape of an exported table.
//
//	size: 256
//	values: [151, 160, 137, ...]
type tableDoc struct {
	Size   int   `yaml:"size"`
	Values []int `yaml:"values,flow"`
}

// MarshalYAML exports the base permutation; the mirrored half is implied.
func (t *Table) MarshalYAML() (interface{}, error) {
	return tableDoc{Size: HalfSize, Values: t.Values()}, nil
}

// UnmarshalYAML imports a table and validates it with FromValues.
// A declared size that disagrees with the number of values is rejected.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	var doc tableDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("UnmarshalYAML: %w", err)
	}
	if doc.Size != 0 && doc.Size != len(doc.Values) {
		return fmt.Errorf("UnmarshalYAML: size %d but %d values: %w", doc.Size, len(doc.Values), ErrBadLength)
	}
	parsed, err := FromValues(doc.Values)
	if err != nil {
		return fmt.Errorf("UnmarshalYAML: %w", err)
	}
	*t = *parsed
	return nil
}

// WriteTo writes the base permutation as HalfSize raw bytes.
// It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf [HalfSize]byte
	for i := range buf {
		buf[i] = byte(t.p[i])
	}
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadFrom reads r until EOF and replaces t with the table written by
// WriteTo. Input must be exactly HalfSize bytes; t is left untouched when it
// is shorter, longer, or not a permutation.
// It implements io.ReaderFrom.
func (t *Table) ReadFrom(r io.Reader) (int64, error) {
	var buf [HalfSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return int64(n), fmt.Errorf("ReadFrom: read %d bytes: %w", n, ErrBadLength)
		}
		return int64(n), fmt.Errorf("ReadFrom: %w", err)
	}
	extra, err := io.Copy(io.Discard, r)
	total := int64(n) + extra
	if err != nil {
		return total, fmt.Errorf("ReadFrom: %w", err)
	}
	if extra > 0 {
		return total, fmt.Errorf("ReadFrom: read %d bytes: %w", total, ErrBadLength)
	}

	vals := make([]int, HalfSize)
	for i, b := range buf {
		vals[i] = int(b)
	}
	parsed, err := FromValues(vals)
	if err != nil {
		return total, fmt.Errorf("ReadFrom: %w", err)
	}
	*t = *parsed
	return total, nil
}
