package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// DecodeJSON strictly decodes a single JSON document from r into dst.
// Unknown fields and trailing data are rejected so malformed fixtures fail at load.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", dst, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to unmarshal %T: trailing data after document", dst)
	}
	return nil
}

// ReadJSONFromFS loads the named JSON document from fsys into dst.
func ReadJSONFromFS(fsys fs.FS, name string, dst any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", name, err)
	}
	defer f.Close()

	if err := DecodeJSON(f, dst); err != nil {
		return fmt.Errorf("file %q: %w", name, err)
	}
	return nil
}
