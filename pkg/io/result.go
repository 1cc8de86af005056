package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/errors"
)

// WriteResult encodes a generated layout as indented JSON to w.
// The output can be re-imported with [ReadResult].
func WriteResult(r *anchor.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	return nil
}

// ExportResult writes a generated layout to a JSON file at path.
func ExportResult(r *anchor.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteResult(r, f)
}

// ReadResult decodes a previously exported layout from r.
func ReadResult(r io.Reader) (*anchor.Result, error) {
	var result anchor.Result
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode result")
	}
	return &result, nil
}

// ImportResult reads a JSON layout file at path.
func ImportResult(path string) (*anchor.Result, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "result file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadResult(f)
}
