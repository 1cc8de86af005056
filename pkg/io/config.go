package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/errors"
)

// ReadConfig loads a layout configuration from path, picking the decoder by
// extension: .toml for TOML, .json for JSON. The config is returned as
// decoded; semantic validation is the caller's job.
func ReadConfig(path string) (*anchor.Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open config: %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(f)
	case ".json":
		return DecodeJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported config format %s (want .toml or .json)", filepath.Ext(path))
	}
}

// DecodeTOML decodes a TOML configuration from r.
func DecodeTOML(r io.Reader) (*anchor.Config, error) {
	var cfg anchor.Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML config")
	}
	return &cfg, nil
}

// DecodeJSON decodes a JSON configuration from r.
func DecodeJSON(r io.Reader) (*anchor.Config, error) {
	var cfg anchor.Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON config")
	}
	return &cfg, nil
}

// WriteConfig writes a configuration as TOML to path. Used by the init
// command to materialize starter configs.
func WriteConfig(cfg *anchor.Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return EncodeTOML(cfg, f)
}

// EncodeTOML encodes a configuration as TOML to w.
func EncodeTOML(cfg *anchor.Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode TOML config")
	}
	return nil
}
