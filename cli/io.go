// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given config object from the given TOML file.
// Fields not present in the file keep their current values, so
// the usual order is [SetFromDefaults] followed by Open.
func Open(cfg any, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(cfg, f); err != nil {
		return fmt.Errorf("cli.Open %q: %w", file, err)
	}
	return nil
}

// Read reads the given config object from the given TOML reader.
// Unknown keys are an error.
func Read(cfg any, r io.Reader) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Save writes the given config object to the given TOML file.
func Save(cfg any, file string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0666)
}
