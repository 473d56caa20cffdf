// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the command-line configuration for rookd: the
// directory of delimited text files to ingest as tables.
package config

import (
	"errors"
	"flag"
)

var dataDir = flag.String("data", "", "directory of delimited text files to ingest, one file per table")

// Config is the resolved, validated command-line configuration.
type Config struct {
	DataDir string
}

// Load reads and validates the process's flags. flag.Parse must already
// have been called.
func Load() (Config, error) {
	if len(*dataDir) == 0 {
		return Config{}, errors.New("config: missing -data directory")
	}
	return Config{DataDir: *dataDir}, nil
}
