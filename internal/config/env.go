// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv exports the variables of a dotenv file into the process
// environment without overriding variables that are already set.
//
// An explicitly named file must exist. Without a name the default ".env" is
// loaded only if present.
func loadDotEnv(path string) error {
	if path == "" {
		path = os.Getenv("ENV_FILE")
	}

	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}

// envFileFromArgs looks up the -env-file flag before the flag set is parsed,
// because the dotenv layer has to be applied ahead of the env layer.
func envFileFromArgs(args []string) string {
	for i, arg := range args {
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}

		if value, ok := strings.CutPrefix(name, "env-file="); ok {
			return value
		}
		if name == "env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}
