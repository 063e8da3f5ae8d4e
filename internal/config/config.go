// Package config resolves the loader configuration from flags, the process
// environment and an optional dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/OpenTraceLab/prepack/pkg/clock"
)

// DeviceKey is the environment variable naming the target device.
const DeviceKey = "DEVICE"

// DefaultEnvFile is read when no env file is named explicitly.
const DefaultEnvFile = ".env"

// Lookup reads a single environment variable.
type Lookup func(key string) (string, bool)

// Options holds the raw inputs to Resolve.
type Options struct {
	Device  string // explicit device, overrides everything else
	Dir     string // build root containing src/
	EnvFile string // dotenv file; empty means DefaultEnvFile if present
	Lookup  Lookup // environment lookup; nil means no environment
}

// Resolve builds a clock.Config. Precedence for the device: Options.Device,
// then Lookup(DEVICE), then DEVICE from the dotenv file. An unresolved device
// is left empty for the loader to reject. The process environment is never
// modified.
func Resolve(opts Options) (clock.Config, error) {
	cfg := clock.Config{Device: opts.Device, Dir: opts.Dir}
	if cfg.Device != "" {
		return cfg, nil
	}

	if opts.Lookup != nil {
		if v, ok := opts.Lookup(DeviceKey); ok && v != "" {
			cfg.Device = v
			return cfg, nil
		}
	}

	env, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return cfg, err
	}
	cfg.Device = env[DeviceKey]
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	env, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read env file %s: %w", path, err)
	}
	return env, nil
}

// OSLookup reads from the process environment.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
