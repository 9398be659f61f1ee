// Package config loads fileset mapping documents: plain-text files with
// `algo=<name>` lines and `"<real-path>" => <virtual-path>` mapping
// lines. Anything else is ignored.
package config

import (
	"fmt"
	"os"
	"strings"

	"fileset/internal/hash"
)

const manifestExt = ".fsd"

// Mapping binds one real root directory to a virtual root prefix.
type Mapping struct {
	RealRoot    string
	VirtualRoot string
}

// Config is one parsed mapping document. Mappings keep file order,
// which decides both candidate precedence and reverse resolution.
type Config struct {
	Path     string
	Algo     string
	Mappings []Mapping
}

// Load parses the document at path and validates the selected hashing
// algorithm eagerly, so a bad algorithm never fails mid-scan.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := &Config{
		Path: path,
		Algo: "murmur128",
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "algo="):
			cfg.Algo = strings.SplitN(line, "=", 2)[1]

		case strings.Contains(line, "=>"):
			parts := strings.SplitN(line, "=>", 2)
			real := strings.Trim(strings.TrimSpace(parts[0]), `"`)
			virtual := strings.TrimSpace(parts[1])
			cfg.Mappings = append(cfg.Mappings, Mapping{
				RealRoot:    real,
				VirtualRoot: virtual,
			})
		}
	}

	if _, err := hash.Lookup(cfg.Algo); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Hasher returns the hasher the document selected.
func (c *Config) Hasher() hash.Hasher {
	h, err := hash.Lookup(c.Algo)
	if err != nil {
		// Load already validated the name.
		panic(err)
	}

	return h
}

// ManifestPath derives the persisted manifest location from the config
// path: same stem, reserved extension.
func (c *Config) ManifestPath() string {
	return ManifestPath(c.Path)
}

func ManifestPath(configPath string) string {
	stem := configPath
	if i := strings.LastIndexByte(configPath, '.'); i > strings.LastIndexAny(configPath, `/\`) {
		stem = configPath[:i]
	}

	return stem + manifestExt
}
