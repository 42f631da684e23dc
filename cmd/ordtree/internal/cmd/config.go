package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/treesvc"
)

const defaultConfigFile = "ordtree.toml"

// Config is the content of an ordtree configuration file.
type Config struct {
	Fixture    string         `toml:"fixture"`
	Variant    string         `toml:"variant"`
	Color      string         `toml:"color"`       // auto, always or never
	TraceLevel string         `toml:"trace_level"` // debug, info or error
	Service    treesvc.Config `toml:"service"`
}

func defaultConfig() Config {
	return Config{
		Fixture:    "records.yaml",
		Variant:    ordtree.AVLVariant.String(),
		Color:      "auto",
		TraceLevel: "error",
		Service:    treesvc.DefaultConfig(),
	}
}

// loadConfig reads the configuration file at path on top of the defaults.
// A missing file is not an error if it is the default one.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == defaultConfigFile {
			return conf, nil
		}
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	// a relative fixture path is relative to the configuration file
	if md.IsDefined("fixture") && !filepath.IsAbs(conf.Fixture) {
		conf.Fixture = filepath.Join(filepath.Dir(path), conf.Fixture)
	}
	return conf, nil
}
