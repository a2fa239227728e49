package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const defaultMaxDots = 384

// printerConfig is the profile a job is encoded for.
type printerConfig struct {
	Encoding string
	Defaults bool
	MaxDots  int
	Cut      bool
	Beep     bool
}

func defaultPrinterConfig() printerConfig {
	return printerConfig{
		Encoding: "ascii",
		Defaults: true,
		MaxDots:  defaultMaxDots,
	}
}

// job is a decoded job file.
type job struct {
	Printer printerConfig
	Steps   []step
	// dir resolves relative image paths.
	dir string
}

type filePrinter struct {
	Encoding *string `toml:"encoding" yaml:"encoding"`
	Defaults *bool   `toml:"defaults" yaml:"defaults"`
	MaxDots  *int    `toml:"max_dots" yaml:"max_dots"`
	Cut      *bool   `toml:"cut" yaml:"cut"`
	Beep     *bool   `toml:"beep" yaml:"beep"`
}

type fileJob struct {
	Printer filePrinter `toml:"printer" yaml:"printer"`
	Steps   []step      `toml:"steps" yaml:"steps"`
}

// step is one encoder operation. Which fields apply depends on Op.
type step struct {
	Op         string `toml:"op" yaml:"op"`
	Text       string `toml:"text" yaml:"text"`
	Encoding   string `toml:"encoding" yaml:"encoding"`
	On         *bool  `toml:"on" yaml:"on"`
	Align      string `toml:"align" yaml:"align"`
	Style      string `toml:"style" yaml:"style"`
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Lines      int    `toml:"lines" yaml:"lines"`
	System     string `toml:"system" yaml:"system"`
	Label      string `toml:"label" yaml:"label"`
	Font       string `toml:"font" yaml:"font"`
	Spacing    int    `toml:"spacing" yaml:"spacing"`
	ModuleSize int    `toml:"module_size" yaml:"module_size"`
	Level      string `toml:"level" yaml:"level"`
	Model      int    `toml:"model" yaml:"model"`
	Path       string `toml:"path" yaml:"path"`
	Status     string `toml:"status" yaml:"status"`
	Hex        string `toml:"hex" yaml:"hex"`
}

func (s step) enabled() bool {
	return s.On == nil || *s.On
}

// loadJob reads a TOML or YAML job file, chosen by extension.
func loadJob(path string) (job, error) {
	var raw fileJob
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return job{}, fmt.Errorf("load job: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return job{}, fmt.Errorf("load job: unknown keys %v", undecoded)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return job{}, fmt.Errorf("load job: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return job{}, fmt.Errorf("load job: %w", err)
		}
	default:
		return job{}, fmt.Errorf("load job: unsupported file type %q", filepath.Ext(path))
	}

	j := job{
		Printer: defaultPrinterConfig(),
		Steps:   raw.Steps,
		dir:     filepath.Dir(path),
	}
	p := raw.Printer
	if p.Encoding != nil {
		j.Printer.Encoding = strings.TrimSpace(*p.Encoding)
	}
	if p.Defaults != nil {
		j.Printer.Defaults = *p.Defaults
	}
	if p.MaxDots != nil {
		if *p.MaxDots < 0 {
			return job{}, fmt.Errorf("load job: max_dots must not be negative, got %d", *p.MaxDots)
		}
		j.Printer.MaxDots = *p.MaxDots
	}
	if p.Cut != nil {
		j.Printer.Cut = *p.Cut
	}
	if p.Beep != nil {
		j.Printer.Beep = *p.Beep
	}
	if len(j.Steps) == 0 {
		return job{}, errors.New("load job: no steps")
	}
	return j, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(s)
	return hex.DecodeString(s)
}
