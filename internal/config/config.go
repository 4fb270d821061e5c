// Package config loads named generation presets from TOML files.
//
// A presets file groups parameter sets by generator:
//
//	[blob.chunky]
//	points = 5
//	randomness = 0.4
//
//	[pack.dense]
//	count = 80
//	radius-min = 3
//	radius-max = 6
//
// Preset values act as defaults; flags given explicitly on the command
// line always win. Fields are pointers so an absent key is
// distinguishable from a zero value.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/inkblot/pkg/errors"
)

// DefaultPath is the presets file looked up when none is given.
const DefaultPath = "inkblot.toml"

// BlobPreset holds optional overrides for the blob command.
type BlobPreset struct {
	Points     *int     `toml:"points"`
	BaseRadius *float64 `toml:"base-radius"`
	Randomness *float64 `toml:"randomness"`
	Tension    *float64 `toml:"tension"`
	Width      *float64 `toml:"width"`
	Height     *float64 `toml:"height"`
	LineWidth  *float64 `toml:"line-width"`
	Outline    *bool    `toml:"outline"`
}

// PackPreset holds optional overrides for the pack command.
type PackPreset struct {
	Size          *float64 `toml:"size"`
	InnerDX       *float64 `toml:"inner-dx"`
	InnerDY       *float64 `toml:"inner-dy"`
	InnerFraction *float64 `toml:"inner-fraction"`
	RadiusMin     *float64 `toml:"radius-min"`
	RadiusMax     *float64 `toml:"radius-max"`
	MinGap        *float64 `toml:"min-gap"`
	Count         *int     `toml:"count"`
	MaxAttempts   *int     `toml:"max-attempts"`
	TotalAttempts *int     `toml:"total-attempts"`
}

// File is a parsed presets file.
type File struct {
	Blob map[string]BlobPreset `toml:"blob"`
	Pack map[string]PackPreset `toml:"pack"`
}

// Load parses the presets file at path. Unknown keys are rejected so a
// typo in a preset does not silently fall back to defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "reading presets file %s", path)
	}

	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parsing presets file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown key %q in presets file %s", undecoded[0].String(), path)
	}
	return &f, nil
}

// BlobPreset looks up a named blob preset.
func (f *File) BlobPreset(name string) (BlobPreset, error) {
	p, ok := f.Blob[name]
	if !ok {
		return BlobPreset{}, errors.New(errors.ErrCodeInvalidPreset, "no blob preset named %q", name)
	}
	return p, nil
}

// PackPreset looks up a named pack preset.
func (f *File) PackPreset(name string) (PackPreset, error) {
	p, ok := f.Pack[name]
	if !ok {
		return PackPreset{}, errors.New(errors.ErrCodeInvalidPreset, "no pack preset named %q", name)
	}
	return p, nil
}
