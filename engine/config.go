// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/richcluster/linkage"
	"github.com/katalvlaran/richcluster/similarity"
	"github.com/katalvlaran/richcluster/term"
)

// Mode selects the seed/merge strategy pair.
type Mode string

const (
	// ModeLinkage grows greedy seeds and merges them by linkage.
	ModeLinkage Mode = "linkage"
	// ModeDavid qualifies seeds by neighborhood density and merges them by Dice overlap.
	ModeDavid Mode = "david"
)

var (
	// ErrUnknownMode is returned for a mode other than linkage or david.
	ErrUnknownMode = errors.New("engine: unknown clustering mode")

	// ErrInvalidConfig is returned for out-of-range config values.
	ErrInvalidConfig = errors.New("engine: invalid config")
)

// Config holds every knob of a run. Field names follow the YAML keys.
type Config struct {
	Mode             Mode    `yaml:"mode" json:"mode"`
	SimilarityMetric string  `yaml:"similarity_metric" json:"similarity_metric"`
	SimilarityCutoff float64 `yaml:"similarity_cutoff" json:"similarity_cutoff"`

	// Linkage mode.
	LinkageMethod  string  `yaml:"linkage_method" json:"linkage_method"`
	LinkageCutoff  float64 `yaml:"linkage_cutoff" json:"linkage_cutoff"`
	MaxMergePasses int     `yaml:"max_merge_passes" json:"max_merge_passes" validate:"gte=0"`

	// David mode.
	InitialGroupMembership   int     `yaml:"initial_group_membership" json:"initial_group_membership" validate:"gte=1"`
	FinalGroupMembership     int     `yaml:"final_group_membership" json:"final_group_membership" validate:"gte=0"`
	MultipleLinkageThreshold float64 `yaml:"multiple_linkage_threshold" json:"multiple_linkage_threshold"`

	GeneDelimiter string `yaml:"gene_delimiter" json:"gene_delimiter" validate:"required"`
	// Workers bounds the matrix build; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers" validate:"gte=0"`
}

// DefaultConfig returns linkage-mode defaults with kappa similarity and
// the DAVID "medium" thresholds filled in for david mode.
func DefaultConfig() Config {
	return Config{
		Mode:                     ModeLinkage,
		SimilarityMetric:         similarity.Kappa.String(),
		SimilarityCutoff:         0.5,
		LinkageMethod:            linkage.Average.String(),
		LinkageCutoff:            0.5,
		InitialGroupMembership:   3,
		FinalGroupMembership:     3,
		MultipleLinkageThreshold: 0.5,
		GeneDelimiter:            term.DefaultDelimiter,
	}
}

// LoadConfig reads a YAML config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("engine: open config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes YAML from r over DefaultConfig and validates the
// result. Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("engine: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field. Unknown names wrap the
// package sentinel of their kind; bounds violations wrap ErrInvalidConfig.
func (c Config) Validate() error {
	_, err := c.parse()

	return err
}

// parsed is a Config with its names resolved.
type parsed struct {
	mode   Mode
	metric similarity.Metric
	method linkage.Method
}

// validate checks the bounds in the struct tags and reports fields by
// their YAML key.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	})

	return v
}()

func (c Config) parse() (parsed, error) {
	var p parsed
	p.mode = Mode(strings.ToLower(string(c.Mode)))
	if p.mode != ModeLinkage && p.mode != ModeDavid {
		return p, fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}

	var err error
	if p.metric, err = similarity.ParseMetric(c.SimilarityMetric); err != nil {
		return p, err
	}
	if err = validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return p, fmt.Errorf("%w: %s = %v fails %s%s", ErrInvalidConfig, f.Field(), f.Value(), f.Tag(), paramSuffix(f.Param()))
		}

		return p, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if p.mode == ModeDavid {
		return p, nil
	}
	if p.method, err = linkage.ParseMethod(c.LinkageMethod); err != nil {
		return p, err
	}

	return p, nil
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}

	return "=" + param
}
