package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// OptionKey is the name of a recognised per-section option.
type OptionKey string

const (
	// KeyTrials is the number of times the workload runs at each MPL
	KeyTrials OptionKey = "trials"
	// KeyMinMPL is the first YCSB thread count of the sweep
	KeyMinMPL OptionKey = "min_mpl"
	// KeyMaxMPL is the last YCSB thread count of the sweep
	KeyMaxMPL OptionKey = "max_mpl"
	// KeyIncMPL is the thread count increment between sweep steps
	KeyIncMPL OptionKey = "inc_mpl"
	// KeyOutput is the result output format
	KeyOutput OptionKey = "output"
	// KeyWorkload is the YCSB workload file path
	KeyWorkload OptionKey = "workload"
	// KeyOutputPlots enables plot generation
	KeyOutputPlots OptionKey = "output_plots"
)

// KeyTableName is the optional key holding the benchmark table name. It is
// resolved separately from the option set and falls back to
// Registry.DefaultTableName.
const KeyTableName = "tablename"

// Options holds the coerced option values of one section. It is shared by
// value between every database declared in that section.
type Options struct {
	Trials      int    `json:"trials" yaml:"trials"`
	MinMPL      int    `json:"min_mpl" yaml:"min_mpl"`
	MaxMPL      int    `json:"max_mpl" yaml:"max_mpl"`
	IncMPL      int    `json:"inc_mpl" yaml:"inc_mpl"`
	Output      string `json:"output" yaml:"output"`
	Workload    string `json:"workload" yaml:"workload"`
	OutputPlots bool   `json:"output_plots" yaml:"output_plots"`

	resolved []OptionKey
}

// Has reports whether key was resolved from the config file.
func (o Options) Has(key OptionKey) bool {
	return slices.Contains(o.resolved, key)
}

// Keys returns the resolved option keys in resolution order.
func (o Options) Keys() []OptionKey {
	return slices.Clone(o.resolved)
}

// MaxSweepLevels bounds the number of concurrency levels in one sweep.
const MaxSweepLevels = 1 << 16

// MPLs returns the concurrency sweep min_mpl, min_mpl+inc_mpl, ... up to and
// including max_mpl. The sweep is empty when inc_mpl is not positive,
// min_mpl exceeds max_mpl, or it would have more than MaxSweepLevels levels.
func (o Options) MPLs() []int {
	steps, ok := o.sweepSteps()
	if !ok {
		return nil
	}
	mpls := make([]int, 0, steps+1)
	mpl := o.MinMPL
	for i := uint64(0); i <= steps; i++ {
		mpls = append(mpls, mpl)
		mpl += o.IncMPL
	}
	return mpls
}

// sweepSteps returns the number of increments after min_mpl. The range is
// measured in uint64 so that any pair of ints fits.
func (o Options) sweepSteps() (uint64, bool) {
	if o.IncMPL <= 0 || o.MinMPL > o.MaxMPL {
		return 0, false
	}
	steps := uint64(o.MaxMPL-o.MinMPL) / uint64(o.IncMPL)
	if steps >= MaxSweepLevels {
		return steps, false
	}
	return steps, true
}

// Coercion converts the raw value of k and stores it in o.
type Coercion func(o *Options, k *ini.Key) error

// IntOption parses a base-10 integer into the field returned by field.
func IntOption(field func(*Options) *int) Coercion {
	return func(o *Options, k *ini.Key) error {
		v, err := strconv.ParseInt(strings.TrimSpace(k.String()), 10, 0)
		if err != nil {
			return err
		}
		*field(o) = int(v)
		return nil
	}
}

// boolTokens are the accepted boolean spellings, matched case-insensitively.
var boolTokens = map[string]bool{
	"1": true, "yes": true, "true": true, "on": true,
	"0": false, "no": false, "false": false, "off": false,
}

// BoolOption parses 1/yes/true/on or 0/no/false/off, in any case, into the
// field returned by field.
func BoolOption(field func(*Options) *bool) Coercion {
	return func(o *Options, k *ini.Key) error {
		v, ok := boolTokens[strings.ToLower(strings.TrimSpace(k.String()))]
		if !ok {
			return fmt.Errorf("not a boolean: %q", k.String())
		}
		*field(o) = v
		return nil
	}
}

// StringOption stores the raw value unchanged.
func StringOption(field func(*Options) *string) Coercion {
	return TransformOption(field, nil)
}

// TransformOption stores the raw value after passing it through transform.
// A nil transform behaves like StringOption.
func TransformOption(field func(*Options) *string, transform func(string) string) Coercion {
	return func(o *Options, k *ini.Key) error {
		v := k.String()
		if transform != nil {
			v = transform(v)
		}
		*field(o) = v
		return nil
	}
}

// Schema maps every recognised option name to its coercion. Keys fixes the
// resolution order; a key without an entry in Coercions is reported and
// skipped.
type Schema struct {
	Keys      []OptionKey
	Coercions map[OptionKey]Coercion
}

// DefaultSchema returns the runner option table. Each call returns a new
// value so callers may extend it without affecting other loaders.
func DefaultSchema() Schema {
	return Schema{
		Keys: []OptionKey{
			KeyTrials,
			KeyMinMPL,
			KeyMaxMPL,
			KeyIncMPL,
			KeyOutput,
			KeyWorkload,
			KeyOutputPlots,
		},
		Coercions: map[OptionKey]Coercion{
			KeyTrials:      IntOption(func(o *Options) *int { return &o.Trials }),
			KeyMinMPL:      IntOption(func(o *Options) *int { return &o.MinMPL }),
			KeyMaxMPL:      IntOption(func(o *Options) *int { return &o.MaxMPL }),
			KeyIncMPL:      IntOption(func(o *Options) *int { return &o.IncMPL }),
			KeyOutput:      TransformOption(func(o *Options) *string { return &o.Output }, strings.ToLower),
			KeyWorkload:    StringOption(func(o *Options) *string { return &o.Workload }),
			KeyOutputPlots: BoolOption(func(o *Options) *bool { return &o.OutputPlots }),
		},
	}
}
