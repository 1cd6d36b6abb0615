package options

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Options struct {
	ConfigFile string
	Seed       uint64
	Count      int
	KeyRange   int
}

func New() *Options {
	return &Options{
		Count:    10000,
		KeyRange: 1 << 12,
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "C", o.ConfigFile,
		"Read configuration from specified `FILE`, support JSON, TOML, YAML, HCL, or Java properties formats.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed,
		"Tower-height generator seed, 0 draws one from the process source")
	fs.IntVar(&o.Count, "count", o.Count,
		"Number of keys the fill command inserts")
	fs.IntVar(&o.KeyRange, "key-range", o.KeyRange,
		"Keys are drawn from [0, key-range)")
}

// Complete loads the configuration file, if any, letting it override the
// flag defaults.
func (o *Options) Complete() error {
	if o.ConfigFile == "" {
		return nil
	}
	viper.SetConfigFile(o.ConfigFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file(%s): %w", o.ConfigFile, err)
	}
	if viper.IsSet("seed") {
		o.Seed = viper.GetUint64("seed")
	}
	if viper.IsSet("count") {
		o.Count = viper.GetInt("count")
	}
	if viper.IsSet("keyRange") {
		o.KeyRange = viper.GetInt("keyRange")
	}
	return nil
}

// Validate will check the requirements of options
func (o *Options) Validate() []error {
	var errs []error
	if o.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be positive, got %d", o.Count))
	}
	if o.KeyRange < 1 {
		errs = append(errs, fmt.Errorf("key-range must be positive, got %d", o.KeyRange))
	}
	return errs
}
