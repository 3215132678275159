// Package config parses the mpcalc tool configuration from flags, a TOML
// defaults file, and MPCALC_-prefixed environment variables. Resolution
// chain, highest priority first:
//  1. CLI flags (--bits, --count, ...)
//  2. Environment variables (MPCALC_BITS, ...)
//  3. TOML defaults file (--config)
//  4. Static defaults below
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/mpint"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "MPCALC_"

// Default values for the tool configuration.
const (
	DefaultBits  = 256
	DefaultCount = 8
)

// AppConfig holds the resolved mpcalc configuration.
type AppConfig struct {
	// Bits is the requested bit length of each random value.
	Bits int
	// Count is the number of values to generate.
	Count int
	// Workers bounds concurrent generation; 0 means one per CPU.
	Workers int
	// PooledAlloc selects the size-class pooled allocator.
	PooledAlloc bool
	// ShowLimbs dumps each value's limb structure.
	ShowLimbs bool
	// Seed switches generation to a deterministic PRNG seeded with this
	// value; 0 keeps the OS CSPRNG default.
	Seed uint64
	// MetricsAddr serves Prometheus metrics when nonempty (e.g. ":9091").
	MetricsAddr string
	// Theme selects output colors: auto, dark, or light.
	Theme string
	// Verbose enables debug-level logging.
	Verbose bool
	// ConfigFile is the optional TOML defaults file that was loaded.
	ConfigFile string
}

// fileConfig mirrors AppConfig for the TOML defaults file.
type fileConfig struct {
	Bits        int64  `toml:"bits"`
	Count       int64  `toml:"count"`
	Workers     int64  `toml:"workers"`
	Seed        int64  `toml:"seed"`
	PooledAlloc bool   `toml:"pooled_alloc"`
	ShowLimbs   bool   `toml:"show_limbs"`
	MetricsAddr string `toml:"metrics_addr"`
	Theme       string `toml:"theme"`
	Verbose     bool   `toml:"verbose"`
}

// ParseConfig resolves the tool configuration from the argument list,
// the optional TOML file, and the environment.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Bits:  DefaultBits,
		Count: DefaultCount,
		Theme: "auto",
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	configFile := fs.String("config", "", "TOML file supplying default values")
	fs.IntVar(&cfg.Bits, "bits", cfg.Bits, "bit length of each random value")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of values to generate")
	fs.IntVar(&cfg.Workers, "workers", 0, "concurrent workers (0 = one per CPU)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "deterministic PRNG seed (0 = OS entropy)")
	fs.BoolVar(&cfg.PooledAlloc, "pooled", false, "use the size-class pooled allocator")
	fs.BoolVar(&cfg.ShowLimbs, "limbs", false, "dump limb structure of each value")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "output theme: auto, dark, light, or none")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// TOML defaults sit below both flags and environment.
	if *configFile != "" {
		fromFile, err := loadFile(*configFile)
		if err != nil {
			return AppConfig{}, err
		}
		cfg.ConfigFile = *configFile
		applyFileDefaults(&cfg, fromFile, fs)
	}

	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}

// loadFile reads and decodes the TOML defaults file.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fileConfig{}, apperrors.NewConfigError("reading config %s: %v", path, err)
	}
	return fc, nil
}

// applyFileDefaults copies file values into any field whose flag was not
// set explicitly. TOML integers arrive as int64 and are narrowed with an
// overflow check rather than a silent truncation.
func applyFileDefaults(cfg *AppConfig, fc fileConfig, fs *flag.FlagSet) {
	setInt := func(flagName string, dst *int, v int64) {
		if v == 0 || isFlagSet(fs, flagName) {
			return
		}
		if n, err := safecast.Conv[int](v); err == nil {
			*dst = n
		}
	}
	setInt("bits", &cfg.Bits, fc.Bits)
	setInt("count", &cfg.Count, fc.Count)
	setInt("workers", &cfg.Workers, fc.Workers)
	if fc.Seed != 0 && !isFlagSet(fs, "seed") {
		if s, err := safecast.Conv[uint64](fc.Seed); err == nil {
			cfg.Seed = s
		}
	}
	if !isFlagSet(fs, "pooled") && fc.PooledAlloc {
		cfg.PooledAlloc = true
	}
	if !isFlagSet(fs, "limbs") && fc.ShowLimbs {
		cfg.ShowLimbs = true
	}
	if !isFlagSet(fs, "metrics-addr") && fc.MetricsAddr != "" {
		cfg.MetricsAddr = fc.MetricsAddr
	}
	if !isFlagSet(fs, "theme") && fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if !isFlagSet(fs, "v") && fc.Verbose {
		cfg.Verbose = true
	}
}

// applyEnvOverrides applies MPCALC_* variables for every flag that was not
// set explicitly on the command line.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "bits") {
		cfg.Bits = getEnvInt("BITS", cfg.Bits)
	}
	if !isFlagSet(fs, "count") {
		cfg.Count = getEnvInt("COUNT", cfg.Count)
	}
	if !isFlagSet(fs, "workers") {
		cfg.Workers = getEnvInt("WORKERS", cfg.Workers)
	}
	if !isFlagSet(fs, "seed") {
		cfg.Seed = getEnvUint64("SEED", cfg.Seed)
	}
	if !isFlagSet(fs, "pooled") {
		cfg.PooledAlloc = getEnvBool("POOLED", cfg.PooledAlloc)
	}
	if !isFlagSet(fs, "metrics-addr") {
		cfg.MetricsAddr = getEnvString("METRICS_ADDR", cfg.MetricsAddr)
	}
	if !isFlagSet(fs, "theme") {
		cfg.Theme = getEnvString("THEME", cfg.Theme)
	}
	if !isFlagSet(fs, "v") {
		cfg.Verbose = getEnvBool("VERBOSE", cfg.Verbose)
	}
}

// Validate checks the resolved configuration against the kernel's domains
// so argument errors surface before any work starts.
func Validate(cfg AppConfig) error {
	if cfg.Bits < 1 || cfg.Bits > mpint.MaxBits {
		return apperrors.NewConfigError("bits must be in [1, %d], got %d", mpint.MaxBits, cfg.Bits)
	}
	if cfg.Count < 1 {
		return apperrors.NewConfigError("count must be positive, got %d", cfg.Count)
	}
	if cfg.Workers < 0 {
		return apperrors.NewConfigError("workers must be nonnegative, got %d", cfg.Workers)
	}
	switch cfg.Theme {
	case "auto", "dark", "light", "none":
	default:
		return apperrors.NewConfigError("theme must be auto, dark, light, or none, got %q", cfg.Theme)
	}
	return nil
}

// String renders the configuration for debug logging.
func (c AppConfig) String() string {
	return fmt.Sprintf("bits=%d count=%d workers=%d seed=%d pooled=%v theme=%s",
		c.Bits, c.Count, c.Workers, c.Seed, c.PooledAlloc, c.Theme)
}
