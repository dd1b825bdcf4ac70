// Package config holds the run configuration of bch_analysis: where results
// go, which code is analysed and how the pairwise pass is scheduled.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"gopkg.in/yaml.v2"

	"github.com/observe-l/bchcode/bch"
)

type Config struct {
	OutDir        string     `yaml:"out_dir"`
	CodesFile     string     `yaml:"codes_file"`
	SyndromesFile string     `yaml:"syndromes_file"`
	SummaryFile   string     `yaml:"summary_file"`
	NPYFile       string     `yaml:"npy_file"`
	MetricsFile   string     `yaml:"metrics_file"`
	Workers       int        `yaml:"workers"`
	Progress      bool       `yaml:"progress"`
	LogLevel      string     `yaml:"log_level"`
	Params        bch.Params `yaml:"params"`
}

// Default reproduces the plain run: BCH(15,11), codes.txt and syndromes.txt
// in the working directory, one worker, no extra reports.
func Default() Config {
	return Config{
		OutDir:        ".",
		CodesFile:     "codes.txt",
		SyndromesFile: "syndromes.txt",
		Workers:       1,
		LogLevel:      "warning",
		Params:        bch.Standard,
	}
}

// Load reads a YAML file on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds the configuration from command-line arguments. A -config
// file, if given, supplies the defaults; explicit flags override it.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	if path := configPath(args); path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}

	fs := flag.NewFlagSet("bch_analysis", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.String("config", "", "YAML configuration file")
	cfg.register(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

// configPath finds -config without acting on any other flag. Parse errors
// are left for the real pass to report.
func configPath(args []string) string {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	scratch := Default()
	scratch.register(fs)
	path := fs.String("config", "", "")
	if err := fs.Parse(args); err != nil {
		return ""
	}
	return *path
}

func (c *Config) register(fs *flag.FlagSet) {
	fs.StringVar(&c.OutDir, "out", c.OutDir, "output directory for relative file names")
	fs.StringVar(&c.CodesFile, "codes", c.CodesFile, "codeword dump, one binary string per line")
	fs.StringVar(&c.SyndromesFile, "syndromes", c.SyndromesFile, "low-weight pattern syndrome table")
	fs.StringVar(&c.SummaryFile, "summary", c.SummaryFile, "optional JSON summary")
	fs.StringVar(&c.NPYFile, "npy", c.NPYFile, "optional distance histogram as .npy")
	fs.StringVar(&c.MetricsFile, "metrics", c.MetricsFile, "optional Prometheus textfile")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines for the pairwise distance pass")
	fs.BoolVar(&c.Progress, "progress", c.Progress, "show a progress bar on stderr")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "critical|error|warning|notice|info|debug")
}

var errEmptyPath = errors.New("config: output path must not be empty")

func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.CodesFile == "" {
		return fmt.Errorf("%w: codes", errEmptyPath)
	}
	if c.SyndromesFile == "" {
		return fmt.Errorf("%w: syndromes", errEmptyPath)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Path resolves name against OutDir. Empty names stay empty.
func (c *Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || c.OutDir == "" {
		return name
	}
	return filepath.Join(c.OutDir, name)
}

// WorkerCount caps Workers at the number of logical cores.
func (c *Config) WorkerCount() int {
	return max(1, min(c.Workers, MaxWorkers()))
}

func MaxWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
