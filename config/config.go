// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// TraverseFlags are the settings that change the shape of a traversal
// run. NewConfig decodes them from the settings file, but the run
// command takes its values from its own command-line flags.
type TraverseFlags struct {
	// de Bruijn k-mer length; also the traceback overlap trim length
	// (k-1).
	K int `mapstructure:"k"`

	// maximum distinct paths enumerated per start node, and the outer
	// loop's descending ceiling.
	MaxPaths int `mapstructure:"max-paths"`

	// enables diagnostic logging; has no effect on emitted contigs.
	Verbose bool `mapstructure:"verbose"`

	// drops committed contigs whose normalized dinucleotide entropy
	// falls below this floor. 0 disables the filter.
	MinEntropy float64 `mapstructure:"min-entropy"`

	// minimum number of previously-uncovered unitig ids a path must
	// contribute to be committed by the set-cover controller.
	SetCoverThreshold int `mapstructure:"set-cover-threshold"`
}

// MetricsConfig controls the optional Prometheus HTTP endpoint.
type MetricsConfig struct {
	// address to serve /metrics on; empty disables the server.
	Addr string `mapstructure:"addr"`
}

// Config is the root-level settings struct: a mix of settings
// available in settings.yaml and those available from the command
// line.
type Config struct {
	Traverse TraverseFlags
	Metrics  MetricsConfig
}

// DefaultTraverseFlags mirrors the defaults recognized as part of the
// external configuration contract: k=31, max-paths=1.
var DefaultTraverseFlags = TraverseFlags{
	K:                 31,
	MaxPaths:          1,
	SetCoverThreshold: 1,
}

// NewConfig returns a new Config struct populated by Viper settings
// (either from a local settings file and/or command line arguments
// bound via viper.BindPFlag in cmd/).
func NewConfig() (Config, error) {
	c := Config{Traverse: DefaultTraverseFlags}
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode into struct: %w", err)
	}
	return c, nil
}

// Watch watches path with its own fsnotify.Watcher (rather than
// viper's WatchConfig) and, on every write or create event, re-reads
// the settings file through viper and invokes onChange with the
// freshly reloaded Config. Reload or decode errors are skipped
// silently. It returns the underlying watcher so the caller can Close
// it when the run ends.
func Watch(path string, onChange func(Config)) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: unable to start settings watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: unable to watch %s: %w", path, err)
	}

	go func() {
		for event := range watcher.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := viper.ReadInConfig(); err != nil {
				continue
			}
			c, err := NewConfig()
			if err != nil {
				continue
			}
			onChange(c)
		}
	}()

	return watcher, nil
}
