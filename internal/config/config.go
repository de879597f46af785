// Package config loads the scorer's HCL configuration file.
//
// Example:
//
//	stakes {
//	  base_unit        = "0.25"
//	  pot_contribution = "0.25"
//	}
//
//	table {
//	  sit_out              = "window"
//	  undo_restores_dealer = false
//	}
//
//	storage {
//	  backend    = "file"
//	  state_file = "~/.sheepshead/game.json"
//	}
//
//	log {
//	  level = "warn"
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/session"
	"github.com/lox/sheepshead/internal/store"
)

// Config is the complete scorer configuration
type Config struct {
	Stakes  *StakesConfig  `hcl:"stakes,block"`
	Table   *TableConfig   `hcl:"table,block"`
	Storage *StorageConfig `hcl:"storage,block"`
	Log     *LogConfig     `hcl:"log,block"`
}

// StakesConfig holds money amounts as strings so they stay exact
type StakesConfig struct {
	BaseUnit        string `hcl:"base_unit,optional"`
	PotContribution string `hcl:"pot_contribution,optional"`
	KingsUnit       string `hcl:"kings_unit,optional"`
	ShareUnit       string `hcl:"share_unit,optional"`
}

// TableConfig controls rotation and undo
type TableConfig struct {
	SitOut             string `hcl:"sit_out,optional"`
	UndoRestoresDealer bool   `hcl:"undo_restores_dealer,optional"`
}

// StorageConfig selects where the game is saved
type StorageConfig struct {
	Backend       string `hcl:"backend,optional"`
	StateFile     string `hcl:"state_file,optional"`
	RedisAddr     string `hcl:"redis_addr,optional"`
	RedisPassword string `hcl:"redis_password,optional"`
	RedisDB       int    `hcl:"redis_db,optional"`
	RedisKey      string `hcl:"redis_key,optional"`
}

type LogConfig struct {
	Level string `hcl:"level,optional"`
}

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// DefaultStateFile returns ~/.sheepshead/game.json, or a file in the working
// directory when there is no home directory.
func DefaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sheepshead.json"
	}
	return filepath.Join(home, ".sheepshead", "game.json")
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	stakes := game.DefaultStakes()
	return &Config{
		Stakes: &StakesConfig{
			BaseUnit:        stakes.BaseUnit.String(),
			PotContribution: stakes.PotContribution.String(),
			KingsUnit:       stakes.KingsUnit.String(),
			ShareUnit:       stakes.ShareUnit.String(),
		},
		Table: &TableConfig{
			SitOut: game.SitOutWindow.String(),
		},
		Storage: &StorageConfig{
			Backend:   BackendFile,
			StateFile: DefaultStateFile(),
			RedisAddr: "localhost:6379",
			RedisKey:  store.DefaultKey,
		},
		Log: &LogConfig{
			Level: "warn",
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist and
// for every setting the file leaves out. The result is validated.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Stakes == nil {
		c.Stakes = defaults.Stakes
	}
	fill(&c.Stakes.BaseUnit, defaults.Stakes.BaseUnit)
	fill(&c.Stakes.PotContribution, defaults.Stakes.PotContribution)
	fill(&c.Stakes.KingsUnit, defaults.Stakes.KingsUnit)
	fill(&c.Stakes.ShareUnit, defaults.Stakes.ShareUnit)

	if c.Table == nil {
		c.Table = defaults.Table
	}
	fill(&c.Table.SitOut, defaults.Table.SitOut)

	if c.Storage == nil {
		c.Storage = defaults.Storage
	}
	fill(&c.Storage.Backend, defaults.Storage.Backend)
	fill(&c.Storage.StateFile, defaults.Storage.StateFile)
	fill(&c.Storage.RedisAddr, defaults.Storage.RedisAddr)
	fill(&c.Storage.RedisKey, defaults.Storage.RedisKey)
	c.Storage.StateFile = expandHome(c.Storage.StateFile)

	if c.Log == nil {
		c.Log = defaults.Log
	}
	fill(&c.Log.Level, defaults.Log.Level)
}

func fill(field *string, fallback string) {
	if strings.TrimSpace(*field) == "" {
		*field = fallback
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.GameStakes(); err != nil {
		errs = append(errs, err)
	}
	if _, err := game.ParseSitOutMode(c.Table.SitOut); err != nil {
		errs = append(errs, err)
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.StateFile == "" {
			errs = append(errs, errors.New("storage: state_file is required"))
		}
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			errs = append(errs, errors.New("storage: redis_addr is required"))
		}
		if c.Storage.RedisDB < 0 {
			errs = append(errs, errors.New("storage: redis_db cannot be negative"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage: unknown backend %q", c.Storage.Backend))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: invalid level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// GameStakes parses the stakes block
func (c *Config) GameStakes() (game.Stakes, error) {
	var (
		s    game.Stakes
		errs []error
	)
	parse := func(name, value string, dst *decimal.Decimal) {
		v, err := decimal.NewFromString(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("stakes: %s %q is not an amount", name, value))
			return
		}
		*dst = v
	}
	parse("base_unit", c.Stakes.BaseUnit, &s.BaseUnit)
	parse("pot_contribution", c.Stakes.PotContribution, &s.PotContribution)
	parse("kings_unit", c.Stakes.KingsUnit, &s.KingsUnit)
	parse("share_unit", c.Stakes.ShareUnit, &s.ShareUnit)
	if len(errs) > 0 {
		return game.Stakes{}, errors.Join(errs...)
	}
	if err := s.Validate(); err != nil {
		return game.Stakes{}, fmt.Errorf("stakes: %w", err)
	}
	return s, nil
}

// LogLevel returns the configured level, warn when unparseable
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// SessionOptions converts the table settings into session options
func (c *Config) SessionOptions(clock quartz.Clock, logger *log.Logger) (session.Options, error) {
	stakes, err := c.GameStakes()
	if err != nil {
		return session.Options{}, err
	}
	mode, err := game.ParseSitOutMode(c.Table.SitOut)
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Stakes:             stakes,
		SitOut:             mode,
		UndoRestoresDealer: c.Table.UndoRestoresDealer,
		Clock:              clock,
		Logger:             logger,
	}, nil
}

// OpenStore builds the configured snapshot store. stateFile overrides the
// configured file location when set.
func (c *Config) OpenStore(stateFile string, logger *log.Logger) (store.Store, error) {
	switch c.Storage.Backend {
	case BackendRedis:
		return store.NewRedisStore(c.Storage.RedisAddr, c.Storage.RedisPassword, c.Storage.RedisDB, c.Storage.RedisKey, logger), nil
	case BackendFile:
		path := c.Storage.StateFile
		if stateFile != "" {
			path = expandHome(stateFile)
		}
		return store.NewFileStore(path, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
}
