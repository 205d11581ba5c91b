package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from the config document, environment and flags.
type Config struct {
	Address      string
	AuthEndpoint string
	ConfigFile   string
	// DocumentCreated reports that Load wrote a default config document.
	DocumentCreated bool
	ProcessingDelay time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	CORSOrigins     []string
}

const (
	configFileName         = "config.json"
	defaultAddress         = "http://localhost:8082/"
	defaultAuthEndpoint    = "http://localhost:8081/"
	defaultProcessingDelay = time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// config document keys
const (
	keyAddress         = "address"
	keyAuthEndpoint    = "auth_endpoint"
	keyProcessingDelay = "processing_delay"
	keyShutdownTimeout = "shutdown_timeout"
	keyLogLevel        = "log_level"
	keyCORSOrigins     = "cors_origins"
)

// Load parses configuration from the config document, flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	flags := flag.NewFlagSet("wsgateway", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		configFile      = flags.String("c", getString(lookup, "CONFIG_FILE", defaultConfigFile()), "Path to JSON config document")
		address         = flags.String("a", "", "HTTP server listen address")
		authEndpoint    = flags.String("auth", "", "Authorization service base URL")
		processingDelay = flags.String("processing-delay", "", "Simulated withdrawal processing delay")
		shutdownTimeout = flags.String("shutdown-timeout", "", "Graceful shutdown timeout")
		logLevel        = flags.String("log-level", "", "Log level (debug, info, warn, error)")
	)

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v, found, err := readDocument(*configFile)
	if err != nil {
		return nil, err
	}
	created := false
	if !found {
		if created, err = writeDocument(v, *configFile); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		ConfigFile:      *configFile,
		DocumentCreated: created,
		Address:         pick(*address, lookup, "ADDRESS", v.GetString(keyAddress)),
		AuthEndpoint:    pick(*authEndpoint, lookup, "AUTH_ENDPOINT", v.GetString(keyAuthEndpoint)),
		LogLevel:        pick(*logLevel, lookup, "LOG_LEVEL", v.GetString(keyLogLevel)),
		CORSOrigins:  v.GetStringSlice(keyCORSOrigins),
	}

	delayStr := pick(*processingDelay, lookup, "PROCESSING_DELAY", v.GetString(keyProcessingDelay))
	if cfg.ProcessingDelay, err = time.ParseDuration(delayStr); err != nil {
		return nil, fmt.Errorf("invalid processing delay: %w", err)
	}

	shutdownStr := pick(*shutdownTimeout, lookup, "SHUTDOWN_TIMEOUT", v.GetString(keyShutdownTimeout))
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if origins, ok := lookup("CORS_ORIGINS"); ok && origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	if cfg.ProcessingDelay < 0 {
		cfg.ProcessingDelay = defaultProcessingDelay
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	if cfg.Address == "" {
		return nil, fmt.Errorf("address must be provided")
	}

	if cfg.AuthEndpoint == "" {
		return nil, fmt.Errorf("auth endpoint must be provided")
	}

	return cfg, nil
}

// ListenAddress returns host:port for the HTTP server. Address may be a URL.
func (c *Config) ListenAddress() string {
	if !strings.Contains(c.Address, "://") {
		return c.Address
	}
	u, err := url.Parse(c.Address)
	if err != nil || u.Host == "" {
		return c.Address
	}
	return u.Host
}

// Init writes the default config document unless one already exists.
// It reports whether a new file was created.
func Init(args []string) (string, bool, error) {
	flags := flag.NewFlagSet("wsgateway init", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configFile := flags.String("c", defaultConfigFile(), "Path to JSON config document")
	if err := flags.Parse(args); err != nil {
		return "", false, fmt.Errorf("parse flags: %w", err)
	}

	created, err := writeDocument(newDocument(), *configFile)
	if err != nil {
		return "", false, err
	}
	return *configFile, created, nil
}

// defaultConfigFile places the config document next to the executable.
func defaultConfigFile() string {
	exe, err := os.Executable()
	if err != nil {
		return configFileName
	}
	return filepath.Join(filepath.Dir(exe), configFileName)
}

// writeDocument writes the defaults held by v to path unless the file exists.
func writeDocument(v *viper.Viper, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if err := v.SafeWriteConfigAs(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return false, nil
		}
		return false, fmt.Errorf("write config %s: %w", path, err)
	}
	return true, nil
}

func newDocument() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault(keyAddress, defaultAddress)
	v.SetDefault(keyAuthEndpoint, defaultAuthEndpoint)
	v.SetDefault(keyProcessingDelay, defaultProcessingDelay.String())
	v.SetDefault(keyShutdownTimeout, defaultShutdownTimeout.String())
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyCORSOrigins, []string{"*"})
	return v
}

// readDocument reports whether the document at path exists.
// An empty path reads nothing and counts as found.
func readDocument(path string) (*viper.Viper, bool, error) {
	v := newDocument()
	if path == "" {
		return v, true, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, false, nil
		}
		return nil, false, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, true, nil
}

// pick resolves a setting: flag, then environment, then document value.
func pick(flagVal string, lookup envLookup, key, docVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return getString(lookup, key, docVal)
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}
