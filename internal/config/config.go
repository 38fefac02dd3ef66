// Package config loads the mcwire configuration from a TOML file, a .env
// file and MCWIRE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const envPrefix = "MCWIRE_"

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Transport TransportConfig `toml:"transport"`
	Log       LogConfig       `toml:"log"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

type ServerConfig struct {
	Addr                 string `toml:"addr"`
	MOTD                 string `toml:"motd"`
	VersionName          string `toml:"version_name"`
	MaxPlayers           int    `toml:"max_players"`
	FaviconFile          string `toml:"favicon_file"`
	DisconnectMessage    string `toml:"disconnect_message"`
	CompressionThreshold int    `toml:"compression_threshold"`
}

type TransportConfig struct {
	MaxPacketLen       int32 `toml:"max_packet_len"`
	MaxDecompressedLen int32 `toml:"max_decompressed_len"`
}

type LogConfig struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	Path    string `toml:"path"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:                 ":25565",
			MOTD:                 "A Minecraft Server",
			VersionName:          "1.19.2",
			MaxPlayers:           20,
			DisconnectMessage:    "This server is not accepting players",
			CompressionThreshold: 256,
		},
		Transport: TransportConfig{
			MaxPacketLen:       1<<21 - 1,
			MaxDecompressedLen: 1 << 23,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9225",
			Path:    "/metrics",
		},
	}
}

// Load reads path over the defaults, then .env from envFile and the process
// environment. An empty path skips the file; a missing envFile is ignored.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if envFile != "" {
		// variables already set in the environment take precedence
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	strs := map[string]*string{
		"SERVER_ADDR":               &c.Server.Addr,
		"SERVER_MOTD":               &c.Server.MOTD,
		"SERVER_VERSION_NAME":       &c.Server.VersionName,
		"SERVER_FAVICON_FILE":       &c.Server.FaviconFile,
		"SERVER_DISCONNECT_MESSAGE": &c.Server.DisconnectMessage,
		"LOG_LEVEL":                 &c.Log.Level,
		"METRICS_ADDR":              &c.Metrics.Addr,
		"METRICS_PATH":              &c.Metrics.Path,
	}
	for key, dst := range strs {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"SERVER_MAX_PLAYERS":           &c.Server.MaxPlayers,
		"SERVER_COMPRESSION_THRESHOLD": &c.Server.CompressionThreshold,
	}
	for key, dst := range ints {
		if v, ok := lookup(envPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, key, err)
			}
			*dst = n
		}
	}

	int32s := map[string]*int32{
		"TRANSPORT_MAX_PACKET_LEN":       &c.Transport.MaxPacketLen,
		"TRANSPORT_MAX_DECOMPRESSED_LEN": &c.Transport.MaxDecompressedLen,
	}
	for key, dst := range int32s {
		if v, ok := lookup(envPrefix + key); ok {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, key, err)
			}
			*dst = int32(n)
		}
	}

	bools := map[string]*bool{
		"LOG_CONSOLE":     &c.Log.Console,
		"METRICS_ENABLED": &c.Metrics.Enabled,
	}
	for key, dst := range bools {
		if v, ok := lookup(envPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, key, err)
			}
			*dst = b
		}
	}
	return nil
}

// Validate reports the first invalid setting, naming its key.
func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return fmt.Errorf("server.addr: %w", err)
	}
	if c.Server.MaxPlayers < 0 {
		return fmt.Errorf("server.max_players: must not be negative, got %d", c.Server.MaxPlayers)
	}
	if c.Transport.MaxPacketLen <= 0 {
		return fmt.Errorf("transport.max_packet_len: must be positive, got %d", c.Transport.MaxPacketLen)
	}
	if c.Transport.MaxDecompressedLen <= 0 {
		return fmt.Errorf("transport.max_decompressed_len: must be positive, got %d", c.Transport.MaxDecompressedLen)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			return fmt.Errorf("metrics.addr: %w", err)
		}
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("metrics.path: must start with /, got %q", c.Metrics.Path)
		}
	}
	return nil
}
