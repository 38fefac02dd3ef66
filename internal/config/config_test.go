package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":25565" {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.CompressionThreshold != 256 {
		t.Errorf("server.compression_threshold = %d", cfg.Server.CompressionThreshold)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics enabled by default")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "mcwire.toml", `
[server]
addr = "127.0.0.1:25570"
motd = "Maintenance"
max_players = 5
compression_threshold = -1

[transport]
max_packet_len = 65536

[log]
level = "debug"

[metrics]
enabled = true
addr = "127.0.0.1:9300"
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:25570" {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.MOTD != "Maintenance" {
		t.Errorf("server.motd = %q", cfg.Server.MOTD)
	}
	if cfg.Server.MaxPlayers != 5 {
		t.Errorf("server.max_players = %d", cfg.Server.MaxPlayers)
	}
	if cfg.Server.CompressionThreshold != -1 {
		t.Errorf("server.compression_threshold = %d", cfg.Server.CompressionThreshold)
	}
	if cfg.Transport.MaxPacketLen != 65536 {
		t.Errorf("transport.max_packet_len = %d", cfg.Transport.MaxPacketLen)
	}
	// keys missing from the file keep their defaults
	if cfg.Transport.MaxDecompressedLen != 1<<23 {
		t.Errorf("transport.max_decompressed_len = %d", cfg.Transport.MaxDecompressedLen)
	}
	if cfg.Server.VersionName != "1.19.2" {
		t.Errorf("server.version_name = %q", cfg.Server.VersionName)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Addr != "127.0.0.1:9300" || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadFileErrors(t *testing.T) {
	type TestCase struct {
		desc    string
		content string
		key     string
	}
	tcs := []TestCase{
		{"bad addr", "[server]\naddr = \"localhost\"\n", "server.addr"},
		{"negative players", "[server]\nmax_players = -3\n", "server.max_players"},
		{"zero packet len", "[transport]\nmax_packet_len = 0\n", "transport.max_packet_len"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"bad metrics path", "[metrics]\nenabled = true\npath = \"metrics\"\n", "metrics.path"},
		{"not toml", "[server\n", "mcwire.toml"},
	}

	for _, tc := range tcs {
		path := writeFile(t, "mcwire.toml", tc.content)
		_, err := Load(path, "")
		if err == nil {
			t.Errorf("%s: expected error", tc.desc)
			continue
		}
		if !strings.Contains(err.Error(), tc.key) {
			t.Errorf("%s: error %q does not name %s", tc.desc, err, tc.key)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MCWIRE_SERVER_ADDR":                  "0.0.0.0:25599",
		"MCWIRE_SERVER_MAX_PLAYERS":           " 100 ",
		"MCWIRE_TRANSPORT_MAX_PACKET_LEN":     "4096",
		"MCWIRE_METRICS_ENABLED":              "true",
		"MCWIRE_SERVER_DISCONNECT_MESSAGE":    "Closed",
		"MCWIRE_SERVER_COMPRESSION_THRESHOLD": "-1",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:25599" {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.MaxPlayers != 100 {
		t.Errorf("server.max_players = %d", cfg.Server.MaxPlayers)
	}
	if cfg.Transport.MaxPacketLen != 4096 {
		t.Errorf("transport.max_packet_len = %d", cfg.Transport.MaxPacketLen)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics.enabled not applied")
	}
	if cfg.Server.DisconnectMessage != "Closed" {
		t.Errorf("server.disconnect_message = %q", cfg.Server.DisconnectMessage)
	}
	if cfg.Server.CompressionThreshold != -1 {
		t.Errorf("server.compression_threshold = %d", cfg.Server.CompressionThreshold)
	}

	env = map[string]string{"MCWIRE_METRICS_ENABLED": "sometimes"}
	if err := cfg.applyEnv(lookup); err == nil || !strings.Contains(err.Error(), "MCWIRE_METRICS_ENABLED") {
		t.Errorf("applyEnv: got %v, want error naming MCWIRE_METRICS_ENABLED", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "MCWIRE_SERVER_MOTD"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s set in the environment", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	envFile := writeFile(t, ".env", key+"=From dotenv\n")
	path := writeFile(t, "mcwire.toml", "[server]\nmotd = \"From file\"\n")

	cfg, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.MOTD != "From dotenv" {
		t.Errorf("server.motd = %q, want the .env value", cfg.Server.MOTD)
	}

	if _, err := Load(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Load with missing env file: %v", err)
	}
}
