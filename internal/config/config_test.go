package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address != ":5000" {
		t.Errorf("default server address = %q, want :5000", cfg.Server.Address)
	}
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("default database uri = %q", cfg.Database.URI)
	}
	if cfg.Database.Name != "gymapp" {
		t.Errorf("default database name = %q, want gymapp", cfg.Database.Name)
	}
	if !cfg.S3.UseSSL {
		t.Error("s3 use_ssl must default to true")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := "server:\n  address: \":9090\"\ndatabase:\n  name: gymapp_test\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Errorf("server address = %q, want :9090", cfg.Server.Address)
	}
	if cfg.Database.Name != "gymapp_test" {
		t.Errorf("database name = %q, want gymapp_test", cfg.Database.Name)
	}
	// Keys the file does not mention keep their defaults.
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("database uri = %q", cfg.Database.URI)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SERVER_ADDRESS", ":8181")
	t.Setenv("DATABASE_NAME", "gymapp_env")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address != ":8181" {
		t.Errorf("server address = %q, want env value :8181", cfg.Server.Address)
	}
	if cfg.Database.Name != "gymapp_env" {
		t.Errorf("database name = %q, want env value gymapp_env", cfg.Database.Name)
	}
}
