package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

var configEnvVars = []string{
	"TABLE_NAME",
	"STORAGE_BACKEND",
	"AWS_REGION",
	"DYNAMODB_ENDPOINT",
	"SQLITE_PATH",
	"ENVIRONMENT",
	"PORT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
}

// clearConfigEnv unsets all configuration variables and restores them after the test
func clearConfigEnv(t *testing.T) {
	t.Helper()

	originalEnv := make(map[string]string)
	for _, key := range configEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			originalEnv[key] = value
		}
		os.Unsetenv(key)
	}
	viper.Reset()

	t.Cleanup(func() {
		for _, key := range configEnvVars {
			if value, ok := originalEnv[key]; ok {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
		viper.Reset()
	})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "missing table name",
			envVars: map[string]string{},
			wantErr: true,
		},
		{
			name:    "defaults",
			envVars: map[string]string{"TABLE_NAME": "entries"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Storage.TableName != "entries" {
					t.Errorf("TableName = %q, want %q", cfg.Storage.TableName, "entries")
				}
				if cfg.Storage.Backend != "dynamodb" {
					t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, "dynamodb")
				}
				if cfg.Port != "8080" {
					t.Errorf("Port = %q, want %q", cfg.Port, "8080")
				}
				if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
					t.Errorf("Log = %+v, want info/text", cfg.Log)
				}
				if cfg.RateLimit.RequestsPerSecond != 50 || cfg.RateLimit.Burst != 100 {
					t.Errorf("RateLimit = %+v, want 50/100", cfg.RateLimit)
				}
			},
		},
		{
			name: "overrides",
			envVars: map[string]string{
				"TABLE_NAME":        "entries-prod",
				"STORAGE_BACKEND":   "sqlite",
				"SQLITE_PATH":       "/var/lib/entries.db",
				"DYNAMODB_ENDPOINT": "http://localhost:8000",
				"AWS_REGION":        "eu-west-1",
				"ENVIRONMENT":       "production",
				"LOG_LEVEL":         "debug",
				"LOG_FORMAT":        "json",
				"RATE_LIMIT_RPS":    "2.5",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Storage.Backend != "sqlite" || cfg.Storage.SQLitePath != "/var/lib/entries.db" {
					t.Errorf("Storage = %+v", cfg.Storage)
				}
				if cfg.Storage.Region != "eu-west-1" {
					t.Errorf("Region = %q, want %q", cfg.Storage.Region, "eu-west-1")
				}
				if !cfg.IsProduction() {
					t.Error("Expected production environment")
				}
				if cfg.RateLimit.RequestsPerSecond != 2.5 {
					t.Errorf("RequestsPerSecond = %v, want 2.5", cfg.RateLimit.RequestsPerSecond)
				}
			},
		},
		{
			name:    "unsupported backend",
			envVars: map[string]string{"TABLE_NAME": "entries", "STORAGE_BACKEND": "redis"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"TABLE_NAME": "entries", "LOG_LEVEL": "verbose"},
			wantErr: true,
		},
		{
			name:    "invalid endpoint",
			envVars: map[string]string{"TABLE_NAME": "entries", "DYNAMODB_ENDPOINT": "not a url"},
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			envVars: map[string]string{"TABLE_NAME": "entries", "PORT": "http"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	base := func() *Config {
		return &Config{
			Storage: StorageConfig{Backend: "sqlite", TableName: "entries", SQLitePath: "./data/entries.db"},
			Log:     LogConfig{Level: "info", Format: "text"},
		}
	}

	t.Run("server mode is untouched", func(t *testing.T) {
		cfg := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: false})
		if cfg.Log.Format != "text" || cfg.Storage.SQLitePath != "./data/entries.db" {
			t.Errorf("Config changed in server mode: %+v", cfg)
		}
	})

	t.Run("lambda mode", func(t *testing.T) {
		cfg := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: true, Region: "us-west-2"})
		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
		}
		if cfg.Storage.Region != "us-west-2" {
			t.Errorf("Region = %q, want us-west-2", cfg.Storage.Region)
		}
		if cfg.Storage.SQLitePath != filepath.Join("/tmp", "entries.db") {
			t.Errorf("SQLitePath = %q, want /tmp/entries.db", cfg.Storage.SQLitePath)
		}
	})
}

func TestLoadStackOutputs(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid outputs", func(t *testing.T) {
		path := filepath.Join(dir, "outputs.json")
		content := `[
			{"OutputKey": "API", "OutputValue": "https://abc.execute-api.us-east-1.amazonaws.com/"},
			{"OutputKey": "Table", "OutputValue": "EntriesTable-1A2B3C"},
			{"OutputKey": "Other", "OutputValue": "ignored"}
		]`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write outputs: %v", err)
		}

		outputs, err := LoadStackOutputs(path)
		if err != nil {
			t.Fatalf("LoadStackOutputs() failed: %v", err)
		}
		if outputs.TableName != "EntriesTable-1A2B3C" {
			t.Errorf("TableName = %q", outputs.TableName)
		}
		if outputs.APIURL != "https://abc.execute-api.us-east-1.amazonaws.com/" {
			t.Errorf("APIURL = %q", outputs.APIURL)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadStackOutputs(filepath.Join(dir, "missing.json")); err == nil {
			t.Error("Expected error, got nil")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte(`{"OutputKey": "Table"}`), 0644); err != nil {
			t.Fatalf("Failed to write outputs: %v", err)
		}
		if _, err := LoadStackOutputs(path); err == nil {
			t.Error("Expected error, got nil")
		}
	})
}
