package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "SCHEDULE_FILE", "MAX_MESSAGES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.MaxTokens != DefaultMaxTokens || cfg.Temperature != DefaultTemperature {
		t.Errorf("got MaxTokens=%d Temperature=%v", cfg.MaxTokens, cfg.Temperature)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "model: gpt-4\ndata_file: /tmp/sched.json\nmax_messages: 50\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "gpt-4" || cfg.DataFile != "/tmp/sched.json" || cfg.MaxMessages != 50 {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %d", cfg.MaxTokens)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: gpt-4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("MAX_MESSAGES", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "sk-env" || cfg.Model != "gpt-4o" || cfg.MaxMessages != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_BadMaxMessagesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_MESSAGES", "not-a-number")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxMessages != DefaultMaxMessages {
		t.Errorf("MaxMessages = %d", cfg.MaxMessages)
	}
}

func TestLoad_MissingNamedFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing named config file")
	}
}
