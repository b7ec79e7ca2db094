package config

import "testing"

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.AgentPort != 9876 {
		t.Fatalf("AgentPort = %d, want 9876", d.AgentPort)
	}
	if d.TypingSpeedMs != 40 {
		t.Fatalf("TypingSpeedMs = %d, want 40", d.TypingSpeedMs)
	}
	if d.TypingVarianceMs != 15 {
		t.Fatalf("TypingVarianceMs = %d, want 15", d.TypingVarianceMs)
	}
	if d.AckTimeoutSeconds != 30 {
		t.Fatalf("AckTimeoutSeconds = %d, want 30", d.AckTimeoutSeconds)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AgentPort != 9876 {
		t.Fatalf("AgentPort = %d, want 9876", cfg.AgentPort)
	}
}
