package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSeekerConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultSeekerConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("seeker:\n  speed: 7\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Seeker.Speed != 7 {
		t.Errorf("Seeker.Speed = %d, expected 7", cfg.Seeker.Speed)
	}
	if cfg.Seeker.Size != 40 || cfg.Arena.Width != 800 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SeekerConfig)
	}{
		{"zero arena", func(c *SeekerConfig) { c.Arena.Width = 0 }},
		{"zero seeker size", func(c *SeekerConfig) { c.Seeker.Size = 0 }},
		{"negative speed", func(c *SeekerConfig) { c.Seeker.Speed = -1 }},
		{"zero item size", func(c *SeekerConfig) { c.Item.Size = 0 }},
		{"item larger than arena", func(c *SeekerConfig) { c.Item.Size = 700 }},
		{"zero interval", func(c *SeekerConfig) { c.Tick.IntervalMS = 0 }},
		{"negative initial items", func(c *SeekerConfig) { c.Spawn.InitialItems = -2 }},
	}

	if err := DefaultSeekerConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSeekerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeker.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: 320\n  height: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Arena.Width != 320 || cfg.Arena.Height != 200 {
		t.Errorf("arena = %dx%d, expected 320x200", cfg.Arena.Width, cfg.Arena.Height)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("seeker:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() = %v, expected ErrInvalidConfig", err)
	}
}

func TestTickRateConversions(t *testing.T) {
	cfg := DefaultSeekerConfig()
	if cfg.Interval() != 30*time.Millisecond {
		t.Errorf("Interval() = %v, expected 30ms", cfg.Interval())
	}
	if cfg.TickRate() != 33 {
		t.Errorf("TickRate() = %d, expected 33", cfg.TickRate())
	}

	fast := cfg.WithTickRate(100)
	if fast.Tick.IntervalMS != 10 {
		t.Errorf("WithTickRate(100) interval = %d, expected 10", fast.Tick.IntervalMS)
	}
	if same := cfg.WithTickRate(0); same != cfg {
		t.Error("WithTickRate(0) should leave the config unchanged")
	}
	if capped := cfg.WithTickRate(5000); capped.Tick.IntervalMS != 1 {
		t.Errorf("WithTickRate(5000) interval = %d, expected 1", capped.Tick.IntervalMS)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSeekerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultSeekerConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
