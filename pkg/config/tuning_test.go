package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning should validate, got: %v", err)
	}
}

func TestLoadTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *TuningConfig)
	}{
		{
			name: "valid override",
			yamlContent: `
fragment:
  speedMin: 100
  speedMax: 260
  gravity: 500
  drag: 0.97
  spinMax: 5.0
  lifetime: 0.8
card:
  floatAmplitude: 8
  floatSpeed: 2.0
  tiltAmplitude: 0.06
  orbitSpeed: 3.0
  gatherShrink: 0.4
  winnerScale: 1.5
  springFrequency: 5.0
  springDamping: 0.6
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *TuningConfig) {
				if cfg.Fragment.SpeedMin != 100 {
					t.Errorf("expected fragment speedMin = 100, got %f", cfg.Fragment.SpeedMin)
				}
				if cfg.Fragment.Gravity != 500 {
					t.Errorf("expected fragment gravity = 500, got %f", cfg.Fragment.Gravity)
				}
				if cfg.Card.WinnerScale != 1.5 {
					t.Errorf("expected winner scale = 1.5, got %f", cfg.Card.WinnerScale)
				}
				// 未覆盖的段保持默认值
				if cfg.Burst.Lifetime != 1.5 {
					t.Errorf("expected default burst lifetime = 1.5, got %f", cfg.Burst.Lifetime)
				}
				if cfg.Confetti.LifetimeMax != 3.0 {
					t.Errorf("expected default confetti lifetimeMax = 3.0, got %f", cfg.Confetti.LifetimeMax)
				}
			},
		},
		{
			name: "invalid fragment speed range",
			yamlContent: `
fragment:
  speedMin: 400
  speedMax: 300
  gravity: 588
  drag: 0.98
  spinMax: 6.28
  lifetime: 1.0
`,
			wantErr:     true,
			errContains: "fragment speed range invalid",
		},
		{
			name: "invalid fragment drag",
			yamlContent: `
fragment:
  speedMin: 120
  speedMax: 300
  gravity: 588
  drag: 1.4
  spinMax: 6.28
  lifetime: 1.0
`,
			wantErr:     true,
			errContains: "fragment drag should be in (0, 1]",
		},
		{
			name: "invalid winner scale",
			yamlContent: `
card:
  floatAmplitude: 6
  floatSpeed: 1.6
  tiltAmplitude: 0.05
  orbitSpeed: 3.2
  gatherShrink: 0.35
  winnerScale: 0.8
  springFrequency: 6.0
  springDamping: 0.5
`,
			wantErr:     true,
			errContains: "winner scale should be >= 1.0",
		},
		{
			name: "invalid confetti lifetime range",
			yamlContent: `
confetti:
  speedMin: 180
  speedMax: 420
  gravity: 300
  drag: 0.99
  lifetimeMin: 3.5
  lifetimeMax: 3.0
`,
			wantErr:     true,
			errContains: "confetti lifetime range invalid",
		},
		{
			name: "invalid wheel rotations",
			yamlContent: `
wheel:
  extraRotationsMin: 0.5
  extraRotationsRange: 2.0
`,
			wantErr:     true,
			errContains: "at least 1 full rotation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 创建临时 YAML 文件
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "tuning.yaml")
			if err := os.WriteFile(tmpFile, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to create temp file: %v", err)
			}

			cfg, err := LoadTuning(tmpFile)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read tuning config") {
		t.Errorf("error should mention read failure, got: %v", err)
	}
}
