package logger

import (
	"testing"

	"etc_takeoffs/internal/infrastructure/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		cfg  config.LogConfig
		want zapcore.Level
	}{
		{config.LogConfig{Level: "debug"}, zapcore.DebugLevel},
		{config.LogConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{config.LogConfig{Level: "error"}, zapcore.ErrorLevel},
		{config.LogConfig{Level: "info", Format: "json"}, zapcore.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.cfg.Level, func(t *testing.T) {
			l, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !l.Core().Enabled(tc.want) {
				t.Fatalf("expected %s enabled", tc.want)
			}
			if tc.want > zapcore.DebugLevel && l.Core().Enabled(tc.want-1) {
				t.Fatalf("expected %s disabled", tc.want-1)
			}
		})
	}
}

func TestInstall(t *testing.T) {
	l := zap.NewNop()
	restore := Install(l)
	defer restore()
	if zap.L() != l {
		t.Fatalf("global logger not replaced")
	}
}
