package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{"verbose", defaultZapLevel},
		{"", defaultZapLevel},
	}
	for _, tt := range tests {
		if got := toZapLevel(tt.in); got != tt.want {
			t.Errorf("toZapLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewCore_RespectsLevel(t *testing.T) {
	core := newCore(Options{Level: WarnLevel, Format: FormatJSON})
	if core.Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	if l == nil || l.SugaredLogger == nil {
		t.Fatalf("Nop returned nil logger")
	}
	l.Infow("ignored", "k", "v")
}

func TestInit_IsSingleton(t *testing.T) {
	a := Init(Options{Level: InfoLevel})
	b := Get(ErrorLevel)
	if a != b {
		t.Fatalf("expected the same logger instance")
	}
}
