package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		logger := New(tt.level)
		if logger == nil {
			t.Fatal("Expected logger to be initialized")
		}
		if logger.GetLevel() != tt.expected {
			t.Errorf("Level %q: expected %s, got %s", tt.level, tt.expected, logger.GetLevel())
		}
	}
}

func TestDiscard(t *testing.T) {
	if Discard() == nil {
		t.Error("Expected logger to be initialized")
	}
}
