package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Severity
		wantErr  bool
	}{
		{"debug", "debug", SeverityDebug, false},
		{"info", "info", SeverityInfo, false},
		{"warning", "warning", SeverityWarning, false},
		{"warn alias", "warn", SeverityWarning, false},
		{"error", "error", SeverityError, false},
		{"mixed case", "WARNING", SeverityWarning, false},
		{"padded", "  info  ", SeverityInfo, false},
		{"invalid", "loud", SeverityDebug, true},
		{"empty", "", SeverityDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, err := ParseSeverity(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, sev)
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	assert.True(t, SeverityDebug < SeverityInfo)
	assert.True(t, SeverityInfo < SeverityWarning)
	assert.True(t, SeverityWarning < SeverityError)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "debug", SeverityDebug.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
	assert.Equal(t, "unknown", Severity(-1).String())
}

func TestSeverity_Valid(t *testing.T) {
	for s := SeverityDebug; s <= SeverityError; s++ {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Severity(-1).Valid())
	assert.False(t, Severity(4).Valid())
}

func TestSeverity_TextRoundTrip(t *testing.T) {
	for s := SeverityDebug; s <= SeverityError; s++ {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var parsed Severity
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, s, parsed)
	}

	_, err := Severity(9).MarshalText()
	assert.Error(t, err)

	var parsed Severity
	assert.Error(t, parsed.UnmarshalText([]byte("loud")))
}

func TestSeverity_ZerologLevel(t *testing.T) {
	tests := []struct {
		severity Severity
		level    zerolog.Level
	}{
		{SeverityDebug, zerolog.DebugLevel},
		{SeverityInfo, zerolog.InfoLevel},
		{SeverityWarning, zerolog.WarnLevel},
		{SeverityError, zerolog.ErrorLevel},
		{Severity(9), zerolog.NoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, tt.severity.zerologLevel())
	}
}
