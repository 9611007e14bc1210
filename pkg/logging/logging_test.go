package logging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
}

func (r *recorder) record(level string) func(string, ...interface{}) {
	return func(format string, args ...interface{}) {
		r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
	}
}

func TestNewLogger_Prefix(t *testing.T) {
	rec := &recorder{}
	logger := NewLogger("module: procdesc , ", LogFuncs{
		Debugf: rec.record("DEBUG"),
		Infof:  rec.record("INFO"),
		Warnf:  rec.record("WARN"),
		Errorf: rec.record("ERROR"),
	})

	logger.Infof("loaded %d apps", 3)
	logger.Errorf("failed: %v", "boom")

	assert.Equal(t, []string{
		"INFO module: procdesc , loaded 3 apps",
		"ERROR module: procdesc , failed: boom",
	}, rec.lines)
}

func TestNewLogger_LogLevelf(t *testing.T) {
	rec := &recorder{}
	logger := NewLogger("", LogFuncs{
		Debugf: rec.record("DEBUG"),
		Infof:  rec.record("INFO"),
		Warnf:  rec.record("WARN"),
		Errorf: rec.record("ERROR"),
	})

	logger.LogLevelf(DebugLevel, "a")
	logger.LogLevelf(InfoLevel, "b")
	logger.LogLevelf(WarnLevel, "c")
	logger.LogLevelf(ErrorLevel, "d")
	logger.LogLevelf(42, "e")

	assert.Equal(t, []string{"DEBUG a", "INFO b", "WARN c", "ERROR d", "ERROR e"}, rec.lines)
}

func TestNewLogger_NilFuncsAreSkipped(t *testing.T) {
	rec := &recorder{}
	logger := NewLogger("", LogFuncs{Errorf: rec.record("ERROR")})

	logger.Debugf("ignored")
	logger.Infof("ignored")
	logger.Warnf("ignored")
	logger.Errorf("kept")

	assert.Equal(t, []string{"ERROR kept"}, rec.lines)
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]int{
		"debug": DebugLevel,
		"info":  InfoLevel,
		"":      InfoLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
