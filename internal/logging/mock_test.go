package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	err := errors.New("boom")

	mock.Info("start")
	mock.WithField(FieldFile, "records.txt").WithError(err).Warn("bad line", Field{Key: FieldLine, Value: 3})

	require.Len(t, mock.GetEntries(), 2)
	warn := mock.GetEntriesByLevel("WARN")
	require.Len(t, warn, 1)
	assert.Equal(t, err, warn[0].Error)
	assert.Equal(t, []Field{{Key: FieldFile, Value: "records.txt"}, {Key: FieldLine, Value: 3}}, warn[0].Fields)
	assert.True(t, mock.HasEntry("INFO", "start"))
	assert.False(t, mock.HasEntry("ERROR", "start"))
}

func TestMockLogger_ZeroValue(t *testing.T) {
	var mock MockLogger

	mock.Debug("zero")

	assert.True(t, mock.HasEntry("DEBUG", "zero"))
}
