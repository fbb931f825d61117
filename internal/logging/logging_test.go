package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.WithFields(logrus.Fields{"columns": 384, "rows": 216}).Info("grid ready")
	out := buf.String()
	assert.Contains(t, out, "grid ready")
	assert.Contains(t, out, "columns=384")
	assert.Contains(t, out, "rows=216")
}

func TestNewDefaultsAndRejects(t *testing.T) {
	l, err := New("", nil)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	_, err = New("loud", nil)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("dropped")
	assert.NotNil(t, l)
}
