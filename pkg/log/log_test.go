package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)

	l.Debugf("hidden 0x%x", 0xfea0)
	assert.Empty(t, buf.String())

	l.Infof("loaded %s", "TETRIS")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "msg=loaded TETRIS")
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	// must not panic
	l.Infof("%d", 1)
	l.Errorf("%d", 2)
	l.Debugf("%d", 3)
}
