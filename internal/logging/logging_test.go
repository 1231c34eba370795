package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gotest.tools/v3/assert"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "feed.log")

	log, err := New(Options{Path: path})
	assert.NilError(t, err)

	log.Info("random pick", zap.String("profile", "2"))
	log.Debug("below file level")
	assert.NilError(t, log.Sync())

	data, err := os.ReadFile(path)
	assert.NilError(t, err)

	content := string(data)
	assert.Assert(t, strings.Contains(content, `"msg":"random pick"`), content)
	assert.Assert(t, strings.Contains(content, `"profile":"2"`), content)
	assert.Assert(t, strings.Contains(content, `"level":"INFO"`), content)
	assert.Assert(t, !strings.Contains(content, "below file level"), content)
}

func TestNew_NoOutputsIsNop(t *testing.T) {
	log, err := New(Options{})
	assert.NilError(t, err)
	assert.Assert(t, log != nil)
	log.Info("dropped")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath("/tmp/feed"), filepath.Join("/tmp/feed", "feed.log"))
}
