package log

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetFirstCallDecidesLevel(t *testing.T) {
	logger := Get(filepath.Join(t.TempDir(), "storefront.log"), "development")
	assert.Equal(t, zerolog.TraceLevel, logger.GetLevel())

	again := Get(filepath.Join(t.TempDir(), "other.log"), "production")
	assert.Equal(t, zerolog.TraceLevel, again.GetLevel())
}
