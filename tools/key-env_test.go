package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KeyEnv(t *testing.T) {
	assert.Equal(t, "LOG_LEVEL", KeyEnv("log-level"))
	assert.Equal(t, "LOG_FORCE_COLORS", KeyEnv("log-force-colors"))
	assert.Equal(t, "A_B", KeyEnv("a.b"))
	assert.Equal(t, "SUB__KEY", KeyEnv("sub/key"))
	assert.Equal(t, "CWD", KeyEnv("cwd"))
}
