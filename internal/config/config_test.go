package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKeys(t *testing.T) {
	cfg := &Config{
		ClientAPIKeys: " abc, def ,,",
		AdminAPIKeys:  "",
	}

	assert.Equal(t, []string{"abc", "def"}, cfg.ClientKeys())
	assert.Empty(t, cfg.AdminKeys())
}
