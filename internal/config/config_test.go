package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/config"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "${", cfg.Placeholder.Prefix)
	assert.Equal(t, "}", cfg.Placeholder.Suffix)
	assert.Equal(t, ":", cfg.Placeholder.Separator)
	assert.False(t, cfg.Placeholder.Strict)
	assert.Equal(t, placeholder.DefaultMaxDepth, cfg.Placeholder.MaxDepth)
	assert.True(t, cfg.Sources.Env)
	assert.Empty(t, cfg.Sources.Files)

	_, err := placeholder.New(cfg.Placeholder.Prefix, cfg.Placeholder.Suffix,
		placeholder.WithValueSeparator(cfg.Placeholder.Separator))
	assert.NoError(t, err)
}
