package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.NotEmpty(t, config.GetModel(TierLite))
	assert.NotEmpty(t, config.GetModel(TierStandard))
	assert.NotEqual(t, config.GetModel(TierLite), config.GetModel(TierStandard),
		"gate calls and structured extraction should use different models")
}

func TestGetModelFallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
		},
	}

	// Unconfigured tier falls back to standard
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierLite))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierLite))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel(TierLite, "gemini-custom")

	assert.Equal(t, "gemini-custom", custom.GetModel(TierLite))
	// Original is not mutated
	assert.NotEqual(t, "gemini-custom", config.GetModel(TierLite))
	// Other tiers carry over
	assert.Equal(t, config.GetModel(TierStandard), custom.GetModel(TierStandard))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultConfig(), "")
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "API key")
}
