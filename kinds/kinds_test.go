package kinds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/contentkit/content"
)

func TestAllKindsRegistered(t *testing.T) {
	assert.Equal(t, []content.Kind{
		content.KindImagePrompt,
		content.KindNewsletter,
		content.KindPoll,
		content.KindThread,
	}, content.Available())
}

func TestSchemas(t *testing.T) {
	for _, kind := range content.Available() {
		schema, err := content.Schema(kind)
		require.NoError(t, err, kind)
		assert.Contains(t, string(schema), `"title": "`+string(kind)+`"`)
	}
}

func TestProcess_Totality(t *testing.T) {
	inputs := []string{"", " ", "```", "<thread>", "# \n## \n", "{", "\x00\xff"}

	for _, kind := range content.Available() {
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				_, err := content.Process(content.Request{Kind: kind, Content: in}, content.DefaultOptions())
				assert.NoError(t, err)
			})
		}
	}
}
