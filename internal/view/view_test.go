package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineLoadsAllTemplates(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())
}

func TestRenderErrorPage(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "error", map[string]any{
		"Status":  404,
		"Code":    "NOT_FOUND",
		"Message": "User with ID 99 not found",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "NOT_FOUND")
	assert.Contains(t, buf.String(), "User with ID 99 not found")
}

func TestRenderWithLayout(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "tags/index", map[string]any{
		"Title": "Tags",
		"Tags":  nil,
	}, "layouts/main")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<html")
	assert.Contains(t, buf.String(), "Tags")
}
