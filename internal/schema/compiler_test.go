package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiler_Prepare(t *testing.T) {
	compiler := NewCompilerWithCache(64)
	ctx := context.Background()

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"titulo": map[string]interface{}{
				"type": "string",
			},
		},
		"required": []string{"titulo"},
	}

	err := compiler.Prepare(ctx, schema)
	require.NoError(t, err)

	// Second prepare hits the cache
	err = compiler.Prepare(ctx, schema)
	require.NoError(t, err)
}

func TestCompiler_Validate(t *testing.T) {
	compiler := NewCompilerWithCache(64)
	ctx := context.Background()

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"titulo": map[string]interface{}{
				"type": "string",
			},
		},
		"required": []string{"titulo"},
	}

	err := compiler.Validate(ctx, schema, map[string]interface{}{"titulo": "Contrato"})
	assert.NoError(t, err)

	err = compiler.Validate(ctx, schema, map[string]interface{}{})
	assert.Error(t, err)
}

func TestCompiler_InvalidSchema(t *testing.T) {
	compiler := NewCompilerWithCache(64)
	ctx := context.Background()

	bad := map[string]interface{}{
		"type": 42,
	}
	err := compiler.Prepare(ctx, bad)
	assert.Error(t, err)
}
