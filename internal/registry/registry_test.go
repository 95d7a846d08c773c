package registry_test

import (
	"testing"

	"imodocs/internal/generator"
	"imodocs/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sharedConventionalIDs are placeholders resolved by convention rather than
// declared as wizard fields
var sharedConventionalIDs = map[string]bool{
	"foro": true,
}

func TestRegistry_Get(t *testing.T) {
	reg := registry.New()

	schema, ok := reg.Get("contrato_compra_venda")
	require.True(t, ok)
	assert.Equal(t, "contrato_compra_venda", schema.ID)
	assert.NotEmpty(t, schema.Steps)

	_, ok = reg.Get("nao_existe")
	assert.False(t, ok)
}

func TestRegistry_DefaultTemplateExists(t *testing.T) {
	reg := registry.New()

	_, ok := reg.Get(registry.DefaultTemplateID)
	require.True(t, ok)
	_, ok = reg.Body(registry.DefaultTemplateID)
	require.True(t, ok)
}

func TestRegistry_List(t *testing.T) {
	reg := registry.New()

	schemas := reg.List()
	require.Len(t, schemas, 8)

	// Every listed schema has a body
	for _, s := range schemas {
		body, ok := reg.Body(s.ID)
		assert.True(t, ok, "missing body for %s", s.ID)
		assert.NotEmpty(t, body)
	}
}

// Every placeholder in a body must be declared as a field of that template's
// steps, except the conventional shared ids.
func TestRegistry_BodyPlaceholdersDeclared(t *testing.T) {
	reg := registry.New()

	for _, s := range reg.List() {
		body, ok := reg.Body(s.ID)
		require.True(t, ok)

		declared := make(map[string]bool)
		for _, id := range registry.FieldIDs(s) {
			declared[id] = true
		}

		for _, id := range generator.ExtractFields(body) {
			if sharedConventionalIDs[id] {
				continue
			}
			assert.True(t, declared[id], "template %s: placeholder %q not declared in steps", s.ID, id)
		}
	}
}

func TestRegistry_FieldIDsUnique(t *testing.T) {
	reg := registry.New()

	for _, s := range reg.List() {
		seen := make(map[string]bool)
		for _, id := range registry.FieldIDs(s) {
			assert.False(t, seen[id], "template %s: duplicate field id %q", s.ID, id)
			seen[id] = true
		}
	}
}

// Rendering with every declared field filled must leave no unreplaced
// placeholder syntax behind.
func TestRegistry_GenerateLeavesNoPlaceholders(t *testing.T) {
	reg := registry.New()
	gen := generator.New(reg)

	for _, s := range reg.List() {
		values := make(map[string]string)
		for _, id := range registry.FieldIDs(s) {
			values[id] = "x"
		}
		values["foro"] = "São Paulo/SP"

		out := gen.Generate(s.ID, values)
		assert.NotContains(t, out, "{{", "template %s: unreplaced placeholder", s.ID)
		assert.NotContains(t, out, "}}", "template %s: unreplaced placeholder", s.ID)
	}
}
