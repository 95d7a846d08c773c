package registry

import (
	"imodocs/internal/model"
)

// DefaultTemplateID is the fallback callers use when a requested template id
// is unknown. The registry itself never errors on an unknown id.
const DefaultTemplateID = "contrato_locacao_residencial"

// Registry is the static catalog of built-in document templates. It is
// materialized once at startup and has no mutation API.
type Registry struct {
	schemas map[string]model.DocumentSchema
	bodies  map[string]string
	order   []string
}

// New builds the registry from the hand-authored template catalog
func New() *Registry {
	r := &Registry{
		schemas: make(map[string]model.DocumentSchema),
		bodies:  make(map[string]string),
	}
	for _, s := range builtinSchemas() {
		r.schemas[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	for id, body := range builtinBodies() {
		r.bodies[id] = body
	}
	return r
}

// Get returns the schema for a template id. Unknown ids return ok=false;
// fallback selection is left to the caller.
func (r *Registry) Get(id string) (model.DocumentSchema, bool) {
	s, ok := r.schemas[id]
	return s, ok
}

// Body returns the raw markdown body for a template id
func (r *Registry) Body(id string) (string, bool) {
	b, ok := r.bodies[id]
	return b, ok
}

// List returns all schemas in catalog declaration order
func (r *Registry) List() []model.DocumentSchema {
	out := make([]model.DocumentSchema, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.schemas[id])
	}
	return out
}

// FieldIDs returns every field id declared across a schema's steps, in step
// order. Used by validation and the registry completeness tests.
func FieldIDs(s model.DocumentSchema) []string {
	var ids []string
	for _, step := range s.Steps {
		for _, f := range step.Fields {
			ids = append(ids, f.ID)
		}
	}
	return ids
}
