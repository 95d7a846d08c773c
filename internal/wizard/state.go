// Package wizard holds the multi-step form progression state for one
// document-drafting session. The state machine is pure; durability lives in
// the Store.
package wizard

// State is the accumulated wizard state for one session. Values collected in
// earlier steps are never reset between steps; only Reset clears them.
type State struct {
	SchemaID          string            `json:"schemaId"`
	StepIndex         int               `json:"stepIndex"`
	Values            map[string]string `json:"values"`
	GeneratedDocument *string           `json:"generatedDocument,omitempty"`
}

// NewState starts a fresh session on the given template
func NewState(schemaID string) *State {
	return &State{
		SchemaID: schemaID,
		Values:   make(map[string]string),
	}
}

// SetField upserts one value; keys are never removed
func (s *State) SetField(key, value string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
}

// Advance moves to the next step. At the last step it is a no-op; the index
// never exceeds totalSteps-1 and never wraps.
func (s *State) Advance(totalSteps int) {
	if s.StepIndex < totalSteps-1 {
		s.StepIndex++
	}
}

// Retreat moves to the previous step; a no-op at step 0
func (s *State) Retreat() {
	if s.StepIndex > 0 {
		s.StepIndex--
	}
}

// Reset clears the step index, the value map and any generated document
func (s *State) Reset() {
	s.StepIndex = 0
	s.Values = make(map[string]string)
	s.GeneratedDocument = nil
}

// SetGeneratedDocument stores the finalized render; nil clears it
func (s *State) SetGeneratedDocument(text *string) {
	s.GeneratedDocument = text
}

// SelectTemplate switches the active template. Switching to a different
// template implies a Reset: stale values from another schema must never leak
// into a new document flow.
func (s *State) SelectTemplate(schemaID string) {
	if s.SchemaID == schemaID {
		return
	}
	s.SchemaID = schemaID
	s.Reset()
}
