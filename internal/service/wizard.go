package service

import (
	"context"
	"fmt"

	"imodocs/internal/autofill"
	"imodocs/internal/db"
	"imodocs/internal/model"
	"imodocs/internal/registry"
	"imodocs/internal/validate"
	"imodocs/internal/wizard"

	"go.uber.org/zap"
)

// WizardService drives the step-by-step document form: loading and saving
// per-session state, validating the current step, moving through steps and
// finalizing into a persisted document.
type WizardService struct {
	store   wizard.Store
	reg     *registry.Registry
	queries *db.Queries
	docs    *DocumentService
	log     *zap.Logger
}

func NewWizardService(store wizard.Store, reg *registry.Registry, queries *db.Queries, docs *DocumentService, log *zap.Logger) *WizardService {
	return &WizardService{
		store:   store,
		reg:     reg,
		queries: queries,
		docs:    docs,
		log:     log,
	}
}

// Session is the wizard state joined with its resolved schema, the shape the
// frontend renders from.
type Session struct {
	State  *wizard.State        `json:"state"`
	Schema model.DocumentSchema `json:"schema"`
}

// StartSession begins (or restarts) a session on the given template. Unknown
// template ids fall back to the default template rather than failing.
func (s *WizardService) StartSession(ctx context.Context, sessionID, templateID string) (*Session, error) {
	schema, ok := s.reg.Get(templateID)
	if !ok {
		schema, _ = s.reg.Get(registry.DefaultTemplateID)
	}

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if state == nil {
		state = wizard.NewState(schema.ID)
	} else {
		state.SelectTemplate(schema.ID)
	}

	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &Session{State: state, Schema: schema}, nil
}

// GetSession returns the current session, or nil when none exists
func (s *WizardService) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if state == nil {
		return nil, nil
	}
	schema, ok := s.reg.Get(state.SchemaID)
	if !ok {
		// The stored template no longer exists. Switch to the default,
		// which resets the step index and values so the state can never
		// point past the replacement schema's steps.
		schema, _ = s.reg.Get(registry.DefaultTemplateID)
		state.SelectTemplate(schema.ID)
		if err := s.store.Save(ctx, sessionID, state); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
	}
	return &Session{State: state, Schema: schema}, nil
}

// SetFields merges the given values into the session state without moving
// the step index. Saving a partial step is always allowed; validation only
// gates advancing.
func (s *WizardService) SetFields(ctx context.Context, sessionID string, values map[string]string) (*Session, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		sess.State.SetField(k, v)
	}
	if err := s.store.Save(ctx, sessionID, sess.State); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// ValidateStep runs the field validators of the current step against the
// accumulated values
func (s *WizardService) ValidateStep(ctx context.Context, sessionID string) (validate.Result, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return validate.Result{}, err
	}
	step := sess.Schema.Steps[sess.State.StepIndex]
	return validate.Build(step.Fields).Validate(sess.State.Values), nil
}

// Advance validates the current step and, when it passes, moves to the next
// one. The failed Result is returned so the caller can surface per-field
// messages.
func (s *WizardService) Advance(ctx context.Context, sessionID string) (*Session, validate.Result, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, validate.Result{}, err
	}
	step := sess.Schema.Steps[sess.State.StepIndex]
	result := validate.Build(step.Fields).Validate(sess.State.Values)
	if !result.Valid {
		return sess, result, nil
	}
	sess.State.Advance(len(sess.Schema.Steps))
	if err := s.store.Save(ctx, sessionID, sess.State); err != nil {
		return nil, validate.Result{}, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, result, nil
}

// Retreat moves back one step; values are kept
func (s *WizardService) Retreat(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.State.Retreat()
	if err := s.store.Save(ctx, sessionID, sess.State); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// ResetSession clears all collected values and returns to the first step
func (s *WizardService) ResetSession(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.State.Reset()
	if err := s.store.Save(ctx, sessionID, sess.State); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// ApplyPersonaFill projects a saved persona onto the current step's fields.
// Only fields of the current step are touched and existing values are never
// overwritten by the resolver; the returned map tells the caller which fields
// were filled.
func (s *WizardService) ApplyPersonaFill(ctx context.Context, sessionID, userID, personaID string) (*Session, map[string]string, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	row, err := s.queries.GetPersonaByID(ctx, userID, personaID)
	if err != nil {
		return nil, nil, fmt.Errorf("persona not found: %w", err)
	}
	persona := dbPersonaToModel(row)

	step := sess.Schema.Steps[sess.State.StepIndex]
	filled := autofill.ResolvePersonaFill(fieldIDs(step), *persona)
	s.applyFill(sess.State, filled)
	if err := s.store.Save(ctx, sessionID, sess.State); err != nil {
		return nil, nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, filled, nil
}

// ApplyPropertyFill projects a saved property onto the current step's fields
func (s *WizardService) ApplyPropertyFill(ctx context.Context, sessionID, userID, propertyID string) (*Session, map[string]string, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	row, err := s.queries.GetPropertyByID(ctx, userID, propertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("property not found: %w", err)
	}
	property := dbPropertyToModel(row)

	step := sess.Schema.Steps[sess.State.StepIndex]
	filled := autofill.ResolvePropertyFill(fieldIDs(step), *property)
	s.applyFill(sess.State, filled)
	if err := s.store.Save(ctx, sessionID, sess.State); err != nil {
		return nil, nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, filled, nil
}

// Finalize validates every step, generates the document, persists it and
// clears the session. Validation errors come back in the Result with a nil
// document.
func (s *WizardService) Finalize(ctx context.Context, sessionID, userID, title string) (*model.Document, validate.Result, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, validate.Result{}, err
	}

	merged := validate.Result{Valid: true, Errors: make(map[string]string)}
	for _, step := range sess.Schema.Steps {
		r := validate.Build(step.Fields).Validate(sess.State.Values)
		if !r.Valid {
			merged.Valid = false
			for k, v := range r.Errors {
				merged.Errors[k] = v
			}
		}
	}
	if !merged.Valid {
		return nil, merged, nil
	}

	doc, err := s.docs.CreateDocument(ctx, CreateDocumentInput{
		UserID:     userID,
		TemplateID: sess.State.SchemaID,
		Title:      title,
		FormData:   sess.State.Values,
	})
	if err != nil {
		return nil, validate.Result{}, err
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.Warn("Failed to clear wizard session", zap.String("session_id", sessionID), zap.Error(err))
	}
	return doc, merged, nil
}

func (s *WizardService) requireSession(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("no active session")
	}
	return sess, nil
}

// applyFill writes resolved values without clobbering what the user typed
func (s *WizardService) applyFill(state *wizard.State, filled map[string]string) {
	for k, v := range filled {
		if existing, ok := state.Values[k]; ok && existing != "" {
			delete(filled, k)
			continue
		}
		state.SetField(k, v)
	}
}

func fieldIDs(step model.SchemaStep) []string {
	ids := make([]string, 0, len(step.Fields))
	for _, f := range step.Fields {
		ids = append(ids, f.ID)
	}
	return ids
}
