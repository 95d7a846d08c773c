package api

import (
	"net/http"
	"os"

	"imodocs/internal/assistant"
	"imodocs/internal/auth"
	"imodocs/internal/db"
	"imodocs/internal/generator"
	"imodocs/internal/pubsub"
	"imodocs/internal/registry"
	"imodocs/internal/service"
	"imodocs/internal/storage"
	"imodocs/internal/ws"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Dependencies struct {
	DB        *db.Pool
	Registry  *registry.Registry
	Generator *generator.Generator
	Bus       *pubsub.Bus
	Hub       *ws.Hub
	Storage   storage.Storage
	Assistant *assistant.Client
	Log       *zap.Logger

	Documents       *service.DocumentService
	Wizard          *service.WizardService
	Personas        *service.PersonaService
	Properties      *service.PropertyService
	Receivables     *service.ReceivableService
	Clauses         *service.ClauseService
	CustomTemplates *service.CustomTemplateService
}

func Routes(d Dependencies) http.Handler {
	r := chi.NewRouter()

	// Add request logging middleware
	r.Use(RequestLogger(d.Log))

	// Add JWT authentication middleware (optional - allows anonymous access)
	jwtSecret := os.Getenv("JWT_SECRET")
	jwtConfig := auth.NewJWTConfig(jwtSecret)
	r.Use(jwtConfig.Middleware)

	// Template endpoints
	r.Get("/templates", d.listTemplates)
	r.Get("/templates/{id}", d.getTemplate)
	r.Get("/templates/{id}/fields", d.templateFields)
	r.Post("/templates/{id}/generate", d.generateDocument)
	r.Post("/templates/{id}/steps/{step}/validate", d.validateStep)

	// Wizard session endpoints
	r.Post("/wizard/{sessionId}/start", d.startWizard)
	r.Get("/wizard/{sessionId}", d.getWizard)
	r.Patch("/wizard/{sessionId}/fields", d.setWizardFields)
	r.Post("/wizard/{sessionId}/advance", d.advanceWizard)
	r.Post("/wizard/{sessionId}/retreat", d.retreatWizard)
	r.Post("/wizard/{sessionId}/reset", d.resetWizard)
	r.Post("/wizard/{sessionId}/fill/persona/{personaId}", d.fillPersona)
	r.Post("/wizard/{sessionId}/fill/imovel/{propertyId}", d.fillProperty)
	r.Post("/wizard/{sessionId}/finalize", d.finalizeWizard)

	// Document endpoints
	r.Post("/documents", d.createDocument)
	r.Get("/documents", d.listDocuments)
	r.Get("/documents/{id}", d.getDocument)
	r.Put("/documents/{id}", d.updateDocument)
	r.Delete("/documents/{id}", d.deleteDocument)
	r.Get("/documents/{id}/versions", d.listDocumentVersions)
	r.Get("/documents/{id}/export", d.exportDocument)

	// Persona endpoints
	r.Post("/personas", d.createPersona)
	r.Get("/personas", d.listPersonas)
	r.Get("/personas/{id}", d.getPersona)
	r.Put("/personas/{id}", d.updatePersona)
	r.Delete("/personas/{id}", d.deletePersona)

	// Property (imovel) endpoints
	r.Post("/imoveis", d.createProperty)
	r.Get("/imoveis", d.listProperties)
	r.Get("/imoveis/{id}", d.getProperty)
	r.Put("/imoveis/{id}", d.updateProperty)
	r.Delete("/imoveis/{id}", d.deleteProperty)

	// Receivable (recebimento) endpoints
	r.Post("/recebimentos", d.createReceivable)
	r.Get("/recebimentos", d.listReceivables)
	r.Get("/recebimentos/{id}", d.getReceivable)
	r.Post("/recebimentos/{id}/pay", d.payReceivable)
	r.Delete("/recebimentos/{id}", d.deleteReceivable)

	// Clause library endpoints
	r.Post("/clausulas", d.createClause)
	r.Get("/clausulas", d.listClauses)
	r.Delete("/clausulas/{id}", d.deleteClause)

	// Custom template endpoints
	r.Post("/custom-templates", d.createCustomTemplate)
	r.Get("/custom-templates", d.listCustomTemplates)
	r.Get("/custom-templates/{id}", d.getCustomTemplate)
	r.Delete("/custom-templates/{id}", d.deleteCustomTemplate)
	r.Post("/custom-templates/{id}/render", d.renderCustomTemplate)

	// Attachment endpoints
	r.Post("/attachments/sign", d.signAttachment)

	// Assistant endpoint
	r.Post("/assistant/ask", d.askAssistant)

	// WebSocket endpoint
	r.Get("/ws", d.wsHandler)

	return r
}
