package model

// FieldType enumerates the input types a schema field can declare
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldEmail  FieldType = "email"
	FieldSelect FieldType = "select"
	FieldRadio  FieldType = "radio"
	FieldDate   FieldType = "date"
)

// FieldOption is one selectable (label, value) pair for select/radio fields
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SchemaField is a single typed input inside a step. The field id doubles as
// the form-data key and the template placeholder name. Ids follow a soft
// naming convention (suffixes like _nome, _cpf_cnpj, _endereco) that the
// validator and the auto-fill resolvers depend on.
type SchemaField struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Type        FieldType     `json:"type"`
	Required    bool          `json:"required"`
	Options     []FieldOption `json:"options,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
}

// SchemaStep is one page of the wizard; step order is progression order
type SchemaStep struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Fields      []SchemaField `json:"fields"`
}

// DocumentSchema is a template definition, materialized at startup and never
// mutated at runtime
type DocumentSchema struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Steps       []SchemaStep `json:"steps"`
}

// DocumentStatus represents document lifecycle status
type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "RASCUNHO"
	DocumentFinalized DocumentStatus = "FINALIZADO"
	DocumentSigned    DocumentStatus = "ASSINADO"
	DocumentArchived  DocumentStatus = "ARQUIVADO"
)

// Document is a generated contract owned by one user
type Document struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	TemplateID    string            `json:"templateId"`
	Title         string            `json:"title"`
	Status        DocumentStatus    `json:"status"`
	FormData      map[string]string `json:"formData"`
	GeneratedText string            `json:"generatedText"`
	CreatedAt     string            `json:"createdAt,omitempty"`
	UpdatedAt     string            `json:"updatedAt,omitempty"`
}

// DocumentVersion is one immutable snapshot of a document's generated text.
// A new submission always produces a new version; versions are never patched.
type DocumentVersion struct {
	ID            string            `json:"id"`
	DocumentID    string            `json:"documentId"`
	Version       int               `json:"version"`
	FormData      map[string]string `json:"formData"`
	GeneratedText string            `json:"generatedText"`
	CreatedAt     string            `json:"createdAt,omitempty"`
}

// Persona is a saved contracting party (person or company), consumed
// read-only by the persona auto-fill resolver
type Persona struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Nome        string `json:"nome"`
	CpfCnpj     string `json:"cpf_cnpj"`
	RG          string `json:"rg"`
	EstadoCivil string `json:"estado_civil"`
	Profissao   string `json:"profissao"`
	Endereco    string `json:"endereco"`
	RegimeBens  string `json:"regime_bens"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Property is a saved imóvel, consumed read-only by the property resolver
type Property struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Endereco       string `json:"endereco"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	CEP            string `json:"cep"`
	Tipo           string `json:"tipo"`
	AreaTotal      string `json:"area_total"`
	AreaConstruida string `json:"area_construida"`
	Matricula      string `json:"matricula"`
	IPTU           string `json:"iptu"`
	Descricao      string `json:"descricao"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// ReceivableStatus represents recebimento lifecycle status
type ReceivableStatus string

const (
	ReceivablePending ReceivableStatus = "PENDENTE"
	ReceivablePaid    ReceivableStatus = "PAGO"
	ReceivableOverdue ReceivableStatus = "ATRASADO"
)

// Receivable is a recebimento (rent, installment, deposit) tied to a user
// and optionally to a document
type Receivable struct {
	ID         string           `json:"id"`
	UserID     string           `json:"userId"`
	DocumentID *string          `json:"documentId,omitempty"`
	Descricao  string           `json:"descricao"`
	Valor      float64          `json:"valor"`
	Vencimento string           `json:"vencimento"`
	Status     ReceivableStatus `json:"status"`
	PagoEm     *string          `json:"pagoEm,omitempty"`
	CreatedAt  string           `json:"createdAt,omitempty"`
	UpdatedAt  string           `json:"updatedAt,omitempty"`
}

// Clause is one reusable contract clause from the user's library
type Clause struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Titulo    string `json:"titulo"`
	Categoria string `json:"categoria"`
	Texto     string `json:"texto"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CustomTemplate is a user-authored template: a markdown body plus field
// definitions, validated against a meta-schema before it is accepted
type CustomTemplate struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId"`
	Titulo    string                 `json:"titulo"`
	Descricao string                 `json:"descricao"`
	Body      string                 `json:"body"`
	Fields    map[string]interface{} `json:"fields"`
	CreatedAt string                 `json:"createdAt,omitempty"`
	UpdatedAt string                 `json:"updatedAt,omitempty"`
}
