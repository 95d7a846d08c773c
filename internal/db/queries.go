package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries wraps database queries. Every row is scoped to the owning user.
type Queries struct {
	*pgxpool.Pool
}

// NewQueries creates a new Queries instance
func NewQueries(pool *pgxpool.Pool) *Queries {
	return &Queries{Pool: pool}
}

// Document queries

type Document struct {
	ID            string
	UserID        string
	TemplateID    string
	Title         string
	Status        string
	FormData      map[string]string
	GeneratedText string
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateDocumentParams struct {
	ID            string
	UserID        string
	TemplateID    string
	Title         string
	Status        string
	FormData      map[string]string
	GeneratedText string
}

func (q *Queries) CreateDocument(ctx context.Context, p CreateDocumentParams) (Document, error) {
	var d Document
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO documents (id, user_id, template_id, title, status, form_data, generated_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, template_id, title, status, form_data, generated_text,
			deleted_at, created_at, updated_at`,
		p.ID, p.UserID, p.TemplateID, p.Title, p.Status, p.FormData, p.GeneratedText,
	).Scan(
		&d.ID, &d.UserID, &d.TemplateID, &d.Title, &d.Status, &d.FormData, &d.GeneratedText,
		&d.DeletedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (q *Queries) GetDocumentByID(ctx context.Context, userID, id string) (Document, error) {
	var d Document
	err := q.Pool.QueryRow(ctx,
		`SELECT id, user_id, template_id, title, status, form_data, generated_text,
			deleted_at, created_at, updated_at
		FROM documents WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, userID,
	).Scan(
		&d.ID, &d.UserID, &d.TemplateID, &d.Title, &d.Status, &d.FormData, &d.GeneratedText,
		&d.DeletedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (q *Queries) ListDocuments(ctx context.Context, userID string, status *string, limit, offset int) ([]Document, error) {
	var rows pgx.Rows
	var err error

	if status != nil {
		rows, err = q.Pool.Query(ctx,
			`SELECT id, user_id, template_id, title, status, form_data, generated_text,
				deleted_at, created_at, updated_at
			FROM documents
			WHERE user_id = $1 AND status = $2 AND deleted_at IS NULL
			ORDER BY created_at DESC
			LIMIT $3 OFFSET $4`,
			userID, *status, limit, offset,
		)
	} else {
		rows, err = q.Pool.Query(ctx,
			`SELECT id, user_id, template_id, title, status, form_data, generated_text,
				deleted_at, created_at, updated_at
			FROM documents
			WHERE user_id = $1 AND deleted_at IS NULL
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`,
			userID, limit, offset,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]Document, 0)
	for rows.Next() {
		var d Document
		err := rows.Scan(
			&d.ID, &d.UserID, &d.TemplateID, &d.Title, &d.Status, &d.FormData, &d.GeneratedText,
			&d.DeletedAt, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

type UpdateDocumentParams struct {
	ID            string
	UserID        string
	Title         string
	Status        string
	FormData      map[string]string
	GeneratedText string
}

// UpdateDocument is an idempotent upsert on the head row: overlapping saves
// converge to last-write-wins while versions stay append-only.
func (q *Queries) UpdateDocument(ctx context.Context, p UpdateDocumentParams) (Document, error) {
	var d Document
	err := q.Pool.QueryRow(ctx,
		`UPDATE documents
		SET title = $3, status = $4, form_data = $5, generated_text = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING id, user_id, template_id, title, status, form_data, generated_text,
			deleted_at, created_at, updated_at`,
		p.ID, p.UserID, p.Title, p.Status, p.FormData, p.GeneratedText,
	).Scan(
		&d.ID, &d.UserID, &d.TemplateID, &d.Title, &d.Status, &d.FormData, &d.GeneratedText,
		&d.DeletedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (q *Queries) SoftDeleteDocument(ctx context.Context, userID, id string) error {
	result, err := q.Pool.Exec(ctx,
		"UPDATE documents SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL",
		id, userID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Document version queries

type DocumentVersion struct {
	ID            string
	DocumentID    string
	Version       int
	FormData      map[string]string
	GeneratedText string
	CreatedAt     time.Time
}

func (q *Queries) CreateDocumentVersion(ctx context.Context, id, documentID string, formData map[string]string, generatedText string) (DocumentVersion, error) {
	var v DocumentVersion
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO document_versions (id, document_id, version, form_data, generated_text)
		VALUES ($1, $2,
			(SELECT COALESCE(MAX(version), 0) + 1 FROM document_versions WHERE document_id = $2),
			$3, $4)
		RETURNING id, document_id, version, form_data, generated_text, created_at`,
		id, documentID, formData, generatedText,
	).Scan(&v.ID, &v.DocumentID, &v.Version, &v.FormData, &v.GeneratedText, &v.CreatedAt)
	return v, err
}

func (q *Queries) ListDocumentVersions(ctx context.Context, documentID string) ([]DocumentVersion, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, document_id, version, form_data, generated_text, created_at
		FROM document_versions
		WHERE document_id = $1
		ORDER BY version DESC`,
		documentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := make([]DocumentVersion, 0)
	for rows.Next() {
		var v DocumentVersion
		if err := rows.Scan(&v.ID, &v.DocumentID, &v.Version, &v.FormData, &v.GeneratedText, &v.CreatedAt); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// Persona queries

type Persona struct {
	ID          string
	UserID      string
	Nome        string
	CpfCnpj     string
	RG          string
	EstadoCivil string
	Profissao   string
	Endereco    string
	RegimeBens  string
	Telefone    string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PersonaParams struct {
	ID          string
	UserID      string
	Nome        string
	CpfCnpj     string
	RG          string
	EstadoCivil string
	Profissao   string
	Endereco    string
	RegimeBens  string
	Telefone    string
	Email       string
}

func (q *Queries) CreatePersona(ctx context.Context, p PersonaParams) (Persona, error) {
	var r Persona
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO personas (id, user_id, nome, cpf_cnpj, rg, estado_civil, profissao, endereco, regime_bens, telefone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, user_id, nome, cpf_cnpj, rg, estado_civil, profissao, endereco, regime_bens, telefone, email, created_at, updated_at`,
		p.ID, p.UserID, p.Nome, p.CpfCnpj, p.RG, p.EstadoCivil, p.Profissao, p.Endereco, p.RegimeBens, p.Telefone, p.Email,
	).Scan(
		&r.ID, &r.UserID, &r.Nome, &r.CpfCnpj, &r.RG, &r.EstadoCivil, &r.Profissao, &r.Endereco, &r.RegimeBens, &r.Telefone, &r.Email,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) GetPersonaByID(ctx context.Context, userID, id string) (Persona, error) {
	var r Persona
	err := q.Pool.QueryRow(ctx,
		`SELECT id, user_id, nome, cpf_cnpj, rg, estado_civil, profissao, endereco, regime_bens, telefone, email, created_at, updated_at
		FROM personas WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&r.ID, &r.UserID, &r.Nome, &r.CpfCnpj, &r.RG, &r.EstadoCivil, &r.Profissao, &r.Endereco, &r.RegimeBens, &r.Telefone, &r.Email,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) ListPersonas(ctx context.Context, userID string, limit, offset int) ([]Persona, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, user_id, nome, cpf_cnpj, rg, estado_civil, profissao, endereco, regime_bens, telefone, email, created_at, updated_at
		FROM personas WHERE user_id = $1
		ORDER BY nome ASC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	personas := make([]Persona, 0)
	for rows.Next() {
		var r Persona
		err := rows.Scan(
			&r.ID, &r.UserID, &r.Nome, &r.CpfCnpj, &r.RG, &r.EstadoCivil, &r.Profissao, &r.Endereco, &r.RegimeBens, &r.Telefone, &r.Email,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		personas = append(personas, r)
	}
	return personas, rows.Err()
}

func (q *Queries) UpdatePersona(ctx context.Context, p PersonaParams) (Persona, error) {
	var r Persona
	err := q.Pool.QueryRow(ctx,
		`UPDATE personas
		SET nome = $3, cpf_cnpj = $4, rg = $5, estado_civil = $6, profissao = $7,
			endereco = $8, regime_bens = $9, telefone = $10, email = $11, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, nome, cpf_cnpj, rg, estado_civil, profissao, endereco, regime_bens, telefone, email, created_at, updated_at`,
		p.ID, p.UserID, p.Nome, p.CpfCnpj, p.RG, p.EstadoCivil, p.Profissao, p.Endereco, p.RegimeBens, p.Telefone, p.Email,
	).Scan(
		&r.ID, &r.UserID, &r.Nome, &r.CpfCnpj, &r.RG, &r.EstadoCivil, &r.Profissao, &r.Endereco, &r.RegimeBens, &r.Telefone, &r.Email,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) DeletePersona(ctx context.Context, userID, id string) error {
	result, err := q.Pool.Exec(ctx,
		"DELETE FROM personas WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Property (imóvel) queries

type Property struct {
	ID             string
	UserID         string
	Endereco       string
	Bairro         string
	Cidade         string
	Estado         string
	CEP            string
	Tipo           string
	AreaTotal      string
	AreaConstruida string
	Matricula      string
	IPTU           string
	Descricao      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PropertyParams struct {
	ID             string
	UserID         string
	Endereco       string
	Bairro         string
	Cidade         string
	Estado         string
	CEP            string
	Tipo           string
	AreaTotal      string
	AreaConstruida string
	Matricula      string
	IPTU           string
	Descricao      string
}

func (q *Queries) CreateProperty(ctx context.Context, p PropertyParams) (Property, error) {
	var r Property
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO imoveis (id, user_id, endereco, bairro, cidade, estado, cep, tipo, area_total, area_construida, matricula, iptu, descricao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, user_id, endereco, bairro, cidade, estado, cep, tipo, area_total, area_construida, matricula, iptu, descricao, created_at, updated_at`,
		p.ID, p.UserID, p.Endereco, p.Bairro, p.Cidade, p.Estado, p.CEP, p.Tipo, p.AreaTotal, p.AreaConstruida, p.Matricula, p.IPTU, p.Descricao,
	).Scan(
		&r.ID, &r.UserID, &r.Endereco, &r.Bairro, &r.Cidade, &r.Estado, &r.CEP, &r.Tipo, &r.AreaTotal, &r.AreaConstruida, &r.Matricula, &r.IPTU, &r.Descricao,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) GetPropertyByID(ctx context.Context, userID, id string) (Property, error) {
	var r Property
	err := q.Pool.QueryRow(ctx,
		`SELECT id, user_id, endereco, bairro, cidade, estado, cep, tipo, area_total, area_construida, matricula, iptu, descricao, created_at, updated_at
		FROM imoveis WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&r.ID, &r.UserID, &r.Endereco, &r.Bairro, &r.Cidade, &r.Estado, &r.CEP, &r.Tipo, &r.AreaTotal, &r.AreaConstruida, &r.Matricula, &r.IPTU, &r.Descricao,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) ListProperties(ctx context.Context, userID string, limit, offset int) ([]Property, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, user_id, endereco, bairro, cidade, estado, cep, tipo, area_total, area_construida, matricula, iptu, descricao, created_at, updated_at
		FROM imoveis WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := make([]Property, 0)
	for rows.Next() {
		var r Property
		err := rows.Scan(
			&r.ID, &r.UserID, &r.Endereco, &r.Bairro, &r.Cidade, &r.Estado, &r.CEP, &r.Tipo, &r.AreaTotal, &r.AreaConstruida, &r.Matricula, &r.IPTU, &r.Descricao,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		properties = append(properties, r)
	}
	return properties, rows.Err()
}

func (q *Queries) UpdateProperty(ctx context.Context, p PropertyParams) (Property, error) {
	var r Property
	err := q.Pool.QueryRow(ctx,
		`UPDATE imoveis
		SET endereco = $3, bairro = $4, cidade = $5, estado = $6, cep = $7, tipo = $8,
			area_total = $9, area_construida = $10, matricula = $11, iptu = $12, descricao = $13, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, endereco, bairro, cidade, estado, cep, tipo, area_total, area_construida, matricula, iptu, descricao, created_at, updated_at`,
		p.ID, p.UserID, p.Endereco, p.Bairro, p.Cidade, p.Estado, p.CEP, p.Tipo, p.AreaTotal, p.AreaConstruida, p.Matricula, p.IPTU, p.Descricao,
	).Scan(
		&r.ID, &r.UserID, &r.Endereco, &r.Bairro, &r.Cidade, &r.Estado, &r.CEP, &r.Tipo, &r.AreaTotal, &r.AreaConstruida, &r.Matricula, &r.IPTU, &r.Descricao,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) DeleteProperty(ctx context.Context, userID, id string) error {
	result, err := q.Pool.Exec(ctx,
		"DELETE FROM imoveis WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Receivable (recebimento) queries

type Receivable struct {
	ID         string
	UserID     string
	DocumentID *string
	Descricao  string
	Valor      float64
	Vencimento time.Time
	Status     string
	PagoEm     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReceivableParams struct {
	ID         string
	UserID     string
	DocumentID *string
	Descricao  string
	Valor      float64
	Vencimento time.Time
	Status     string
}

func (q *Queries) CreateReceivable(ctx context.Context, p ReceivableParams) (Receivable, error) {
	var r Receivable
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO recebimentos (id, user_id, document_id, descricao, valor, vencimento, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, document_id, descricao, valor, vencimento, status, pago_em, created_at, updated_at`,
		p.ID, p.UserID, p.DocumentID, p.Descricao, p.Valor, p.Vencimento, p.Status,
	).Scan(
		&r.ID, &r.UserID, &r.DocumentID, &r.Descricao, &r.Valor, &r.Vencimento, &r.Status, &r.PagoEm,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) GetReceivableByID(ctx context.Context, userID, id string) (Receivable, error) {
	var r Receivable
	err := q.Pool.QueryRow(ctx,
		`SELECT id, user_id, document_id, descricao, valor, vencimento, status, pago_em, created_at, updated_at
		FROM recebimentos WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&r.ID, &r.UserID, &r.DocumentID, &r.Descricao, &r.Valor, &r.Vencimento, &r.Status, &r.PagoEm,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// GetReceivableAnyUser fetches a receivable without a user scope; used by the
// background job handlers, which run outside a request context.
func (q *Queries) GetReceivableAnyUser(ctx context.Context, id string) (Receivable, error) {
	var r Receivable
	err := q.Pool.QueryRow(ctx,
		`SELECT id, user_id, document_id, descricao, valor, vencimento, status, pago_em, created_at, updated_at
		FROM recebimentos WHERE id = $1`,
		id,
	).Scan(
		&r.ID, &r.UserID, &r.DocumentID, &r.Descricao, &r.Valor, &r.Vencimento, &r.Status, &r.PagoEm,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) ListReceivables(ctx context.Context, userID string, status *string, limit, offset int) ([]Receivable, error) {
	var rows pgx.Rows
	var err error

	if status != nil {
		rows, err = q.Pool.Query(ctx,
			`SELECT id, user_id, document_id, descricao, valor, vencimento, status, pago_em, created_at, updated_at
			FROM recebimentos
			WHERE user_id = $1 AND status = $2
			ORDER BY vencimento ASC
			LIMIT $3 OFFSET $4`,
			userID, *status, limit, offset,
		)
	} else {
		rows, err = q.Pool.Query(ctx,
			`SELECT id, user_id, document_id, descricao, valor, vencimento, status, pago_em, created_at, updated_at
			FROM recebimentos
			WHERE user_id = $1
			ORDER BY vencimento ASC
			LIMIT $2 OFFSET $3`,
			userID, limit, offset,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receivables := make([]Receivable, 0)
	for rows.Next() {
		var r Receivable
		err := rows.Scan(
			&r.ID, &r.UserID, &r.DocumentID, &r.Descricao, &r.Valor, &r.Vencimento, &r.Status, &r.PagoEm,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		receivables = append(receivables, r)
	}
	return receivables, rows.Err()
}

func (q *Queries) MarkReceivablePaid(ctx context.Context, userID, id string) (Receivable, error) {
	var r Receivable
	err := q.Pool.QueryRow(ctx,
		`UPDATE recebimentos
		SET status = 'PAGO', pago_em = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, document_id, descricao, valor, vencimento, status, pago_em, created_at, updated_at`,
		id, userID,
	).Scan(
		&r.ID, &r.UserID, &r.DocumentID, &r.Descricao, &r.Valor, &r.Vencimento, &r.Status, &r.PagoEm,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// MarkReceivableOverdue flips a still-pending receivable to ATRASADO.
// Paid receivables are left untouched.
func (q *Queries) MarkReceivableOverdue(ctx context.Context, id string) error {
	_, err := q.Pool.Exec(ctx,
		"UPDATE recebimentos SET status = 'ATRASADO', updated_at = NOW() WHERE id = $1 AND status = 'PENDENTE'",
		id,
	)
	return err
}

func (q *Queries) DeleteReceivable(ctx context.Context, userID, id string) error {
	result, err := q.Pool.Exec(ctx,
		"DELETE FROM recebimentos WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Clause library queries

type Clause struct {
	ID        string
	UserID    string
	Titulo    string
	Categoria string
	Texto     string
	CreatedAt time.Time
}

func (q *Queries) CreateClause(ctx context.Context, id, userID, titulo, categoria, texto string) (Clause, error) {
	var c Clause
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO clause_library (id, user_id, titulo, categoria, texto)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, titulo, categoria, texto, created_at`,
		id, userID, titulo, categoria, texto,
	).Scan(&c.ID, &c.UserID, &c.Titulo, &c.Categoria, &c.Texto, &c.CreatedAt)
	return c, err
}

func (q *Queries) ListClauses(ctx context.Context, userID string, categoria *string) ([]Clause, error) {
	var rows pgx.Rows
	var err error

	if categoria != nil {
		rows, err = q.Pool.Query(ctx,
			`SELECT id, user_id, titulo, categoria, texto, created_at
			FROM clause_library WHERE user_id = $1 AND categoria = $2
			ORDER BY titulo ASC`,
			userID, *categoria,
		)
	} else {
		rows, err = q.Pool.Query(ctx,
			`SELECT id, user_id, titulo, categoria, texto, created_at
			FROM clause_library WHERE user_id = $1
			ORDER BY titulo ASC`,
			userID,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clauses := make([]Clause, 0)
	for rows.Next() {
		var c Clause
		if err := rows.Scan(&c.ID, &c.UserID, &c.Titulo, &c.Categoria, &c.Texto, &c.CreatedAt); err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, rows.Err()
}

func (q *Queries) DeleteClause(ctx context.Context, userID, id string) error {
	result, err := q.Pool.Exec(ctx,
		"DELETE FROM clause_library WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Custom template queries

type CustomTemplate struct {
	ID        string
	UserID    string
	Titulo    string
	Descricao string
	Body      string
	Fields    map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CustomTemplateParams struct {
	ID        string
	UserID    string
	Titulo    string
	Descricao string
	Body      string
	Fields    map[string]interface{}
}

func (q *Queries) CreateCustomTemplate(ctx context.Context, p CustomTemplateParams) (CustomTemplate, error) {
	var t CustomTemplate
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO custom_templates (id, user_id, titulo, descricao, body, fields)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, titulo, descricao, body, fields, created_at, updated_at`,
		p.ID, p.UserID, p.Titulo, p.Descricao, p.Body, p.Fields,
	).Scan(&t.ID, &t.UserID, &t.Titulo, &t.Descricao, &t.Body, &t.Fields, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *Queries) GetCustomTemplateByID(ctx context.Context, userID, id string) (CustomTemplate, error) {
	var t CustomTemplate
	err := q.Pool.QueryRow(ctx,
		`SELECT id, user_id, titulo, descricao, body, fields, created_at, updated_at
		FROM custom_templates WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&t.ID, &t.UserID, &t.Titulo, &t.Descricao, &t.Body, &t.Fields, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *Queries) ListCustomTemplates(ctx context.Context, userID string) ([]CustomTemplate, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, user_id, titulo, descricao, body, fields, created_at, updated_at
		FROM custom_templates WHERE user_id = $1
		ORDER BY titulo ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]CustomTemplate, 0)
	for rows.Next() {
		var t CustomTemplate
		if err := rows.Scan(&t.ID, &t.UserID, &t.Titulo, &t.Descricao, &t.Body, &t.Fields, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (q *Queries) DeleteCustomTemplate(ctx context.Context, userID, id string) error {
	result, err := q.Pool.Exec(ctx,
		"DELETE FROM custom_templates WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
