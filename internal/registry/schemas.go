package registry

import (
	"imodocs/internal/model"
)

// Option sets shared between templates. The option values are the raw codes
// stored in form data; the generator maps them back to labels at render time.

var estadoCivilOptions = []model.FieldOption{
	{Label: "Solteiro(a)", Value: "solteiro"},
	{Label: "Casado(a)", Value: "casado"},
	{Label: "Divorciado(a)", Value: "divorciado"},
	{Label: "Viúvo(a)", Value: "viuvo"},
	{Label: "União Estável", Value: "uniao_estavel"},
}

var regimeBensOptions = []model.FieldOption{
	{Label: "Comunhão Parcial de Bens", Value: "comunhao_parcial"},
	{Label: "Comunhão Universal de Bens", Value: "comunhao_universal"},
	{Label: "Separação Total de Bens", Value: "separacao_total"},
	{Label: "Participação Final nos Aquestos", Value: "participacao_final"},
}

var formaPagamentoOptions = []model.FieldOption{
	{Label: "À vista", Value: "avista"},
	{Label: "Parcelado", Value: "parcelado"},
	{Label: "Financiamento bancário", Value: "financiamento"},
	{Label: "PIX", Value: "pix"},
	{Label: "Transferência bancária", Value: "transferencia"},
	{Label: "Boleto bancário", Value: "boleto"},
	{Label: "Dinheiro", Value: "dinheiro"},
	{Label: "Cheque", Value: "cheque"},
}

var tipoImovelOptions = []model.FieldOption{
	{Label: "Casa", Value: "casa"},
	{Label: "Apartamento", Value: "apartamento"},
	{Label: "Terreno", Value: "terreno"},
	{Label: "Sala Comercial", Value: "sala_comercial"},
	{Label: "Galpão", Value: "galpao"},
	{Label: "Chácara", Value: "chacara"},
}

func text(id, label string, required bool) model.SchemaField {
	return model.SchemaField{ID: id, Label: label, Type: model.FieldText, Required: required}
}

func number(id, label string, required bool) model.SchemaField {
	return model.SchemaField{ID: id, Label: label, Type: model.FieldNumber, Required: required}
}

func date(id, label string, required bool) model.SchemaField {
	return model.SchemaField{ID: id, Label: label, Type: model.FieldDate, Required: required}
}

func email(id, label string) model.SchemaField {
	return model.SchemaField{ID: id, Label: label, Type: model.FieldEmail}
}

func sel(id, label string, required bool, opts []model.FieldOption) model.SchemaField {
	return model.SchemaField{ID: id, Label: label, Type: model.FieldSelect, Required: required, Options: opts}
}

func radio(id, label string, required bool, opts []model.FieldOption) model.SchemaField {
	return model.SchemaField{ID: id, Label: label, Type: model.FieldRadio, Required: required, Options: opts}
}

// partyFields is the standard field block for a fully qualified contracting
// party. The prefix_suffix ids are what the auto-fill resolvers match on.
func partyFields(prefix string) []model.SchemaField {
	return []model.SchemaField{
		text(prefix+"_nome", "Nome completo", true),
		text(prefix+"_cpf_cnpj", "CPF/CNPJ", true),
		text(prefix+"_rg", "RG", false),
		sel(prefix+"_estado_civil", "Estado civil", false, estadoCivilOptions),
		text(prefix+"_profissao", "Profissão", false),
		text(prefix+"_endereco", "Endereço completo", true),
	}
}

// propertyFields is the standard field block for the imóvel step. It must not
// contain person-identifying fields so the property resolver fills it.
func propertyFields() []model.SchemaField {
	return []model.SchemaField{
		text("imovel_endereco", "Endereço do imóvel", true),
		text("imovel_bairro", "Bairro", false),
		text("imovel_cidade", "Cidade", true),
		text("imovel_estado", "Estado (UF)", true),
		text("imovel_cep", "CEP", false),
		text("imovel_matricula", "Matrícula no registro de imóveis", false),
		number("imovel_area_total", "Área total (m²)", false),
		text("imovel_descricao", "Descrição do imóvel", false),
	}
}

func signatureStep() model.SchemaStep {
	return model.SchemaStep{
		ID:    "assinatura",
		Title: "Assinatura",
		Fields: []model.SchemaField{
			text("cidade_assinatura", "Cidade", true),
			date("data_assinatura", "Data", true),
		},
	}
}

func builtinSchemas() []model.DocumentSchema {
	return []model.DocumentSchema{
		{
			ID:          "contrato_compra_venda",
			Title:       "Contrato de Compra e Venda",
			Description: "Contrato particular de compra e venda de imóvel",
			Steps: []model.SchemaStep{
				{ID: "vendedor", Title: "Vendedor", Fields: append(partyFields("vendedor"),
					sel("vendedor_regime_bens", "Regime de bens", false, regimeBensOptions))},
				{ID: "comprador", Title: "Comprador", Fields: partyFields("comprador")},
				{ID: "imovel", Title: "Imóvel", Fields: propertyFields()},
				{ID: "pagamento", Title: "Pagamento", Fields: []model.SchemaField{
					number("valor_total", "Valor total da venda (R$)", true),
					number("valor_sinal", "Valor do sinal (R$)", false),
					sel("forma_pagamento", "Forma de pagamento", true, formaPagamentoOptions),
					text("condicoes_pagamento", "Condições de pagamento", false),
					date("data_entrega", "Data de entrega das chaves", false),
				}},
				signatureStep(),
			},
		},
		{
			ID:          "contrato_locacao_residencial",
			Title:       "Contrato de Locação Residencial",
			Description: "Contrato de locação de imóvel para fins residenciais",
			Steps: []model.SchemaStep{
				{ID: "locador", Title: "Locador", Fields: partyFields("locador")},
				{ID: "locatario", Title: "Locatário", Fields: []model.SchemaField{
					text("locatario_nome", "Nome completo", true),
					text("locatario_cpf", "CPF", true),
					text("locatario_rg", "RG", false),
					sel("locatario_estado_civil", "Estado civil", false, estadoCivilOptions),
					text("locatario_profissao", "Profissão", false),
					text("locatario_endereco", "Endereço atual", false),
					text("locatario_telefone", "Telefone", false),
					email("locatario_email", "E-mail"),
				}},
				{ID: "imovel", Title: "Imóvel", Fields: propertyFields()},
				{ID: "condicoes", Title: "Condições da locação", Fields: []model.SchemaField{
					number("valor_aluguel", "Valor do aluguel mensal (R$)", true),
					number("valor_caucao", "Valor da caução (R$)", false),
					number("dia_vencimento", "Dia de vencimento", true),
					number("prazo_meses", "Prazo da locação (meses)", true),
					date("data_inicio", "Data de início", true),
					sel("forma_pagamento", "Forma de pagamento", false, formaPagamentoOptions),
					text("indice_reajuste", "Índice de reajuste", false),
				}},
				signatureStep(),
			},
		},
		{
			ID:          "contrato_locacao_comercial",
			Title:       "Contrato de Locação Comercial",
			Description: "Contrato de locação de imóvel para fins comerciais",
			Steps: []model.SchemaStep{
				{ID: "locador", Title: "Locador", Fields: partyFields("locador")},
				{ID: "locatario", Title: "Locatário", Fields: append(partyFields("locatario"),
					text("atividade_comercial", "Atividade comercial exercida", true))},
				{ID: "imovel", Title: "Imóvel", Fields: append(propertyFields(),
					sel("imovel_tipo", "Tipo do imóvel", false, tipoImovelOptions))},
				{ID: "condicoes", Title: "Condições da locação", Fields: []model.SchemaField{
					number("valor_aluguel", "Valor do aluguel mensal (R$)", true),
					number("valor_condominio", "Valor do condomínio (R$)", false),
					number("dia_vencimento", "Dia de vencimento", true),
					number("prazo_meses", "Prazo da locação (meses)", true),
					date("data_inicio", "Data de início", true),
					text("indice_reajuste", "Índice de reajuste", false),
				}},
				signatureStep(),
			},
		},
		{
			ID:          "recibo_sinal",
			Title:       "Recibo de Sinal",
			Description: "Recibo de sinal e princípio de pagamento",
			Steps: []model.SchemaStep{
				{ID: "partes", Title: "Partes", Fields: []model.SchemaField{
					text("vendedor_nome", "Nome do vendedor", true),
					text("vendedor_cpf_cnpj", "CPF/CNPJ do vendedor", true),
					text("comprador_nome", "Nome do comprador", true),
					text("comprador_cpf_cnpj", "CPF/CNPJ do comprador", true),
				}},
				{ID: "imovel", Title: "Imóvel", Fields: []model.SchemaField{
					text("imovel_endereco", "Endereço do imóvel", true),
					text("imovel_cidade", "Cidade", true),
					text("imovel_estado", "Estado (UF)", true),
				}},
				{ID: "valores", Title: "Valores", Fields: []model.SchemaField{
					number("valor_sinal", "Valor do sinal (R$)", true),
					number("valor_total", "Valor total do negócio (R$)", true),
					radio("forma_pagamento", "Forma de pagamento do sinal", true, formaPagamentoOptions),
				}},
				signatureStep(),
			},
		},
		{
			ID:          "recibo_pagamento",
			Title:       "Recibo de Pagamento de Aluguel",
			Description: "Recibo mensal de pagamento de aluguel",
			Steps: []model.SchemaStep{
				{ID: "partes", Title: "Partes", Fields: []model.SchemaField{
					text("locador_nome", "Nome do locador", true),
					text("locador_cpf_cnpj", "CPF/CNPJ do locador", true),
					text("locatario_nome", "Nome do locatário", true),
					text("locatario_cpf_cnpj", "CPF/CNPJ do locatário", true),
				}},
				{ID: "pagamento", Title: "Pagamento", Fields: []model.SchemaField{
					text("imovel_endereco", "Endereço do imóvel locado", true),
					number("valor_pagamento", "Valor pago (R$)", true),
					text("referencia_mes", "Mês de referência", true),
					radio("forma_pagamento", "Forma de pagamento", false, formaPagamentoOptions),
				}},
				signatureStep(),
			},
		},
		{
			ID:          "proposta_compra",
			Title:       "Proposta de Compra",
			Description: "Proposta de compra de imóvel com condições e validade",
			Steps: []model.SchemaStep{
				{ID: "proponente", Title: "Proponente", Fields: []model.SchemaField{
					text("proponente_nome", "Nome completo", true),
					text("proponente_cpf", "CPF", true),
					text("proponente_rg", "RG", false),
					sel("proponente_estado_civil", "Estado civil", false, estadoCivilOptions),
					text("proponente_profissao", "Profissão", false),
					text("proponente_endereco", "Endereço", false),
					text("proponente_telefone", "Telefone", false),
					email("proponente_email", "E-mail"),
				}},
				{ID: "imovel", Title: "Imóvel pretendido", Fields: []model.SchemaField{
					text("imovel_endereco", "Endereço do imóvel", true),
					text("imovel_bairro", "Bairro", false),
					text("imovel_cidade", "Cidade", true),
					text("imovel_estado", "Estado (UF)", true),
				}},
				{ID: "proposta", Title: "Proposta", Fields: []model.SchemaField{
					number("valor_proposta", "Valor da proposta (R$)", true),
					number("valor_sinal", "Valor do sinal ofertado (R$)", false),
					sel("forma_pagamento", "Forma de pagamento", true, formaPagamentoOptions),
					number("prazo_validade", "Validade da proposta (dias)", true),
				}},
				signatureStep(),
			},
		},
		{
			ID:          "termo_vistoria",
			Title:       "Termo de Vistoria",
			Description: "Termo de vistoria de imóvel para entrada ou saída de locação",
			Steps: []model.SchemaStep{
				{ID: "partes", Title: "Partes", Fields: []model.SchemaField{
					text("locador_nome", "Nome do locador", true),
					text("locatario_nome", "Nome do locatário", true),
				}},
				{ID: "imovel", Title: "Imóvel", Fields: []model.SchemaField{
					text("imovel_endereco", "Endereço do imóvel", true),
					sel("imovel_tipo", "Tipo do imóvel", true, tipoImovelOptions),
					number("imovel_area_total", "Área total (m²)", false),
				}},
				{ID: "vistoria", Title: "Vistoria", Fields: []model.SchemaField{
					date("data_vistoria", "Data da vistoria", true),
					text("estado_pintura", "Estado da pintura", false),
					text("estado_pisos", "Estado dos pisos", false),
					text("estado_instalacoes", "Estado das instalações elétricas e hidráulicas", false),
					text("observacoes", "Observações gerais", false),
				}},
				signatureStep(),
			},
		},
		{
			ID:          "procuracao",
			Title:       "Procuração",
			Description: "Procuração particular para fins imobiliários",
			Steps: []model.SchemaStep{
				{ID: "outorgante", Title: "Outorgante", Fields: partyFields("outorgante")},
				{ID: "outorgado", Title: "Outorgado", Fields: partyFields("outorgado")},
				{ID: "poderes", Title: "Poderes", Fields: []model.SchemaField{
					text("poderes_descricao", "Descrição dos poderes outorgados", true),
					text("imovel_endereco", "Imóvel objeto da procuração", false),
					number("prazo_validade", "Validade (dias)", false),
				}},
				signatureStep(),
			},
		},
	}
}
