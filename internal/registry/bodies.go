package registry

// builtinBodies maps template id to its raw markdown body. Placeholders use
// the {{ identifier }} syntax resolved by the generator. Every identifier is
// declared in the matching schema's steps, except ids shared across templates
// by convention (foro).
func builtinBodies() map[string]string {
	return map[string]string{
		"contrato_compra_venda": bodyCompraVenda,
		"contrato_locacao_residencial": bodyLocacaoResidencial,
		"contrato_locacao_comercial": bodyLocacaoComercial,
		"recibo_sinal": bodyReciboSinal,
		"recibo_pagamento": bodyReciboPagamento,
		"proposta_compra": bodyPropostaCompra,
		"termo_vistoria": bodyTermoVistoria,
		"procuracao": bodyProcuracao,
	}
}

const bodyCompraVenda = `# CONTRATO PARTICULAR DE COMPRA E VENDA DE IMÓVEL

**VENDEDOR(A):** {{ vendedor_nome }}, portador(a) do CPF/CNPJ nº {{ vendedor_cpf_cnpj }}, RG nº {{ vendedor_rg }}, {{ vendedor_estado_civil }}, {{ vendedor_profissao }}, casado(a) sob o regime de {{ vendedor_regime_bens }}, residente e domiciliado(a) em {{ vendedor_endereco }}.

**COMPRADOR(A):** {{ comprador_nome }}, portador(a) do CPF/CNPJ nº {{ comprador_cpf_cnpj }}, RG nº {{ comprador_rg }}, {{ comprador_estado_civil }}, {{ comprador_profissao }}, residente e domiciliado(a) em {{ comprador_endereco }}.

As partes acima identificadas têm, entre si, justo e contratado o presente Contrato Particular de Compra e Venda de Imóvel, que se regerá pelas cláusulas seguintes.

## CLÁUSULA 1ª — DO OBJETO

O presente contrato tem como objeto o imóvel situado em {{ imovel_endereco }}, bairro {{ imovel_bairro }}, na cidade de {{ imovel_cidade }}/{{ imovel_estado }}, CEP {{ imovel_cep }}, com área total de {{ imovel_area_total }} m², registrado sob a matrícula nº {{ imovel_matricula }}. {{ imovel_descricao }}

## CLÁUSULA 2ª — DO PREÇO E DA FORMA DE PAGAMENTO

O valor total da venda é de {{ valor_total }}, a ser pago na forma: {{ forma_pagamento }}. A título de sinal e princípio de pagamento, o COMPRADOR entrega ao VENDEDOR a quantia de {{ valor_sinal }}. {{ condicoes_pagamento }}

## CLÁUSULA 3ª — DA ENTREGA

O VENDEDOR entregará o imóvel livre e desembaraçado de quaisquer ônus, com as chaves na data de {{ data_entrega }}.

## CLÁUSULA 4ª — DO FORO

Fica eleito o foro da comarca de {{ foro }} para dirimir quaisquer controvérsias oriundas deste contrato.

E por estarem justos e contratados, firmam o presente em duas vias de igual teor.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ vendedor_nome }}
VENDEDOR(A)

_____________________________
{{ comprador_nome }}
COMPRADOR(A)
`

const bodyLocacaoResidencial = `# CONTRATO DE LOCAÇÃO RESIDENCIAL

**LOCADOR(A):** {{ locador_nome }}, CPF/CNPJ nº {{ locador_cpf_cnpj }}, RG nº {{ locador_rg }}, {{ locador_estado_civil }}, {{ locador_profissao }}, residente em {{ locador_endereco }}.

**LOCATÁRIO(A):** {{ locatario_nome }}, CPF nº {{ locatario_cpf }}, RG nº {{ locatario_rg }}, {{ locatario_estado_civil }}, {{ locatario_profissao }}, residente em {{ locatario_endereco }}, telefone {{ locatario_telefone }}, e-mail {{ locatario_email }}.

## CLÁUSULA 1ª — DO OBJETO

Locação do imóvel residencial situado em {{ imovel_endereco }}, bairro {{ imovel_bairro }}, {{ imovel_cidade }}/{{ imovel_estado }}, CEP {{ imovel_cep }}, matrícula nº {{ imovel_matricula }}, com área total de {{ imovel_area_total }} m². {{ imovel_descricao }}

## CLÁUSULA 2ª — DO PRAZO

A locação terá o prazo de {{ prazo_meses }} meses, com início em {{ data_inicio }}.

## CLÁUSULA 3ª — DO ALUGUEL

O aluguel mensal é de {{ valor_aluguel }}, com vencimento todo dia {{ dia_vencimento }} de cada mês, pago por {{ forma_pagamento }}. O valor será reajustado anualmente pelo índice {{ indice_reajuste }}.

## CLÁUSULA 4ª — DA GARANTIA

A título de caução, o LOCATÁRIO deposita a quantia de {{ valor_caucao }}, a ser restituída ao final da locação, descontados eventuais débitos.

## CLÁUSULA 5ª — DO FORO

Fica eleito o foro da comarca de {{ foro }}.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ locador_nome }}
LOCADOR(A)

_____________________________
{{ locatario_nome }}
LOCATÁRIO(A)
`

const bodyLocacaoComercial = `# CONTRATO DE LOCAÇÃO COMERCIAL

**LOCADOR(A):** {{ locador_nome }}, CPF/CNPJ nº {{ locador_cpf_cnpj }}, RG nº {{ locador_rg }}, {{ locador_estado_civil }}, {{ locador_profissao }}, residente em {{ locador_endereco }}.

**LOCATÁRIO(A):** {{ locatario_nome }}, CPF/CNPJ nº {{ locatario_cpf_cnpj }}, RG nº {{ locatario_rg }}, {{ locatario_estado_civil }}, {{ locatario_profissao }}, com endereço em {{ locatario_endereco }}, para exercício da atividade de {{ atividade_comercial }}.

## CLÁUSULA 1ª — DO OBJETO

Locação do imóvel do tipo {{ imovel_tipo }} situado em {{ imovel_endereco }}, bairro {{ imovel_bairro }}, {{ imovel_cidade }}/{{ imovel_estado }}, CEP {{ imovel_cep }}, matrícula nº {{ imovel_matricula }}, área total de {{ imovel_area_total }} m². {{ imovel_descricao }}

## CLÁUSULA 2ª — DO PRAZO

Prazo de {{ prazo_meses }} meses, com início em {{ data_inicio }}.

## CLÁUSULA 3ª — DO ALUGUEL E ENCARGOS

Aluguel mensal de {{ valor_aluguel }}, acrescido de condomínio no valor de {{ valor_condominio }}, com vencimento todo dia {{ dia_vencimento }}. Reajuste anual pelo índice {{ indice_reajuste }}.

## CLÁUSULA 4ª — DO FORO

Fica eleito o foro da comarca de {{ foro }}.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ locador_nome }}
LOCADOR(A)

_____________________________
{{ locatario_nome }}
LOCATÁRIO(A)
`

const bodyReciboSinal = `# RECIBO DE SINAL E PRINCÍPIO DE PAGAMENTO

Eu, {{ vendedor_nome }}, CPF/CNPJ nº {{ vendedor_cpf_cnpj }}, declaro ter recebido de {{ comprador_nome }}, CPF/CNPJ nº {{ comprador_cpf_cnpj }}, a quantia de {{ valor_sinal }}, paga por {{ forma_pagamento }}, a título de sinal e princípio de pagamento pela compra do imóvel situado em {{ imovel_endereco }}, {{ imovel_cidade }}/{{ imovel_estado }}.

O valor total do negócio é de {{ valor_total }}, do qual o sinal ora recebido será abatido.

Para clareza, firmo o presente recibo.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ vendedor_nome }}
`

const bodyReciboPagamento = `# RECIBO DE PAGAMENTO DE ALUGUEL

Eu, {{ locador_nome }}, CPF/CNPJ nº {{ locador_cpf_cnpj }}, declaro ter recebido de {{ locatario_nome }}, CPF/CNPJ nº {{ locatario_cpf_cnpj }}, a quantia de {{ valor_pagamento }}, paga por {{ forma_pagamento }}, referente ao aluguel do imóvel situado em {{ imovel_endereco }}, competência {{ referencia_mes }}.

Dou plena, geral e irrevogável quitação do valor recebido.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ locador_nome }}
`

const bodyPropostaCompra = `# PROPOSTA DE COMPRA DE IMÓVEL

**PROPONENTE:** {{ proponente_nome }}, CPF nº {{ proponente_cpf }}, RG nº {{ proponente_rg }}, {{ proponente_estado_civil }}, {{ proponente_profissao }}, residente em {{ proponente_endereco }}, telefone {{ proponente_telefone }}, e-mail {{ proponente_email }}.

Apresento proposta de compra pelo imóvel situado em {{ imovel_endereco }}, bairro {{ imovel_bairro }}, {{ imovel_cidade }}/{{ imovel_estado }}, nas seguintes condições:

- **Valor ofertado:** {{ valor_proposta }}
- **Sinal:** {{ valor_sinal }}
- **Forma de pagamento:** {{ forma_pagamento }}

Esta proposta é válida por {{ prazo_validade }} dias contados desta data. Decorrido o prazo sem aceitação, fica a mesma automaticamente sem efeito.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ proponente_nome }}
PROPONENTE
`

const bodyTermoVistoria = `# TERMO DE VISTORIA DE IMÓVEL

Aos {{ data_vistoria }}, na presença do locador {{ locador_nome }} e do locatário {{ locatario_nome }}, foi realizada vistoria no imóvel do tipo {{ imovel_tipo }} situado em {{ imovel_endereco }}, com área total de {{ imovel_area_total }} m², constatando-se o seguinte estado de conservação:

- **Pintura:** {{ estado_pintura }}
- **Pisos e revestimentos:** {{ estado_pisos }}
- **Instalações elétricas e hidráulicas:** {{ estado_instalacoes }}

**Observações gerais:** {{ observacoes }}

As partes declaram estar de acordo com o estado descrito neste termo, que passa a integrar o contrato de locação.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ locador_nome }}
LOCADOR(A)

_____________________________
{{ locatario_nome }}
LOCATÁRIO(A)
`

const bodyProcuracao = `# PROCURAÇÃO PARTICULAR

**OUTORGANTE:** {{ outorgante_nome }}, CPF/CNPJ nº {{ outorgante_cpf_cnpj }}, RG nº {{ outorgante_rg }}, {{ outorgante_estado_civil }}, {{ outorgante_profissao }}, residente em {{ outorgante_endereco }}.

**OUTORGADO(A):** {{ outorgado_nome }}, CPF/CNPJ nº {{ outorgado_cpf_cnpj }}, RG nº {{ outorgado_rg }}, {{ outorgado_estado_civil }}, {{ outorgado_profissao }}, residente em {{ outorgado_endereco }}.

Pelo presente instrumento particular de procuração, o OUTORGANTE nomeia e constitui o OUTORGADO(A) como seu bastante procurador, conferindo-lhe os seguintes poderes: {{ poderes_descricao }}, especialmente em relação ao imóvel situado em {{ imovel_endereco }}.

Esta procuração é válida por {{ prazo_validade }} dias contados da assinatura.

{{ cidade_assinatura }}, {{ data_assinatura }}.

_____________________________
{{ outorgante_nome }}
OUTORGANTE
`
