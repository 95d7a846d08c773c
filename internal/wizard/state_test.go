package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_AdvanceRetreatBounds(t *testing.T) {
	s := NewState("contrato_compra_venda")
	const total = 3

	s.Retreat()
	assert.Equal(t, 0, s.StepIndex, "retreat at first step is a no-op")

	s.Advance(total)
	s.Advance(total)
	assert.Equal(t, 2, s.StepIndex)

	s.Advance(total)
	assert.Equal(t, 2, s.StepIndex, "advance at last step never wraps")

	s.Retreat()
	assert.Equal(t, 1, s.StepIndex)
}

func TestState_ValuesAccumulate(t *testing.T) {
	s := NewState("recibo_sinal")
	s.SetField("comprador_nome", "Maria")
	s.Advance(3)
	s.SetField("valor_sinal", "5000")
	s.Retreat()

	assert.Equal(t, "Maria", s.Values["comprador_nome"])
	assert.Equal(t, "5000", s.Values["valor_sinal"])
}

func TestState_Reset(t *testing.T) {
	s := NewState("procuracao")
	s.SetField("outorgante_nome", "José")
	s.Advance(3)
	doc := "texto gerado"
	s.SetGeneratedDocument(&doc)

	s.Reset()

	assert.Equal(t, 0, s.StepIndex)
	assert.Empty(t, s.Values)
	assert.Nil(t, s.GeneratedDocument)
	assert.Equal(t, "procuracao", s.SchemaID, "reset keeps the template")
}

func TestState_SelectTemplate(t *testing.T) {
	s := NewState("contrato_compra_venda")
	s.SetField("vendedor_nome", "Ana")
	s.Advance(4)

	// Re-selecting the same template keeps everything
	s.SelectTemplate("contrato_compra_venda")
	assert.Equal(t, 1, s.StepIndex)
	assert.Equal(t, "Ana", s.Values["vendedor_nome"])

	// Switching templates implies a reset
	s.SelectTemplate("procuracao")
	assert.Equal(t, "procuracao", s.SchemaID)
	assert.Equal(t, 0, s.StepIndex)
	assert.Empty(t, s.Values)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Missing session is (nil, nil)
	state, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, state)

	s := NewState("recibo_pagamento")
	s.SetField("valor_pagamento", "950")
	require.NoError(t, store.Save(ctx, "s1", s))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "950", loaded.Values["valor_pagamento"])

	// Loaded state is a copy; mutating it does not leak into the store
	loaded.SetField("valor_pagamento", "1000")
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "950", again.Values["valor_pagamento"])

	require.NoError(t, store.Delete(ctx, "s1"))
	state, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, state)
}
