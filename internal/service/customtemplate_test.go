package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newTestCustomTemplateService() *CustomTemplateService {
	return NewCustomTemplateService(nil, nil, zap.NewNop())
}

func TestCustomTemplateService_RenderCacheScopedToOwner(t *testing.T) {
	svc := newTestCustomTemplateService()
	ctx := context.Background()

	svc.bodyCache.Add(bodyCacheKey("user-a", "tmpl-1"), "Ola {{ nome }}")

	// The owner is served from cache; queries is nil, so any database
	// lookup here would panic.
	out, err := svc.Render(ctx, "user-a", "tmpl-1", map[string]string{"nome": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Ola Ana", out)

	// Another user never sees the cached body: the lookup path runs and,
	// with a nil queries, panics instead of leaking the owner's template.
	require.Panics(t, func() {
		svc.Render(ctx, "user-b", "tmpl-1", nil)
	})
}

func TestCustomTemplateService_DeleteEvictsCachedBody(t *testing.T) {
	t.Skip("Requires test database setup")
}
