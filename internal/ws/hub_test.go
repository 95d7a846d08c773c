package ws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"
)

func TestHub_CanSubscribe_OwnUserChannelOnly(t *testing.T) {
	h := NewHub(zap.NewNop())
	c := &Client{userID: "user-a", channels: map[string]bool{}}

	assert.True(t, h.canSubscribe(c, "user:user-a"))
	assert.False(t, h.canSubscribe(c, "user:user-b"))

	// No authorizer installed: everything outside the user channel is refused
	assert.False(t, h.canSubscribe(c, "document:doc-1"))
	assert.False(t, h.canSubscribe(c, "broadcast"))
}

func TestHub_CanSubscribe_AuthorizedDocumentChannel(t *testing.T) {
	h := NewHub(zap.NewNop())
	h.SetChannelAuthorizer(func(ctx context.Context, userID, channel string) bool {
		return userID == "user-a" && channel == "document:doc-1"
	})
	a := &Client{userID: "user-a", channels: map[string]bool{}}
	b := &Client{userID: "user-b", channels: map[string]bool{}}

	assert.True(t, h.canSubscribe(a, "document:doc-1"))
	assert.False(t, h.canSubscribe(a, "document:doc-2"))
	assert.False(t, h.canSubscribe(b, "document:doc-1"))

	// The authorizer is never consulted for foreign user channels
	assert.False(t, h.canSubscribe(a, "user:user-b"))
}
