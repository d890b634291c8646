package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_MaxHeaderBytes(t *testing.T) {
	server := NewServer(":0", time.Second, time.Second, time.Second)
	assert.Equal(t, 1<<20, server.httpServer.MaxHeaderBytes)

	server.SetMaxHeaderBytes(0)
	assert.Equal(t, 1<<20, server.httpServer.MaxHeaderBytes)

	server.SetMaxHeaderBytes(4096)
	assert.Equal(t, 4096, server.httpServer.MaxHeaderBytes)
}

func TestServer_ShutdownWithoutStart(t *testing.T) {
	server := NewServer(":0", time.Second, time.Second, time.Second)
	require.NoError(t, server.Initialize())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))
}
