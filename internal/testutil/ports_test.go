package testutil

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRandomPort(t *testing.T) {
	port := GetRandomPort(t)
	assert.Greater(t, port, 0)
	assert.Less(t, port, 65536)
}

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestGetRandomPortConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	portChan := make(chan int, 20)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			port := GetRandomPort(t)
			portChan <- port
		}()
	}

	wg.Wait()
	close(portChan)

	ports := make(map[int]bool)
	for port := range portChan {
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestGetRandomListeningAddr(t *testing.T) {
	addr := GetRandomListeningAddr(t)
	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	assert.NotEmpty(t, port)

	l, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

func TestSyncBuffer(t *testing.T) {
	var buf SyncBuffer
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = buf.Write([]byte("x"))
		}()
	}
	wg.Wait()
	assert.Equal(t, "xxxxxxxxxx", buf.String())

	buf.Reset()
	assert.Empty(t, buf.String())
}
