// Package testutil holds helpers shared by tests that open real sockets.
package testutil

import (
	"net"
	"strconv"
	"sync"
	"testing"
)

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a loopback port that was free a moment ago and has
// not been handed out to another test in this process.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to get random port: %v", err)
		}
		p := l.Addr().(*net.TCPAddr).Port
		if err := l.Close(); err != nil {
			t.Fatalf("failed to close listener: %v", err)
		}
		if _, ok := usedPorts[p]; ok {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
}

// GetRandomListeningAddr returns a 127.0.0.1:port address from GetRandomPort.
func GetRandomListeningAddr(t *testing.T) string {
	t.Helper()
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(GetRandomPort(t)))
}
