package env

import (
	"fmt"
	"net"
	"testing"
)

func TestIsPortAvailable_FreePort(t *testing.T) {
	// Grab an ephemeral port from the kernel, close it, then check it.
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to allocate ephemeral port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := ln.Close(); err != nil {
		t.Fatalf("failed to close listener: %v", err)
	}

	if !IsPortAvailable(port) {
		t.Errorf("expected port %d to be available after closing it", port)
	}
}

func TestIsPortAvailable_BoundPort(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to bind port: %v", err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	if IsPortAvailable(port) {
		t.Errorf("expected port %d to be reported in use while bound", port)
	}
}

func TestIsPortAvailable_InvalidPort(t *testing.T) {
	for _, port := range []int{-1, 65536} {
		t.Run(fmt.Sprintf("port_%d", port), func(t *testing.T) {
			if IsPortAvailable(port) {
				t.Errorf("expected invalid port %d to be unavailable", port)
			}
		})
	}
}
