package env

import (
	"fmt"
	"net"
)

// IsPortAvailable checks if a TCP port is available on the local machine
func IsPortAvailable(port int) bool {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	if err := ln.Close(); err != nil {
		// Non-critical: listener close failure during availability check
		_ = err
	}
	return true
}
