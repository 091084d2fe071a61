//go:build linux || darwin

package utils

import (
	"fmt"
	"syscall"
)

// setSocketOptions raises the receive and send buffers of fd to socketBufferSize.
func setSocketOptions(fd uintptr) error {
	if err := syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_RCVBUF, socketBufferSize); err != nil {
		return fmt.Errorf("error setting receive buffer: %w", err)
	}
	if err := syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_SNDBUF, socketBufferSize); err != nil {
		return fmt.Errorf("error setting send buffer: %w", err)
	}
	return nil
}
