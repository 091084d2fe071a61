//go:build windows

package utils

import (
	"fmt"
	"syscall"
)

func setSocketOptions(fd uintptr) error {
	handle := syscall.Handle(fd)
	if err := syscall.SetsockoptInt(handle, syscall.SOL_SOCKET, syscall.SO_RCVBUF, socketBufferSize); err != nil {
		return fmt.Errorf("error setting receive buffer: %w", err)
	}
	if err := syscall.SetsockoptInt(handle, syscall.SOL_SOCKET, syscall.SO_SNDBUF, socketBufferSize); err != nil {
		return fmt.Errorf("error setting send buffer: %w", err)
	}
	return nil
}
