package ttyio

import "golang.org/x/sys/unix"

// tcsendbreak(fd, 0)
func sendBreak(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCSBRK, 0)
}
