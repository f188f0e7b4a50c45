// Writes keyboard input to the tty master.
package ttyio

import (
	"bytes"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Max bytes per write syscall. Bigger writes to a tty can block the other end from
// sending data back, ending in a deadlock if nothing reads it.
const ChunkSize = 256

type Writer struct {
	fd int

	mu   sync.Mutex
	crlf bool

	// Called when the tty has data to be read while a write is pending. Should read
	// (some of) it. If nil, readability is not watched.
	OnReadable func() error
}

func NewWriter(f *os.File) *Writer {
	return NewWriterFd(int(f.Fd()))
}
func NewWriterFd(fd int) *Writer {
	return &Writer{fd: fd}
}

//----------

func (w *Writer) SetCRLF(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.crlf = v
}
func (w *Writer) CRLF() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.crlf
}

//----------

// Returns len(b) on success. With crlf set, each '\r' is written as "\r\n".
func (w *Writer) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(b)
	if !w.crlf {
		if err := w.writeRaw(b); err != nil {
			return 0, err
		}
		return n, nil
	}
	for len(b) > 0 {
		i := bytes.IndexByte(b, '\r')
		if i < 0 {
			if err := w.writeRaw(b); err != nil {
				return 0, err
			}
			break
		}
		if err := w.writeRaw(b[:i]); err != nil {
			return 0, err
		}
		if err := w.writeRaw([]byte("\r\n")); err != nil {
			return 0, err
		}
		b = b[i+1:]
	}
	return n, nil
}

func (w *Writer) writeRaw(b []byte) error {
	for len(b) > 0 {
		var rfds, wfds unix.FdSet
		wfds.Set(w.fd)
		watchRead := w.OnReadable != nil
		if watchRead {
			rfds.Set(w.fd)
		}
		if _, err := unix.Select(w.fd+1, &rfds, &wfds, nil, nil); err != nil {
			if err == unix.EINTR {
				continue
			}
			return errors.Wrap(err, "select")
		}

		// drain first, the other end might be blocked on its own write
		if watchRead && rfds.IsSet(w.fd) {
			if err := w.OnReadable(); err != nil {
				return errors.Wrap(err, "on readable")
			}
		}

		if wfds.IsSet(w.fd) {
			k, err := unix.Write(w.fd, b[:min(len(b), ChunkSize)])
			if err != nil {
				if err == unix.EINTR || err == unix.EAGAIN {
					continue
				}
				return errors.Wrap(err, "write")
			}
			b = b[k:]
		}
	}
	return nil
}

//----------

func (w *Writer) SendBreak() error {
	if err := sendBreak(w.fd); err != nil {
		return errors.Wrap(err, "send break")
	}
	return nil
}
