// Keyboard session: terminal modes, shortcuts and the key translator feeding a tty.
package core

import (
	"fmt"
	"io"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/xst/core/compose"
	"github.com/jmigpin/xst/core/fnkey"
	"github.com/jmigpin/xst/core/keytrans"
	"github.com/jmigpin/xst/core/shortcut"
	"github.com/jmigpin/xst/core/termmode"
	"github.com/jmigpin/xst/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Tty interface {
	io.Writer
	SetCRLF(bool)
	SendBreak() error
}

type Session struct {
	mu sync.Mutex

	log   zerolog.Logger
	km    compose.KeyMapper
	tty   Tty
	modes termmode.Mode
	tr    *keytrans.Translator
	dk    *compose.DeadKeyContext // nil if not composing

	paste       string
	debugEvents bool

	// mutations requested while translating, run after the translation returns
	pending []func()
}

func NewSession(km compose.KeyMapper, tty Tty, opt *Options, log zerolog.Logger) (*Session, error) {
	s := &Session{km: km, tty: tty, log: log, modes: termmode.Default}
	var w keytrans.Writer
	if tty != nil {
		w = tty
	}
	s.tr = keytrans.NewTranslator(nil, s.defaultShortcuts(), fnkey.DefaultTable(), nil, w)
	if err := s.applyOptions(opt); err != nil {
		return nil, err
	}
	return s, nil
}

//----------

func (s *Session) ApplyOptions(opt *Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.applyOptions(opt); err != nil {
		return err
	}
	s.log.Info().Str("file", opt.ConfigFile).Msg("options applied")
	return nil
}

func (s *Session) applyOptions(opt *Options) error {
	me, err := keytrans.NewMetaEncoder(opt.MetaFold.Mode, opt.MetaCharset)
	if err != nil {
		return err
	}
	s.tr.Meta = me

	if !opt.Compose {
		s.dk = nil
	} else if s.dk == nil {
		s.dk = compose.NewDeadKeyContext(s.km)
	}
	var ic compose.InputContext
	if s.dk != nil {
		ic = s.dk
	}
	s.tr.Lookup = compose.New(ic, s.km)

	s.modes = s.modes.SetTo(termmode.EightBit, opt.EightBit)
	if s.tty != nil {
		s.tty.SetCRLF(opt.CRLF)
	}
	s.paste = opt.Paste
	s.debugEvents = opt.DebugEvents
	s.log = s.log.Level(opt.LogLevel.Level())
	return nil
}

//----------

func (s *Session) Modes() termmode.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modes
}

// Used by the terminal side (escape sequences) to set modes.
func (s *Session) SetMode(m termmode.Mode, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes = s.modes.SetTo(m, v)
}

func (s *Session) Shortcuts() *shortcut.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tr.Shortcuts
}
func (s *Session) FnKeys() *fnkey.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tr.FnKeys
}

// Text from an external input method, returned by the next composed key press.
func (s *Session) Commit(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dk == nil {
		return errors.New("commit: not composing")
	}
	s.dk.Commit(text)
	return nil
}

//----------

func (s *Session) KeyPress(ev *event.KeyPress) (*keytrans.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debugEvents {
		s.log.Debug().Msg("key press: " + spew.Sdump(ev))
	}

	res, err := s.tr.KeyPress(ev, s.modes)
	s.runPending()

	if err != nil {
		s.log.Warn().Err(err).
			Stringer("keysym", res.KeySym).
			Stringer("mods", ev.Mods).
			Stringer("outcome", res.Outcome).
			Msg("key press")
		return res, err
	}
	if res.Outcome == keytrans.Dispatched {
		s.log.Debug().Str("shortcut", res.Shortcut.Name).Stringer("keysym", res.KeySym).Msg("dispatched")
	}
	return res, nil
}

func (s *Session) Focus(focused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes = s.modes.SetTo(termmode.Focused, focused)
	if !focused && s.dk != nil && s.dk.Pending() {
		s.log.Debug().Msg("focus out: dead key dropped")
		s.dk.Reset()
	}
	if !s.modes.Has(termmode.Focus) {
		return
	}
	str := "\x1b[O"
	if focused {
		str = "\x1b[I"
	}
	s.write([]byte(str))
}

// Returns true when the event loop should stop.
func (s *Session) HandleEvent(ev interface{}) bool {
	switch t := ev.(type) {
	case *event.KeyPress:
		_, _ = s.KeyPress(t)
	case *event.WindowFocus:
		s.Focus(t.Focused)
	case *event.WindowMappingChanged:
		s.log.Info().Msg("keyboard mapping changed")
	case *event.WindowClose:
		return true
	case error:
		s.log.Error().Err(t).Msg("event")
	default:
		s.log.Debug().Str("type", fmt.Sprintf("%T", ev)).Msg("unhandled event")
	}
	return false
}

//----------

// Only called with the lock held.
func (s *Session) later(fn func()) {
	s.pending = append(s.pending, fn)
}

func (s *Session) runPending() {
	for len(s.pending) > 0 {
		fn := s.pending[0]
		s.pending = s.pending[1:]
		fn()
	}
}

func (s *Session) write(b []byte) {
	if s.tty == nil || len(b) == 0 {
		return
	}
	if _, err := s.tty.Write(b); err != nil {
		s.log.Warn().Err(err).Msg("tty write")
	}
}
