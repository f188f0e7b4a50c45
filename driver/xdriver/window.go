package xdriver

import (
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/xst/driver/xdriver/wmprotocols"
	"github.com/jmigpin/xst/driver/xdriver/xinput"
	"github.com/jmigpin/xst/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Options struct {
	Display string // defaults to $DISPLAY
	Name    string
	Class   string
	Log     zerolog.Logger
}

// X11 window that produces keyboard input events.
type Window struct {
	Conn   *xgb.Conn
	XU     *xgbutil.XUtil
	Window xproto.Window
	Screen *xproto.ScreenInfo

	XInput *xinput.XInput
	Wmp    *wmprotocols.WMP

	log       zerolog.Logger
	closeOnce sync.Once
	events    chan interface{}
}

func NewWindow(opt *Options) (*Window, error) {
	display := opt.Display
	if display == "" {
		display = os.Getenv("DISPLAY")
	}

	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{
		Conn:   conn,
		log:    opt.Log,
		events: make(chan interface{}, 8),
	}

	if err := win.initialize(opt); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	return win, nil
}

func (win *Window) initialize(opt *Options) error {
	xu, err := xgbutil.NewConnXgb(win.Conn)
	if err != nil {
		return err
	}
	win.XU = xu

	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	// event mask
	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskFocusChange |
		xproto.EventMaskKeyPress |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{win.Screen.BlackPixel, evMask}

	c1 := xproto.CreateWindowChecked(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 500, 300,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)
	if err := c1.Check(); err != nil {
		return err
	}

	if err := win.setProperties(opt); err != nil {
		return err
	}

	xi, err := xinput.NewXInput(win.Conn)
	if err != nil {
		return err
	}
	win.XInput = xi

	wmp, err := wmprotocols.NewWMP(win.XU, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	// text cursor
	cursor, err := xcursor.CreateCursor(win.XU, xcursor.XTerm)
	if err != nil {
		return err
	}
	_ = xproto.ChangeWindowAttributes(win.Conn, win.Window, xproto.CwCursor, []uint32{uint32(cursor)})

	_ = xproto.MapWindow(win.Conn, win.Window)
	return nil
}

func (win *Window) setProperties(opt *Options) error {
	if opt.Class != "" {
		wc := &icccm.WmClass{Instance: opt.Name, Class: opt.Class}
		if err := icccm.WmClassSet(win.XU, win.Window, wc); err != nil {
			return err
		}
	}
	return win.SetWindowName(opt.Name)
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		win.Conn.Close()
	})
	return nil
}

//----------

// Returns one of: *event.KeyPress, *event.WindowFocus, *event.WindowMappingChanged,
// *event.WindowClose, error.
func (win *Window) NextEvent() interface{} {
	return <-win.events
}

func (win *Window) eventLoop() {
	for {
		if !win.handleEvent(win.events) {
			return
		}
	}
}

func (win *Window) handleEvent(events chan<- interface{}) bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil {
		events <- &event.WindowClose{}
		return false
	}
	if xerr != nil {
		events <- error(xerr)
	}
	if ev == nil {
		return true
	}
	switch t := ev.(type) {
	case xproto.KeyPressEvent:
		events <- win.XInput.KeyPress(&t)

	case xproto.FocusInEvent:
		if t.Mode == xproto.NotifyModeGrab {
			break
		}
		events <- &event.WindowFocus{Focused: true}
	case xproto.FocusOutEvent:
		if t.Mode == xproto.NotifyModeGrab {
			break
		}
		events <- &event.WindowFocus{Focused: false}

	case xproto.MappingNotifyEvent: // keyboard mapping
		if t.Request == xproto.MappingPointer {
			break
		}
		if err := win.XInput.ReadMapTable(); err != nil {
			events <- err
			break
		}
		events <- &event.WindowMappingChanged{}

	case xproto.ClientMessageEvent:
		del, err := win.Wmp.OnClientMessageDeleteWindow(&t)
		if err != nil {
			events <- err
			break
		}
		if del {
			events <- &event.WindowClose{}
		}

	case xproto.DestroyNotifyEvent:
		events <- &event.WindowClose{}

	case xproto.ConfigureNotifyEvent, xproto.MapNotifyEvent,
		xproto.ReparentNotifyEvent, xproto.UnmapNotifyEvent:
		// ignored

	default:
		win.log.Debug().Str("event", ev.String()).Msg("unhandled x event")
	}
	return true
}

//----------

func (win *Window) SetWindowName(str string) error {
	if err := icccm.WmNameSet(win.XU, win.Window, str); err != nil {
		return err
	}
	return ewmh.WmNameSet(win.XU, win.Window, str)
}
