package wmprotocols

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/pkg/errors"
)

// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1

type WMP struct {
	xu  *xgbutil.XUtil
	win xproto.Window

	protocols    xproto.Atom
	deleteWindow xproto.Atom
}

func NewWMP(xu *xgbutil.XUtil, win xproto.Window) (*WMP, error) {
	wmp := &WMP{xu: xu, win: win}
	if err := wmp.loadAtoms(); err != nil {
		return nil, err
	}
	if err := icccm.WmProtocolsSet(xu, win, []string{"WM_DELETE_WINDOW"}); err != nil {
		return nil, errors.Wrap(err, "wm protocols")
	}
	return wmp, nil
}

func (wmp *WMP) loadAtoms() error {
	var err error
	wmp.protocols, err = xprop.Atm(wmp.xu, "WM_PROTOCOLS")
	if err != nil {
		return err
	}
	wmp.deleteWindow, err = xprop.Atm(wmp.xu, "WM_DELETE_WINDOW")
	return err
}

//----------

// Returns an error if the message is a malformed wm_protocols message.
func (wmp *WMP) OnClientMessageDeleteWindow(ev *xproto.ClientMessageEvent) (bool, error) {
	if ev.Type != wmp.protocols {
		return false, nil
	}
	if ev.Format != 32 {
		return false, errors.Errorf("wm_protocols: format not 32: %v", ev.Format)
	}
	for _, e := range ev.Data.Data32 {
		if xproto.Atom(e) == wmp.deleteWindow {
			return true, nil
		}
	}
	return false, nil
}
