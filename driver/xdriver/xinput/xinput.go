package xinput

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xst/util/uiutil/event"
)

type XInput struct {
	km *KMap
}

func NewXInput(conn *xgb.Conn) (*XInput, error) {
	km, err := NewKMap(conn)
	if err != nil {
		return nil, err
	}
	xi := &XInput{km: km}
	return xi, nil
}

//----------

func (xi *XInput) KMap() *KMap {
	return xi.km
}

// Should be called on MappingNotify.
func (xi *XInput) ReadMapTable() error {
	return xi.km.ReadMapping()
}

//----------

func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) *event.KeyPress {
	return &event.KeyPress{
		Keycode: uint8(ev.Detail),
		Mods:    xi.km.Modifiers(ev.State),
		Time:    uint32(ev.Time),
	}
}
