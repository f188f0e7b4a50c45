package xinput

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xst/util/uiutil/event"
	"github.com/pkg/errors"
)

// $ man keymaps
// https://tronche.com/gui/x/xlib/input/XGetKeyboardMapping.html
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html
// http://wiki.linuxquestions.org/wiki/List_of_Keysyms_Recognised_by_Xmodmap

// xproto.Keycode is a physical key.
// xproto.Keysym is the encoding of a symbol on the cap of a key.
// A list of keysyms is associated with each keycode.

//----------

// Keyboard mapping. Safe for concurrent use: a mapping refresh swaps the whole table.
type KMap struct {
	conn *xgb.Conn

	mu sync.RWMutex
	t  *kmapTable
}

type kmapTable struct {
	minKeycode xproto.Keycode
	maxKeycode xproto.Keycode
	perKeycode int // keysyms per keycode
	keysyms    []xproto.Keysym

	modGroups struct {
		numLock    int8
		alt        int8
		altGr      int8
		super      int8
		meta       int8
		modeSwitch int8
	}
}

func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	err := km.ReadMapping()
	if err != nil {
		return nil, err
	}
	return km, nil
}

//----------

func (km *KMap) ReadMapping() error {
	t := &kmapTable{}
	if err := t.readKeyboardMapping(km.conn); err != nil {
		return errors.Wrap(err, "keyboard mapping")
	}
	if err := t.readModMapping(km.conn); err != nil {
		return errors.Wrap(err, "modifier mapping")
	}
	km.setTable(t)
	return nil
}

func (km *KMap) setTable(t *kmapTable) {
	km.mu.Lock()
	defer km.mu.Unlock()
	km.t = t
}

func (km *KMap) table() *kmapTable {
	km.mu.RLock()
	defer km.mu.RUnlock()
	if km.t == nil {
		return &kmapTable{}
	}
	return km.t
}

func (t *kmapTable) readKeyboardMapping(conn *xgb.Conn) error {
	si := xproto.Setup(conn)
	if si.MaxKeycode < si.MinKeycode {
		return fmt.Errorf("bad keycode range: %v-%v", si.MinKeycode, si.MaxKeycode)
	}
	count := byte(si.MaxKeycode - si.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(conn, si.MinKeycode, count).Reply()
	if err != nil {
		return err
	}
	if reply.KeysymsPerKeycode < 2 {
		return fmt.Errorf("keysyms per keycode < 2")
	}
	t.minKeycode = si.MinKeycode
	t.maxKeycode = si.MaxKeycode
	t.perKeycode = int(reply.KeysymsPerKeycode)
	t.keysyms = reply.Keysyms
	return nil
}

func (t *kmapTable) readModMapping(conn *xgb.Conn) error {
	modMap, err := xproto.GetModifierMapping(conn).Reply()
	if err != nil {
		return err
	}
	t.detectModGroups(int(modMap.KeycodesPerModifier), modMap.Keycodes)
	return nil
}

func (t *kmapTable) detectModGroups(stride int, keycodes []xproto.Keycode) {
	// 8 modifiers groups, that can have n keycodes
	//0	Shift
	//1	Lock (Caps Lock)
	//2	Control
	//--- detect
	//3	Mod1 (Usually Alt)
	//4	Mod2 (Often Num Lock)
	//5	Mod3 (Rarely used)
	//6	Mod4 (Often Super/Meta)
	//7	Mod5 (Often AltGr)

	// X11: keysyms to detect which group might have them
	type KS = xproto.Keysym
	numLocks := []KS{
		0xff7f, // XK_Num_Lock
	}
	alts := []KS{
		0xffe9, // XK_Alt_L
		0xffea, // XK_Alt_R
	}
	altGrs := []KS{
		0xfe03, // XK_ISO_Level3_Shift
		0xfe11, // XK_ISO_Level5_Shift
	}
	modeSwitches := []KS{
		0xff7e, // XK_Mode_switch
	}
	supers := []KS{
		0xffeb, // XK_Super_L
		0xffec, // XK_Super_R
	}
	metas := []KS{
		0xffe7, // XK_Meta_L
		0xffe8, // XK_Meta_R
	}

	// defaults
	t.modGroups.numLock = 4
	t.modGroups.alt = 3
	t.modGroups.altGr = 7
	t.modGroups.super = -1
	t.modGroups.meta = -1
	t.modGroups.modeSwitch = -1

	type pair struct {
		group *int8
		kss   []KS
		found bool
	}
	pairs := []*pair{
		{group: &t.modGroups.numLock, kss: numLocks},
		{group: &t.modGroups.alt, kss: alts},
		{group: &t.modGroups.altGr, kss: altGrs},
		{group: &t.modGroups.super, kss: supers},
		{group: &t.modGroups.meta, kss: metas},
		{group: &t.modGroups.modeSwitch, kss: modeSwitches},
	}

	// iterate keycodes/keysyms, keep first found group
	for g := 3; g < 8; g++ {
		if (g+1)*stride > len(keycodes) {
			break
		}
		kcs := keycodes[g*stride : (g+1)*stride]
		for _, kc := range kcs {
			for _, ks := range t.keycodeToKeysyms(kc) {
				for _, p := range pairs {
					if p.found {
						continue
					}
					for _, ks2 := range p.kss {
						if ks == ks2 {
							*p.group = int8(g)
							p.found = true
							break
						}
					}
				}
			}
		}
	}

	// level3 and mode_switch on the same modifier (common in xkb core maps): the
	// level3 meaning wins
	if t.modGroups.modeSwitch == t.modGroups.altGr {
		t.modGroups.modeSwitch = -1
	}
}

//----------

// Implements compose.KeyMapper.
func (km *KMap) KeySym(keycode uint8, mods event.KeyModifiers) event.KeySym {
	t := km.table()
	kss := t.keycodeToKeysyms(xproto.Keycode(keycode))
	ks := keysymsToKeysym(kss, mods)
	return event.KeySym(ks)
}

func (km *KMap) Modifiers(state uint16) event.KeyModifiers {
	return km.table().modifiers(state)
}

func (t *kmapTable) modifiers(state uint16) event.KeyModifiers {
	em := event.KeyModifiers(0)

	add := func(m2 uint16, em2 event.KeyModifiers) {
		if m2 != 0 && state&m2 > 0 {
			em |= em2
		}
	}
	addGroup := func(g int8, em2 event.KeyModifiers) {
		if g < 0 { // not detected
			return
		}
		add(1<<uint(g), em2)
	}

	add(xproto.KeyButMaskShift, event.ModShift)
	add(xproto.KeyButMaskLock, event.ModCapsLock)
	add(xproto.KeyButMaskControl, event.ModCtrl)

	addGroup(t.modGroups.numLock, event.ModNumLock)
	addGroup(t.modGroups.alt, event.ModAlt)
	addGroup(t.modGroups.altGr, event.ModAltGr)
	addGroup(t.modGroups.super, event.ModSuper)
	addGroup(t.modGroups.meta, event.ModMeta)
	addGroup(t.modGroups.modeSwitch, event.ModGroup2)

	// xkb keyboard group (bits 13-14), any group past the first
	if (state>>13)&3 != 0 {
		em |= event.ModGroup2
	}

	return em
}

//----------

func (t *kmapTable) keycodeToKeysyms(keycode xproto.Keycode) []xproto.Keysym {
	if keycode < t.minKeycode || keycode > t.maxKeycode {
		return nil
	}
	y := int(keycode - t.minKeycode)
	stride := t.perKeycode // usually ~7
	if (y+1)*stride > len(t.keysyms) {
		return nil
	}
	return t.keysyms[y*stride : (y+1)*stride]
}

// Columns: 0,1 group 1; 2,3 group 2; 4,5 group 1 level 3; 6,7 group 2 level 3.
// Control never selects a column.
func keysymsToKeysym(kss []xproto.Keysym, em event.KeyModifiers) xproto.Keysym {
	hasShift := em.HasAny(event.ModShift)
	hasCapsLock := em.HasAny(event.ModCapsLock)
	hasAltGr := em.HasAny(event.ModAltGr)
	hasNumLock := em.HasAny(event.ModNumLock)
	hasGroup2 := em.HasAny(event.ModGroup2)

	if len(kss) == 0 {
		return 0
	}

	// keysym group, an empty second group falls back to the first
	i1 := 0
	if hasGroup2 && !emptyColumns(kss, 2) {
		i1 = 2
	}
	if hasAltGr {
		if !emptyColumns(kss, i1+4) {
			i1 += 4
		} else if !emptyColumns(kss, 4) {
			i1 = 4
		}
	}

	// each group has two symbols
	i2 := i1 + 1
	if i2 >= len(kss) {
		i2 = i1
	}
	ks1, ks2 := kss[i1], kss[i2]
	if ks2 == 0 {
		ks2 = upperKeysym(ks1)
	}

	// keypad
	if hasNumLock && event.KeySym(ks2).IsKeypad() {
		if hasShift {
			return ks1
		}
		return ks2
	}

	r1 := event.KeySym(ks1).Rune()
	hasLower := unicode.IsLower(unicode.ToLower(r1))

	if hasLower {
		shifted := (hasShift && !hasCapsLock) || (!hasShift && hasCapsLock)
		if shifted {
			return ks2
		}
		return ks1
	}

	if hasShift {
		return ks2
	}
	return ks1
}

// Single keysym entries get the uppercase as the shifted symbol.
func upperKeysym(ks xproto.Keysym) xproto.Keysym {
	ru := event.KeySym(ks).Rune()
	if !unicode.IsLower(ru) {
		return ks
	}
	return xproto.Keysym(event.KeySymFromRune(unicode.ToUpper(ru)))
}

//----------

func emptyColumns(kss []xproto.Keysym, i int) bool {
	if i >= len(kss) {
		return true
	}
	return kss[i] == 0 && (i+1 >= len(kss) || kss[i+1] == 0)
}

//----------

func (km *KMap) KeysymsTableStr() string {
	t := km.table()
	o := "keysym table\n"
	for j := int(t.minKeycode); j <= int(t.maxKeycode); j++ {
		kc := xproto.Keycode(j)
		kss := t.keycodeToKeysyms(kc)
		u := []string{}
		for _, xks := range kss {
			if xks == 0 {
				continue
			}
			u = append(u, fmt.Sprintf("\t(0x%x,%v)", uint32(xks), event.KeySym(xks)))
		}
		us := strings.Join(u, "\n")
		if len(us) > 0 {
			us = "\n" + us
		}
		o += fmt.Sprintf("kc=%v:%v\n", kc, us)
	}
	mg := t.modGroups
	o += fmt.Sprintf("mod groups: numlock=%v alt=%v altgr=%v super=%v meta=%v modeswitch=%v\n",
		mg.numLock, mg.alt, mg.altGr, mg.super, mg.meta, mg.modeSwitch)
	return o
}
