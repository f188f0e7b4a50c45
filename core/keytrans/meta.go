package keytrans

import (
	"unicode/utf8"

	"github.com/jmigpin/xst/core/compose"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

var ErrInvalidEncoding = errors.New("meta folded byte is not a valid character")

type FoldMode int

const (
	// folded value stays a single byte
	FoldByte FoldMode = iota
	// folded value is re-encoded as utf8
	FoldUTF8
)

func (fm FoldMode) String() string {
	switch fm {
	case FoldByte:
		return "byte"
	case FoldUTF8:
		return "utf8"
	}
	return "?"
}

func ParseFoldMode(s string) (FoldMode, error) {
	switch s {
	case "byte", "":
		return FoldByte, nil
	case "utf8", "utf-8":
		return FoldUTF8, nil
	}
	return 0, errors.Errorf("bad meta fold mode: %q", s)
}

//----------

// Encodes the alt/meta modifier into a single byte composition.
type MetaEncoder struct {
	Fold FoldMode
	// charset the folded byte is interpreted in; nil is latin-1
	Charset encoding.Encoding
}

func NewMetaEncoder(fold FoldMode, charsetName string) (*MetaEncoder, error) {
	me := &MetaEncoder{Fold: fold}
	if charsetName == "" {
		return me, nil
	}
	enc, err := ianaindex.IANA.Encoding(charsetName)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", charsetName)
	}
	if enc == nil {
		return nil, errors.Errorf("charset %q: unsupported", charsetName)
	}
	me.Charset = enc
	return me, nil
}

func (me *MetaEncoder) Encode(buf *compose.Buffer, altHeld, eightBit bool) error {
	if !altHeld || buf.Len() != 1 {
		return nil
	}
	c := buf.Bytes()[0]
	if !eightBit {
		return buf.Prefix(0x1b)
	}
	if c >= 0o177 {
		return nil
	}
	c |= 0x80
	ru, ok := me.decode(c)
	if !ok {
		return ErrInvalidEncoding
	}
	if me.Fold == FoldUTF8 {
		var tmp [utf8.UTFMax]byte
		n := utf8.EncodeRune(tmp[:], ru)
		return buf.SetBytes(tmp[:n])
	}
	return buf.SetBytes([]byte{c})
}

func (me *MetaEncoder) decode(c byte) (rune, bool) {
	if me.Charset == nil {
		ru := rune(c)
		return ru, utf8.ValidRune(ru)
	}
	if cm, ok := me.Charset.(*charmap.Charmap); ok {
		ru := cm.DecodeByte(c)
		return ru, ru != utf8.RuneError
	}
	b, err := me.Charset.NewDecoder().Bytes([]byte{c})
	if err != nil {
		return 0, false
	}
	ru, size := utf8.DecodeRune(b)
	if ru == utf8.RuneError || size != len(b) {
		return 0, false
	}
	return ru, true
}
