package event

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Legacy keysyms (0x100-0x20ff) predate the unicode range. Most of their sets keep the
// byte value of an 8-bit charset in the low byte.
// https://www.cl.cam.ac.uk/~mgk25/ucs/keysym2ucs.c

func legacyRune(ks KeySym) rune {
	if ru, ok := legacyRunes[ks]; ok {
		return ru
	}
	if ks >= 0x20a0 && ks <= 0x20ac { // currency
		return rune(ks)
	}
	lo := byte(ks)
	if lo < 0xa1 {
		return 0
	}
	var cm *charmap.Charmap
	switch ks >> 8 {
	case 0x1:
		cm = charmap.ISO8859_2
	case 0x2:
		cm = charmap.ISO8859_3
	case 0x3:
		cm = charmap.ISO8859_4
	case 0x5:
		cm = charmap.ISO8859_6
	case 0x6:
		if lo >= 0xc0 {
			cm = charmap.KOI8R
		}
	case 0x7:
		if lo >= 0xc1 {
			cm = charmap.ISO8859_7
		}
	case 0xc:
		if lo >= 0xdf {
			cm = charmap.ISO8859_8
		}
	case 0xd:
		cm = charmap.Windows874 // tis-620
	}
	if cm == nil {
		return 0
	}
	ru := cm.DecodeByte(lo)
	if ru == utf8.RuneError {
		return 0
	}
	return ru
}

// Entries that don't follow a charset.
var legacyRunes = map[KeySym]rune{
	// cyrillic
	0x6a1: 0x0452, // Serbian_dje
	0x6a2: 0x0453, // Macedonia_gje
	0x6a3: 0x0451, // Cyrillic_io
	0x6a4: 0x0454, // Ukrainian_ie
	0x6a5: 0x0455, // Macedonia_dse
	0x6a6: 0x0456, // Ukrainian_i
	0x6a7: 0x0457, // Ukrainian_yi
	0x6a8: 0x0458, // Cyrillic_je
	0x6a9: 0x0459, // Cyrillic_lje
	0x6aa: 0x045a, // Cyrillic_nje
	0x6ab: 0x045b, // Serbian_tshe
	0x6ac: 0x045c, // Macedonia_kje
	0x6ad: 0x0491, // Ukrainian_ghe_with_upturn
	0x6ae: 0x045e, // Byelorussian_shortu
	0x6af: 0x045f, // Cyrillic_dzhe
	0x6b0: 0x2116, // numerosign
	0x6b1: 0x0402, // Serbian_DJE
	0x6b2: 0x0403, // Macedonia_GJE
	0x6b3: 0x0401, // Cyrillic_IO
	0x6b4: 0x0404, // Ukrainian_IE
	0x6b5: 0x0405, // Macedonia_DSE
	0x6b6: 0x0406, // Ukrainian_I
	0x6b7: 0x0407, // Ukrainian_YI
	0x6b8: 0x0408, // Cyrillic_JE
	0x6b9: 0x0409, // Cyrillic_LJE
	0x6ba: 0x040a, // Cyrillic_NJE
	0x6bb: 0x040b, // Serbian_TSHE
	0x6bc: 0x040c, // Macedonia_KJE
	0x6bd: 0x0490, // Ukrainian_GHE_WITH_UPTURN
	0x6be: 0x040e, // Byelorussian_SHORTU
	0x6bf: 0x040f, // Cyrillic_DZHE

	// greek
	0x7a1: 0x0386, // Greek_ALPHAaccent
	0x7a2: 0x0388, // Greek_EPSILONaccent
	0x7a3: 0x0389, // Greek_ETAaccent
	0x7a4: 0x038a, // Greek_IOTAaccent
	0x7a5: 0x03aa, // Greek_IOTAdieresis
	0x7a7: 0x038c, // Greek_OMICRONaccent
	0x7a8: 0x038e, // Greek_UPSILONaccent
	0x7a9: 0x03ab, // Greek_UPSILONdieresis
	0x7ab: 0x038f, // Greek_OMEGAaccent
	0x7ae: 0x0385, // Greek_accentdieresis
	0x7af: 0x2015, // Greek_horizbar
	0x7b1: 0x03ac, // Greek_alphaaccent
	0x7b2: 0x03ad, // Greek_epsilonaccent
	0x7b3: 0x03ae, // Greek_etaaccent
	0x7b4: 0x03af, // Greek_iotaaccent
	0x7b5: 0x03ca, // Greek_iotadieresis
	0x7b6: 0x0390, // Greek_iotaaccentdieresis
	0x7b7: 0x03cc, // Greek_omicronaccent
	0x7b8: 0x03cd, // Greek_upsilonaccent
	0x7b9: 0x03cb, // Greek_upsilondieresis
	0x7ba: 0x03b0, // Greek_upsilonaccentdieresis
	0x7bb: 0x03ce, // Greek_omegaaccent
	// sigma differs from iso-8859-7
	0x7d2: 0x03a3, // Greek_SIGMA
	0x7f2: 0x03c3, // Greek_sigma
	0x7f3: 0x03c2, // Greek_finalsmallsigma

	// latin-9
	0x13bc: 0x0152, // OE
	0x13bd: 0x0153, // oe
	0x13be: 0x0178, // Ydiaeresis
}
