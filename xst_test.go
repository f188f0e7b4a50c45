package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmigpin/xst/core"
	"github.com/rs/zerolog"
)

func TestPrintBindings(t *testing.T) {
	o := &core.Options{}
	sess, err := core.NewSession(nil, nil, o, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	printBindings(buf, sess)
	s := buf.String()
	for _, w := range []string{"sendbreak", "numlock", "Shift+Ctrl", `"\x1b[A"`, "Num_Lock"} {
		if !strings.Contains(s, w) {
			t.Fatalf("missing %q:\n%v", w, s)
		}
	}
}
