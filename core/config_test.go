package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/xst/core/keytrans"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func TestConfigFile1(t *testing.T) {
	file := writeTestConfig(t, "", ""+
		"eightbit: true\n"+
		"meta:\n"+
		"  fold: utf8\n"+
		"  charset: iso-8859-7\n"+
		"log:\n"+
		"  level: warn\n")

	c, _ := newTestConfig(t, file, "--crlf")
	o, err := c.Options()
	if err != nil {
		t.Fatal(err)
	}
	ok := o.EightBit &&
		o.CRLF &&
		o.Compose &&
		o.MetaFold.Mode == keytrans.FoldUTF8 &&
		o.MetaCharset == "iso-8859-7" &&
		o.LogLevel.Level() == zerolog.WarnLevel &&
		o.Name == "xst" &&
		o.ConfigFile == file
	if !ok {
		t.Fatal(spew.Sdump(o))
	}
}

func TestConfigPriority(t *testing.T) {
	file := writeTestConfig(t, "", "eightbit: true\ncrlf: true\nmeta:\n  fold: utf8\n")
	t.Setenv("XST_EIGHTBIT", "false")
	t.Setenv("XST_CRLF", "false")
	t.Setenv("XST_META_FOLD", "byte")

	// flag > env > file
	c, _ := newTestConfig(t, file, "--eightbit")
	o, err := c.Options()
	if err != nil {
		t.Fatal(err)
	}
	if !o.EightBit || o.CRLF || o.MetaFold.Mode != keytrans.FoldByte {
		t.Fatal(spew.Sdump(o))
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c, _ := newTestConfig(t, "")
	if c.File() != "" {
		t.Fatal(c.File())
	}
	o, err := c.Options()
	if err != nil {
		t.Fatal(err)
	}
	if o.EightBit || o.CRLF || !o.Compose || o.MetaFold.Mode != keytrans.FoldByte ||
		o.LogLevel.Level() != zerolog.InfoLevel || o.Class != "Xst" {
		t.Fatal(spew.Sdump(o))
	}

	// no file to watch
	c.Watch(func(*Options, error) { t.Fatal("called") })
}

func TestConfigErrors(t *testing.T) {
	// missing explicit file
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	(&Options{}).RegisterFlags(fs)
	if _, err := NewConfig(filepath.Join(t.TempDir(), "nofile.yaml"), fs); err == nil {
		t.Fatal("expecting error")
	}

	// unregistered flags
	if _, err := NewConfig("", pflag.NewFlagSet("test2", pflag.ContinueOnError)); err == nil {
		t.Fatal("expecting error")
	}

	// bad values
	file := writeTestConfig(t, "", "meta:\n  fold: wide\n")
	c, _ := newTestConfig(t, file)
	if _, err := c.Options(); err == nil {
		t.Fatal("expecting error")
	}
}

func TestConfigXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	file := writeTestConfig(t, filepath.Join(dir, "xst"), "paste: hello\n")

	c, _ := newTestConfig(t, "")
	if c.File() != file {
		t.Fatalf("%q", c.File())
	}
	o, err := c.Options()
	if err != nil {
		t.Fatal(err)
	}
	if o.Paste != "hello" {
		t.Fatal(spew.Sdump(o))
	}
}

func TestConfigWatch(t *testing.T) {
	file := writeTestConfig(t, "", "crlf: false\n")
	c, err := NewConfig(file, nil)
	if err != nil {
		t.Fatal(err)
	}
	ch := make(chan *Options, 1)
	c.Watch(func(o *Options, err error) {
		if err != nil {
			return
		}
		select {
		case ch <- o:
		default:
		}
	})

	if err := os.WriteFile(file, []byte("crlf: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	timeout := time.After(5 * time.Second)
	for {
		select {
		case o := <-ch:
			if o.CRLF {
				return
			}
		case <-timeout:
			t.Fatal("timeout")
		}
	}
}

//----------
//----------
//----------

func writeTestConfig(t *testing.T, dir, content string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(dir, "xst.yaml")
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return file
}

func newTestConfig(t *testing.T, file string, args ...string) (*Config, *Options) {
	t.Helper()
	opt := &Options{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opt.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(file, fs)
	if err != nil {
		t.Fatal(err)
	}
	return c, opt
}
