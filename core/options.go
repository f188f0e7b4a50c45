package core

import (
	"github.com/jmigpin/xst/core/keytrans"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type Options struct {
	ConfigFile string
	Display    string
	Name       string
	Class      string
	Shell      string

	EightBit    bool
	Compose     bool // dead keys input context
	CRLF        bool
	MetaFold    FoldModeOpt
	MetaCharset string
	Paste       string // text sent by the paste shortcuts

	LogLevel    LevelOpt
	DebugEvents bool
}

func (o *Options) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/xst/xst.yaml)")
	fs.StringVar(&o.Display, "display", "", "x display (default $DISPLAY)")
	fs.StringVar(&o.Name, "name", "xst", "window name")
	fs.StringVar(&o.Class, "class", "Xst", "window class")
	fs.StringVar(&o.Shell, "shell", "", "shell to run (default $SHELL)")
	fs.BoolVar(&o.EightBit, "eightbit", false, "meta sets the 8th bit instead of prefixing escape")
	fs.BoolVar(&o.Compose, "compose", true, "compose dead keys")
	fs.BoolVar(&o.CRLF, "crlf", false, "send return as cr+lf")
	fs.Var(&o.MetaFold, "meta-fold", "eight bit meta output: byte|utf8")
	fs.StringVar(&o.MetaCharset, "meta-charset", "", "charset of the folded meta byte (iana name, default latin-1)")
	fs.StringVar(&o.Paste, "paste", "", "text sent by the paste shortcuts")
	fs.Var(&o.LogLevel, "log-level", "log level: trace|debug|info|warn|error")
	fs.BoolVar(&o.DebugEvents, "debug-events", false, "dump x key events")
}

//----------

// implements pflag.Value interface
type FoldModeOpt struct {
	Mode keytrans.FoldMode
}

func (o *FoldModeOpt) Set(s string) error {
	m, err := keytrans.ParseFoldMode(s)
	if err != nil {
		return err
	}
	o.Mode = m
	return nil
}
func (o *FoldModeOpt) String() string {
	return o.Mode.String()
}
func (o *FoldModeOpt) Type() string {
	return "fold"
}

//----------

// implements pflag.Value interface
type LevelOpt struct {
	level zerolog.Level
	set   bool
}

func (o *LevelOpt) Set(s string) error {
	lvl, err := parseLevel(s)
	if err != nil {
		return err
	}
	o.level = lvl
	o.set = true
	return nil
}
func (o *LevelOpt) Level() zerolog.Level {
	if !o.set {
		return zerolog.InfoLevel
	}
	return o.level
}
func (o *LevelOpt) String() string {
	return o.Level().String()
}
func (o *LevelOpt) Type() string {
	return "level"
}
