package core

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Option sources by priority: flags, XST_* env vars, config file, defaults.
type Config struct {
	mu sync.Mutex
	v  *viper.Viper

	watching bool
}

// flags should have been registered with Options.RegisterFlags.
func NewConfig(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("name", "xst")
	v.SetDefault("class", "Xst")
	v.SetDefault("eightbit", false)
	v.SetDefault("compose", true)
	v.SetDefault("crlf", false)
	v.SetDefault("meta.fold", "byte")
	v.SetDefault("meta.charset", "")
	v.SetDefault("log.level", "info")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("xst")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("XST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		binds := [][2]string{
			{"display", "display"},
			{"name", "name"},
			{"class", "class"},
			{"shell", "shell"},
			{"eightbit", "eightbit"},
			{"compose", "compose"},
			{"crlf", "crlf"},
			{"meta.fold", "meta-fold"},
			{"meta.charset", "meta-charset"},
			{"paste", "paste"},
			{"log.level", "log-level"},
			{"debug_events", "debug-events"},
		}
		for _, b := range binds {
			f := flags.Lookup(b[1])
			if f == nil {
				return nil, errors.Errorf("missing flag: %v", b[1])
			}
			if err := v.BindPFlag(b[0], f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, errors.Wrap(err, "config")
		}
	}

	return &Config{v: v}, nil
}

//----------

func (c *Config) File() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v.ConfigFileUsed()
}

func (c *Config) Options() (*Options, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options()
}

func (c *Config) options() (*Options, error) {
	v := c.v
	o := &Options{
		ConfigFile:  v.ConfigFileUsed(),
		Display:     v.GetString("display"),
		Name:        v.GetString("name"),
		Class:       v.GetString("class"),
		Shell:       v.GetString("shell"),
		EightBit:    v.GetBool("eightbit"),
		Compose:     v.GetBool("compose"),
		CRLF:        v.GetBool("crlf"),
		MetaCharset: v.GetString("meta.charset"),
		Paste:       v.GetString("paste"),
		DebugEvents: v.GetBool("debug_events"),
	}
	if err := o.MetaFold.Set(v.GetString("meta.fold")); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if err := o.LogLevel.Set(v.GetString("log.level")); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return o, nil
}

// Calls fn with the new options every time the config file changes. No-op if no config
// file is in use.
func (c *Config) Watch(fn func(*Options, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watching || c.v.ConfigFileUsed() == "" {
		return
	}
	c.watching = true
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c.mu.Lock()
		o, err := c.options()
		c.mu.Unlock()
		fn(o, err)
	})
	c.v.WatchConfig()
}

//----------

// $XDG_CONFIG_HOME/xst
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xst"), nil
}
