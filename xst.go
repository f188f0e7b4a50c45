// Keyboard front-end of an X11 terminal: key presses are translated and written to a
// shell running on a pseudo-terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jmigpin/xst/core"
	"github.com/jmigpin/xst/core/ttyio"
	"github.com/jmigpin/xst/driver/xdriver"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var opt = &core.Options{}

var rootCmd = &cobra.Command{
	Use:   "xst",
	Short: "X11 terminal keyboard input",
	Long: `xst opens an X11 window and runs a shell on a pseudo-terminal. Key presses on the
window are translated (shortcuts, function keys, dead keys, meta encoding) and written to
the shell. The shell output is copied to stdout.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runXst(cmd)
	},
}

func init() {
	opt.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(kmapCmd, bindingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//----------

func runXst(cmd *cobra.Command) error {
	cfg, err := core.NewConfig(opt.ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}
	o, err := cfg.Options()
	if err != nil {
		return err
	}
	log, err := core.NewLogger(o.LogLevel.String(), os.Stderr)
	if err != nil {
		return err
	}

	win, err := xdriver.NewWindow(&xdriver.Options{
		Display: o.Display,
		Name:    o.Name,
		Class:   o.Class,
		Log:     log,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	sh, err := core.StartShell(o.Shell)
	if err != nil {
		return err
	}
	defer sh.Close()

	tty := ttyio.NewWriter(sh.Pty)
	sess, err := core.NewSession(win.XInput.KMap(), tty, o, log)
	if err != nil {
		return err
	}

	cfg.Watch(func(o2 *core.Options, err error) {
		if err == nil {
			err = sess.ApplyOptions(o2)
		}
		if err != nil {
			log.Warn().Err(err).Msg("config reload")
		}
	})

	go func() {
		_, _ = io.Copy(os.Stdout, sh.Pty)
	}()
	go func() {
		err := sh.Wait()
		log.Info().AnErr("exit", err).Msg("shell done")
		_ = win.Close()
	}()

	log.Info().Str("shell", sh.Cmd.Path).Str("config", cfg.File()).Msg("running")
	for {
		if sess.HandleEvent(win.NextEvent()) {
			return nil
		}
	}
}

func connError(err error) error {
	return errors.Wrap(err, "is an x server running? ($DISPLAY)")
}
