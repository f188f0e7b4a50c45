package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/jmigpin/xst/core"
	"github.com/jmigpin/xst/driver/xdriver/xinput"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var kmapCmd = &cobra.Command{
	Use:   "kmap",
	Short: "Print the keyboard mapping of the x server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		display := opt.Display
		if display == "" {
			display = os.Getenv("DISPLAY")
		}
		conn, err := xgb.NewConnDisplay(display)
		if err != nil {
			return connError(err)
		}
		defer conn.Close()
		km, err := xinput.NewKMap(conn)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), km.KeysymsTableStr())
		return nil
	},
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List the shortcuts and function key strings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := core.NewConfig(opt.ConfigFile, cmd.Flags())
		if err != nil {
			return err
		}
		o, err := cfg.Options()
		if err != nil {
			return err
		}
		sess, err := core.NewSession(nil, nil, o, zerolog.Nop())
		if err != nil {
			return err
		}
		printBindings(cmd.OutOrStdout(), sess)
		return nil
	},
}

func printBindings(w io.Writer, sess *core.Session) {
	fmt.Fprintln(w, "shortcuts:")
	for _, sc := range sess.Shortcuts().Entries() {
		fmt.Fprintf(w, "\t%-14v %-12v %-10v %v\n", sc.Mods, sc.KeySym, sc.Name, sc.Arg)
	}
	fmt.Fprintln(w, "function keys:")
	for _, k := range sess.FnKeys().Keys() {
		fmt.Fprintf(w, "\t%-14v %-12v %-14q appkey=%v appcursor=%v\n", k.Mods, k.KeySym, k.Str, k.AppKey, k.AppCursor)
	}
}
