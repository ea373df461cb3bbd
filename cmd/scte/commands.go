package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/debugsrv"
	"github.com/galago-remap/scte/internal/menu"
	"github.com/galago-remap/scte/internal/parser"
	"github.com/galago-remap/scte/internal/profile"
	"github.com/galago-remap/scte/internal/ui/colorize"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <action-text>",
		Short: "Parse action text and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parser.ParseAction(args[0])
			if err != nil {
				return err
			}
			fmt.Println(colorize.ActionExpr(a.ToString()))
			return nil
		},
	}
}

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <action-text>",
		Short: "Parse, compress, and print action text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parser.ParseAction(args[0])
			if err != nil {
				return err
			}
			fmt.Println(colorize.ActionExpr(a.Compress().ToString()))
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	var ctxName string
	cmd := &cobra.Command{
		Use:   "describe <action-text>",
		Short: "Parse, compress, and print a human-readable description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parser.ParseAction(args[0])
			if err != nil {
				return err
			}
			ctx, err := describeContext(ctxName)
			if err != nil {
				return err
			}
			fmt.Println(a.Compress().Describe(ctx))
			return nil
		},
	}
	cmd.Flags().StringVar(&ctxName, "context", "button", "description context: button, osd, or switcher")
	return cmd
}

func describeContext(name string) (action.DescContext, error) {
	switch name {
	case "button":
		return action.ACButton, nil
	case "osd":
		return action.ACOSD, nil
	case "switcher":
		return action.ACSwitcher, nil
	default:
		return 0, fmt.Errorf("unknown description context %q (want button, osd, or switcher)", name)
	}
}

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the button and pad/stick/trigger name tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			buttons := constants.ButtonNameTable()
			names := make([]string, 0, len(buttons))
			for name := range buttons {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Println(colorize.Header("Buttons"))
			for _, name := range names {
				fmt.Printf("  %s = %d\n", colorize.Key(name), buttons[name])
			}

			psts := constants.PSTNameTable()
			names = names[:0]
			for name := range psts {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Println(colorize.Header("Pads/Sticks/Triggers"))
			for _, name := range names {
				fmt.Printf("  %s = %d\n", colorize.Key(name), psts[name])
			}
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <path>",
		Short: "Load a profile and print the bound action for every slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			buttons := make([]constants.Keycode, 0, len(p.Buttons))
			for k := range p.Buttons {
				buttons = append(buttons, k)
			}
			sort.Slice(buttons, func(i, j int) bool { return buttons[i] < buttons[j] })
			for _, k := range buttons {
				fmt.Printf("%s: %s\n", colorize.Key(constants.KeyName(k)), colorize.ActionExpr(p.Buttons[k].ToString()))
			}
			pads := make([]constants.PST, 0, len(p.Pads))
			for k := range p.Pads {
				pads = append(pads, k)
			}
			sort.Slice(pads, func(i, j int) bool { return pads[i] < pads[j] })
			for _, k := range pads {
				fmt.Printf("%s: %s\n", colorize.Key(k.String()), colorize.ActionExpr(p.Pads[k].ToString()))
			}
			return nil
		},
	}
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu <path>",
		Short: "Load a menu file and print its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			items, err := menu.Parse(data)
			if err != nil {
				return err
			}
			for _, it := range items {
				printMenuItem(it)
			}
			return nil
		},
	}
}

func printMenuItem(it menu.Item) {
	switch it.Type {
	case menu.ItemSeparator:
		fmt.Println(colorize.Border("----"))
	case menu.ItemGenerator:
		fmt.Printf("%s %s\n", colorize.Tag("generator"), it.Generator)
	case menu.ItemSubmenu:
		fmt.Printf("%s %s -> %s\n", colorize.Tag("submenu"), it.Name, it.Submenu)
	case menu.ItemAction:
		fmt.Printf("%s %s: %s\n", colorize.Tag("action"), it.Name, colorize.ActionExpr(it.Action.ToString()))
	default:
		fmt.Printf("%s %s\n", colorize.Tag("dummy"), it.Name)
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only debug introspection endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s listening on %s\n", colorize.Header("scte debug server"), addr)
			return debugsrv.Serve(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":7880", "address to listen on")
	return cmd
}
