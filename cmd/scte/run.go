package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/mapper"
	"github.com/galago-remap/scte/internal/profile"
	"github.com/galago-remap/scte/internal/ui/colorize"
)

// newRunCmd drives a loaded profile through a line-oriented event script,
// printing the most recent trace ring event after every line. A script line
// is one of:
//
//	press <SLOT>
//	release <SLOT>
//	axis <SLOT> <value>
//	advance <duration>
//
// SLOT is a button name (A, B, START, ...) for press/release, or a
// pad/stick/trigger name (STICK, LPAD, ...) for axis.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <profile> [script]",
		Short: "Drive a profile through a line-oriented event script",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Load(args[0])
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}

			var script io.Reader = os.Stdin
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				script = f
			}

			m := mapper.New(time.Now(), 0)
			return runScript(p, m, script)
		},
	}
}

func runScript(p *profile.Profile, m *mapper.Mapper, script io.Reader) error {
	sc := bufio.NewScanner(script)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if err := runLine(p, m, fields); err != nil {
			return fmt.Errorf("line %q: %w", line, err)
		}
		printTrace(m)
	}
	return sc.Err()
}

func runLine(p *profile.Profile, m *mapper.Mapper, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "press", "release":
		if len(fields) != 2 {
			return fmt.Errorf("want: %s <SLOT>", fields[0])
		}
		key, ok := constants.StringToButton(fields[1])
		if !ok {
			return fmt.Errorf("unknown button slot %q", fields[1])
		}
		a, bound := p.Buttons[key]
		if !bound {
			return nil
		}
		if fields[0] == "press" {
			action.DispatchButtonPress(a, m)
		} else {
			action.DispatchButtonRelease(a, m)
		}
	case "axis":
		if len(fields) != 3 {
			return fmt.Errorf("want: axis <SLOT> <value>")
		}
		pst, ok := constants.StringToPST(fields[1])
		if !ok {
			return fmt.Errorf("unknown pad/stick/trigger slot %q", fields[1])
		}
		value, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			return fmt.Errorf("bad axis value %q: %w", fields[2], err)
		}
		a, bound := p.Pads[pst]
		if !bound {
			return nil
		}
		action.DispatchAxis(a, m, int32(value), pst)
	case "advance":
		if len(fields) != 2 {
			return fmt.Errorf("want: advance <duration>")
		}
		d, err := time.ParseDuration(fields[1])
		if err != nil {
			return fmt.Errorf("bad duration %q: %w", fields[1], err)
		}
		m.Advance(d)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}

func printTrace(m *mapper.Mapper) {
	events := m.Trace.Events()
	if len(events) == 0 {
		return
	}
	e := events[len(events)-1]
	fmt.Printf("%s %s %s\n", colorize.Tag(string(e.Tags.Primary())), colorize.Key(e.Keyword), colorize.Detail(e.Detail))
}
