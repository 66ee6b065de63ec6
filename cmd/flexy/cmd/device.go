package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flexydesign/flexy"
)

var deviceFlags struct {
	width, height float64
	locale        string
	orientations  []string
	types         []string
	languages     []string
	min, max      string
}

// deviceCmd represents the device command
var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "device evaluates a device predicate against a viewport.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := deviceFlags
		env := flexy.Environment{Width: f.width, Height: f.height, Locale: f.locale}

		var d flexy.Device
		for _, o := range f.orientations {
			d.Orientations = append(d.Orientations, flexy.Orientation(o))
		}
		for _, t := range f.types {
			d.Types = append(d.Types, flexy.DeviceType(t))
		}
		d.Languages = f.languages
		if f.min != "" || f.max != "" {
			var bp flexy.Breakpoint
			var err error
			if bp.Min, err = parseSize(f.min); err != nil {
				return err
			}
			if bp.Max, err = parseSize(f.max); err != nil {
				return err
			}
			d.Breakpoints = []flexy.Breakpoint{bp}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "orientation: %s\n", env.Orientation())
		fmt.Fprintf(out, "type: %s\n", env.DeviceType())
		fmt.Fprintf(out, "match: %t\n", d.Match(env))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deviceCmd)
	fl := deviceCmd.Flags()
	fl.Float64Var(&deviceFlags.width, "width", 1280, "viewport width")
	fl.Float64Var(&deviceFlags.height, "height", 720, "viewport height")
	fl.StringVar(&deviceFlags.locale, "locale", "en-US", "viewport locale")
	fl.StringSliceVar(&deviceFlags.orientations, "orientation", nil, "accepted orientations (portrait, landscape)")
	fl.StringSliceVar(&deviceFlags.types, "type", nil, "accepted device types (mobile, tablet, desktop)")
	fl.StringSliceVar(&deviceFlags.languages, "language", nil, "accepted locales")
	fl.StringVar(&deviceFlags.min, "min", "", "minimum size, as W:H (either may be empty)")
	fl.StringVar(&deviceFlags.max, "max", "", "maximum size, as W:H (either may be empty)")
}

// parseSize reads "W:H", "W" or ":H".
func parseSize(s string) (flexy.Size, error) {
	var size flexy.Size
	if s == "" {
		return size, nil
	}
	w, h, _ := strings.Cut(s, ":")
	var err error
	if w != "" {
		if size.Width, err = strconv.ParseFloat(w, 64); err != nil {
			return size, fmt.Errorf("invalid size %q: %w", s, err)
		}
	}
	if h != "" {
		if size.Height, err = strconv.ParseFloat(h, 64); err != nil {
			return size, fmt.Errorf("invalid size %q: %w", s, err)
		}
	}
	return size, nil
}
