package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/flexydesign/flexy"
)

var fitFlags struct {
	designWidth, designHeight float64
	width, height             float64
}

// fitCmd represents the fit command
var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "fit prints the height-fit scale and the fullsize geometry of a design.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := fitFlags
		ratio := flexy.DesignRatio(f.designWidth, f.designHeight)
		if math.IsNaN(ratio) {
			return fmt.Errorf("design width must be positive")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ratio: %v\n", ratio)
		if scale, ok := flexy.HeightFit(ratio, f.width, f.height); ok {
			fmt.Fprintf(out, "scale: %v\n", flexy.Round(scale, 6))
		} else {
			fmt.Fprintln(out, "scale: none")
		}
		g := flexy.ComputeFullsize(ratio, f.width, f.height)
		if g.Scaled {
			fmt.Fprintf(out, "fullsize: width %vpx, margin-left %vpx\n", flexy.Round(g.Width, 4), flexy.Round(g.MarginLeft, 4))
		} else {
			fmt.Fprintf(out, "fullsize: height %vpx\n", flexy.Round(g.Height, 4))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)
	fl := fitCmd.Flags()
	fl.Float64Var(&fitFlags.designWidth, "design-width", 0, "design container width")
	fl.Float64Var(&fitFlags.designHeight, "design-height", 0, "design container height")
	fl.Float64Var(&fitFlags.width, "width", 1280, "viewport width")
	fl.Float64Var(&fitFlags.height, "height", 720, "viewport height")
}
