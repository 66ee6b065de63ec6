package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flexydesign/flexy"
	"github.com/flexydesign/flexy/internal/config"
)

type renderOptions struct {
	scene  string
	width  float64
	height float64
	locale string
	out    string
	pretty bool
}

var renderOpts renderOptions

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render MARKUP",
	Short: "render mounts a design and prints the resulting document.",
	Long: `
		Render parses the generated markup, mounts a container over it with
		the components of the scene file and prints the document.
		Unless --scene is given, flexy.yaml is looked up next to the markup.
	`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		out, err := render(args[0], renderOpts, logger)
		if err != nil {
			return err
		}
		return write(renderOpts.out, out)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addRenderFlags(renderCmd, &renderOpts)
	renderCmd.Flags().StringVarP(&renderOpts.out, "out", "o", "", "output file (default stdout)")
}

func addRenderFlags(cmd *cobra.Command, o *renderOptions) {
	cmd.Flags().StringVarP(&o.scene, "scene", "s", "", "scene file")
	cmd.Flags().Float64Var(&o.width, "width", 0, "viewport width, overrides the scene")
	cmd.Flags().Float64Var(&o.height, "height", 0, "viewport height, overrides the scene")
	cmd.Flags().StringVar(&o.locale, "locale", "", "viewport locale, overrides the scene")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "indent the output")
}

func scenePath(markupPath string, o renderOptions) string {
	if o.scene != "" {
		return o.scene
	}
	return filepath.Join(filepath.Dir(markupPath), config.DefaultFile)
}

// render runs one mount of the markup file and returns the document markup.
func render(markupPath string, o renderOptions, logger *zap.Logger) (string, error) {
	markup, err := os.ReadFile(markupPath)
	if err != nil {
		return "", fmt.Errorf("failed to read markup: %w", err)
	}
	var scene *config.Scene
	if o.scene != "" {
		scene, err = config.Load(o.scene)
	} else {
		scene, err = config.LoadOptional(scenePath(markupPath, o))
	}
	if err != nil {
		return "", err
	}
	if o.width > 0 {
		scene.Viewport.Width = o.width
	}
	if o.height > 0 {
		scene.Viewport.Height = o.height
	}
	if o.locale != "" {
		scene.Viewport.Locale = o.locale
	}

	doc, c, err := scene.Mount(string(markup), flexy.WithLogger(logger))
	if err != nil {
		return "", err
	}
	scale, scaled := c.Scale()
	logger.Info("rendered",
		zap.String("markup", markupPath),
		zap.String("tag", c.Tag()),
		zap.Float64("ratio", c.Ratio()),
		zap.Float64("scale", scale),
		zap.Bool("scaled", scaled))

	if o.pretty {
		return doc.Pretty(), nil
	}
	return doc.String(), nil
}

func write(path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
