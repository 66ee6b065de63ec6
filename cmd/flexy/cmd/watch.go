package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flexydesign/flexy/internal/watch"
)

var watchOpts renderOptions

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch MARKUP",
	Short: "watch renders a design again whenever the markup or the scene changes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()
		markupPath := args[0]

		run := func() {
			out, err := render(markupPath, watchOpts, logger)
			if err != nil {
				logger.Error("render failed", zap.Error(err))
				return
			}
			if err := write(watchOpts.out, out); err != nil {
				logger.Error("write failed", zap.Error(err))
			}
		}
		run()

		w, err := watch.Files([]string{markupPath, scenePath(markupPath, watchOpts)},
			watch.Options{Logger: logger},
			func(event fsnotify.Event) {
				logger.Info("change detected", zap.String("file", event.Name))
				run()
			})
		if err != nil {
			return err
		}
		defer w.Close()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addRenderFlags(watchCmd, &watchOpts)
	watchCmd.Flags().StringVarP(&watchOpts.out, "out", "o", "", "output file (default stdout)")
}
