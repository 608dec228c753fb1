package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ApexioDaCoder/progresser/bar"
	"github.com/ApexioDaCoder/progresser/internal/config"
	"github.com/ApexioDaCoder/progresser/spinner"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw a bar that fills up at a fixed pace",
		Long: `Draw a bar that fills up one tick per --delay until it is complete.

Format tokens: {bar}, {current}, {size}, {percent}, {spinner}.`,
		Args: cobra.NoArgs,
		RunE: doRun,
	}
	cmd.Flags().String("format", config.DefaultFormat, "Format of the bar line")
	cmd.Flags().Int("size", 20, "Number of ticks until the bar is complete")
	cmd.Flags().String("style", spinner.DefaultStyle, "Spinner style, see \"progresser styles\"")
	cmd.Flags().Bool("no-spinner", false, "Do not animate the {spinner} token")
	cmd.Flags().Bool("no-color", false, "Do not color the bar")
	cmd.Flags().Bool("clear", false, "Clear the bar when it completes instead of keeping it")
	cmd.Flags().Duration("delay", 100*time.Millisecond, "Time between two ticks")
	cmd.Flags().Int("interrupt-every", 0, "Log a line above the bar every N ticks")
	return cmd
}

func doRun(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to parse configuration: %w", err)
	}
	delay := viper.GetDuration("delay")
	every := viper.GetInt("interrupt-every")
	if delay <= 0 {
		return fmt.Errorf("delay must be positive, got %s", delay)
	}

	logrus.Debugf("Running a bar of %d ticks every %s", cfg.Size, delay)

	done := make(chan struct{})
	opts := cfg.Options(cmd.ErrOrStderr())
	opts.Size = bar.Int(cfg.Size)
	b, err := bar.New(cfg.Format, opts, func(*bar.Bar) {
		close(done)
	})
	if err != nil {
		return err
	}
	defer b.Terminate()

	logger := logrus.StandardLogger()
	prevOut := logger.Out
	logger.SetOutput(b.Writer())
	defer logger.SetOutput(prevOut)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for ticks := 1; ; ticks++ {
		select {
		case <-ctx.Done():
			b.Terminate()
			return ctx.Err()
		case <-done:
			fmt.Fprintln(cmd.OutOrStdout(), "Done")
			return b.Err()
		case <-ticker.C:
			b.Tick()
			if every > 0 && ticks%every == 0 && ticks <= b.Size() {
				logrus.Infof("Completed %d of %d", ticks, b.Size())
			}
		}
	}
}
