package morse

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/morse/screen"
	"github.com/spf13/cobra"
)

type ScreenParams struct {
	Speed float64 `short:"s" help:"Initial speed multiplier. 0 uses the configured speed." default:"0"`
}

func ScreenCmd() *cobra.Command {
	return boa.CmdT[ScreenParams]{
		Use:   "ui",
		Short: "Open the interactive transcoder screen",
		Long: `Type text or Morse code and see it transcoded as you type.
Keys:
  tab      switch between encoding and decoding
  enter    play the Morse code
  ctrl+y   copy the output
  up/down  change the speed
  ctrl+t   switch between the dark and light theme
  esc      dismiss a notice, or quit`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *ScreenParams, cmd *cobra.Command, args []string) {
			if err := RunScreen(params); err != nil {
				fmt.Fprintf(os.Stderr, "ui: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// RunScreen opens the screen with the configured devices.
func RunScreen(params *ScreenParams) error {
	rt, err := newRuntime(true)
	if err != nil {
		return err
	}
	defer rt.Close()

	if params.Speed > 0 {
		rt.cfg.Speed = params.Speed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return screen.Run(ctx, screen.Options{
		Config:    rt.cfg,
		Viper:     rt.viper,
		Devices:   rt.devices,
		Clipboard: clipboard,
		Notifier:  rt.notifier,
	})
}
