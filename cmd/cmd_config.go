package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/config"
	"github.com/spf13/cobra"
)

type ConfigInitParams struct {
	Force bool `short:"f" help:"Overwrite an existing config file."`
}

func ConfigCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "config",
		Short: "Show and create the configuration",
		Long: `The configuration lives in $XDG_CONFIG_HOME/dit/config.yaml (~/.config/dit/config.yaml).
Every key can be overridden with a DIT_ environment variable, e.g. DIT_SPEED=1.5 or DIT_TONE_FREQUENCY=600.
A .env file in the working directory is loaded first.`,
		SubCmds: []*cobra.Command{
			configShowCmd(),
			configPathCmd(),
			configInitCmd(),
		},
	}.ToCobra()
}

func configShowCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "show",
		Short: "Print the effective configuration",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			if err := runConfigShow(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "config show: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func configPathCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "path",
		Short: "Print the config file path",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			fmt.Println(config.Path())
		},
	}.ToCobra()
}

func configInitCmd() *cobra.Command {
	return boa.CmdT[ConfigInitParams]{
		Use:         "init",
		Short:       "Write the default configuration file",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *ConfigInitParams, cmd *cobra.Command, args []string) {
			if err := runConfigInit(params, config.Path(), os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "config init: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runConfigShow(stdout io.Writer) error {
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

func runConfigInit(params *ConfigInitParams, path string, stdout io.Writer) error {
	if _, err := os.Stat(path); err == nil && !params.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}
