package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/morse"
	"github.com/gigurra/dit/cmd/qr"
	"github.com/spf13/cobra"
)

const (
	groupTranscode = "transcode"
	groupPlayback  = "playback"
	groupSetup     = "setup"
)

func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func main() {
	boa.CmdT[boa.NoParams]{
		Use:   "dit",
		Short: "Morse code transcoder and signal player",
		Long: `Translate between text and Morse code, and play Morse code as light, sound and vibration.

Run without a command to open the interactive screen, or pipe text in to encode it.`,
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupTranscode, Title: "Transcoding:"},
			{ID: groupPlayback, Title: "Playback:"},
			{ID: groupSetup, Title: "Setup:"},
		},
		SubCmds: []*cobra.Command{
			// Transcoding
			withGroup(morse.EncodeCmd(), groupTranscode),
			withGroup(morse.DecodeCmd(), groupTranscode),
			withGroup(morse.TableCmd(), groupTranscode),
			withGroup(cmd.ClipCmd(), groupTranscode),
			withGroup(qr.Cmd(), groupTranscode),

			// Playback
			withGroup(morse.PlayCmd(), groupPlayback),
			withGroup(morse.ScreenCmd(), groupPlayback),

			// Setup
			withGroup(cmd.ConfigCmd(), groupSetup),
		},
		RunFunc: func(_ *boa.NoParams, c *cobra.Command, args []string) {
			var err error
			if common.StdinIsTerminal() {
				err = morse.RunScreen(&morse.ScreenParams{})
			} else {
				err = morse.RunEncode(os.Stdin, os.Stdout, os.Stderr)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "dit: %v\n", err)
				os.Exit(1)
			}
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
