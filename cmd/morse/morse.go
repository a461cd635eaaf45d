package morse

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/morse/code"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/gigurra/dit/cmd/morse/sequencer"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type EncodeParams struct {
	Text  []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads lines from stdin."`
	Play  bool     `short:"p" help:"Play each encoded line as light, sound and haptic signals." default:"false"`
	Speed float64  `short:"s" help:"Playback speed multiplier. 0 uses the configured speed." default:"0"`
	Copy  bool     `short:"c" help:"Copy the encoded output to the clipboard." default:"false"`
}

type DecodeParams struct {
	Morse []string `pos:"true" optional:"true" help:"Morse code to decode, codes separated by blanks and words by '/'. If none provided, reads lines from stdin."`
	Copy  bool     `short:"c" help:"Copy the decoded output to the clipboard." default:"false"`
}

type PlayParams struct {
	Text  []string `pos:"true" optional:"true" help:"Text to play. If none provided, reads lines from stdin."`
	Morse bool     `short:"m" help:"Treat the input as Morse code instead of text." default:"false"`
	Speed float64  `short:"s" help:"Playback speed multiplier. 0 uses the configured speed." default:"0"`
}

var clipboard device.Clipboard = device.SystemClipboard{}

func EncodeCmd() *cobra.Command {
	return boa.CmdT[EncodeParams]{
		Use:         "encode",
		Short:       "Encode text to Morse code",
		Long:        "Convert text to Morse code. Letters, digits and spaces are encoded, anything else is dropped. Use -p to play the result.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *EncodeParams, cmd *cobra.Command, args []string) {
			if err := runEncode(params, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "encode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func DecodeCmd() *cobra.Command {
	return boa.CmdT[DecodeParams]{
		Use:         "decode",
		Short:       "Decode Morse code to text",
		Long:        "Convert Morse code back to text. Unknown codes are dropped.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *DecodeParams, cmd *cobra.Command, args []string) {
			if err := runDecode(params, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "decode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func PlayCmd() *cobra.Command {
	return boa.CmdT[PlayParams]{
		Use:         "play",
		Short:       "Play text or Morse code as light, sound and haptic signals",
		Long:        "Play text (or Morse code with -m) through the configured actuators: the speaker, and a torch LED and vibration motor on GPIO when enabled.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *PlayParams, cmd *cobra.Command, args []string) {
			if err := runPlay(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runEncode(params *EncodeParams, stdin io.Reader, stdout, stderr io.Writer) error {
	inputs, err := common.ReadInputs(params.Text, stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}

	encoded := make([]string, 0, len(inputs))
	for _, in := range inputs {
		e := code.Encode(in)
		fmt.Fprintln(stdout, e)
		encoded = append(encoded, e)
	}

	if params.Copy {
		if err := copyToClipboard(strings.Join(encoded, "\n"), "Morse code", stderr); err != nil {
			return err
		}
	}
	if params.Play {
		return play(encoded, params.Speed)
	}
	return nil
}

func runDecode(params *DecodeParams, stdin io.Reader, stdout, stderr io.Writer) error {
	inputs, err := common.ReadInputs(params.Morse, stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}

	decoded := make([]string, 0, len(inputs))
	for _, in := range inputs {
		d := code.Decode(in)
		fmt.Fprintln(stdout, d)
		decoded = append(decoded, d)
	}

	if params.Copy {
		return copyToClipboard(strings.Join(decoded, "\n"), "Text", stderr)
	}
	return nil
}

func runPlay(params *PlayParams, stdin io.Reader, stdout io.Writer) error {
	inputs, err := common.ReadInputs(params.Text, stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}

	morse := inputs
	if !params.Morse {
		morse = make([]string, 0, len(inputs))
		for _, in := range inputs {
			morse = append(morse, code.Encode(in))
		}
	}
	for _, m := range morse {
		fmt.Fprintln(stdout, m)
	}
	return play(morse, params.Speed)
}

// play sends every Morse string through one sequencer, in order. Ctrl+C stops
// the current playback.
func play(morse []string, speed float64) error {
	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	defer rt.Close()

	if speed <= 0 {
		speed = rt.cfg.Speed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seq := sequencer.New(sequencer.Options{
		Devices:  rt.devices,
		Notifier: rt.notifier,
		MinSpeed: rt.cfg.SpeedMin,
		MaxSpeed: rt.cfg.SpeedMax,
	})
	return playAll(ctx, seq, morse, speed)
}

// copyToClipboard copies text and confirms it on stderr, keeping stdout for
// the transcoded output.
func copyToClipboard(text, what string, stderr io.Writer) error {
	if err := clipboard.Copy(text); err != nil {
		return err
	}
	(&device.WriterNotifier{W: stderr}).Notify(device.CopiedNotice(what))
	return nil
}

type player interface {
	Play(ctx context.Context, morse string, speed float64) error
}

// playAll plays each message in turn and stops at the first failure. Blank
// messages are skipped unless nothing else is left, in which case the player
// gets to refuse them.
func playAll(ctx context.Context, p player, morse []string, speed float64) error {
	playable := lo.Filter(morse, func(m string, _ int) bool { return !code.IsBlank(m) })
	if len(playable) == 0 {
		return p.Play(ctx, strings.Join(morse, " "), speed)
	}
	for _, m := range playable {
		if err := p.Play(ctx, m, speed); err != nil {
			return err
		}
	}
	return nil
}

// RunEncode encodes every line of stdin to stdout.
func RunEncode(stdin io.Reader, stdout, stderr io.Writer) error {
	return runEncode(&EncodeParams{}, stdin, stdout, stderr)
}
