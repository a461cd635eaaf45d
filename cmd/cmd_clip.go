package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/morse/code"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/spf13/cobra"
)

var (
	clipboardWriteAll = clipboard.WriteAll
	clipboardReadAll  = clipboard.ReadAll
)

type ClipParams struct {
	Decode bool `short:"d" help:"Treat the input as Morse code and copy the decoded text."`
	Paste  bool `short:"p" help:"Transcode the clipboard content to standard output instead."`
}

func ClipCmd() *cobra.Command {
	return boa.CmdT[ClipParams]{
		Use:   "clip [text]",
		Short: "Copy transcoded messages to the clipboard",
		Long: `Encode text to Morse code and copy the result to the system clipboard.

If [text] is provided, it is transcoded and copied.
If no arguments are provided, reads from standard input until EOF.
Use -d to decode Morse code instead of encoding text.
Use -p to transcode the current clipboard content to standard output.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *ClipParams, cmd *cobra.Command, args []string) {
			if err := runClip(params, args, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "clip: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runClip(params *ClipParams, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	transcode, what := code.Encode, "Morse code"
	if params.Decode {
		transcode, what = code.Decode, "Text"
	}

	if params.Paste {
		if len(args) > 0 {
			return fmt.Errorf("cannot use arguments with --paste")
		}
		text, err := clipboardReadAll()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, transcodeLines(text, transcode))
		return nil
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		bytes, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		text = strings.TrimRight(string(bytes), "\r\n")
	}

	if err := clipboardWriteAll(transcodeLines(text, transcode)); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	(&device.WriterNotifier{W: stderr}).Notify(device.CopiedNotice(what))

	return nil
}

func transcodeLines(text string, transcode func(string) string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = transcode(strings.TrimRight(line, "\r"))
	}
	return strings.Join(lines, "\n")
}
