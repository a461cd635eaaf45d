package qr

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/morse/code"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

type Params struct {
	Text          []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads from stdin."`
	Morse         bool     `short:"m" help:"Treat the input as Morse code and put it in the QR code as is." default:"false"`
	RecoveryLevel string   `short:"r" optional:"true" help:"Error recovery level (low, medium, high, highest)." default:"medium"`
	Invert        bool     `short:"i" optional:"true" help:"Invert colors (white on black). Default is standard black on white."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "qr",
		Short:       "Render a message as a Morse code QR code",
		Long:        "Encode text to Morse code and render the code as a QR code in the terminal, so it can be scanned and played elsewhere.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "qr: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func run(params *Params, stdin io.Reader, stdout io.Writer) error {
	inputs, err := common.ReadInputs(params.Text, stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}

	morse := strings.Join(inputs, " ")
	if !params.Morse {
		morse = code.Encode(strings.Join(inputs, " "))
	}
	if code.IsBlank(morse) {
		return fmt.Errorf("nothing to encode")
	}

	return render(stdout, morse, recoveryLevel(params.RecoveryLevel), params.Invert)
}

func recoveryLevel(s string) qrcode.RecoveryLevel {
	switch strings.ToLower(s) {
	case "low", "l":
		return qrcode.Low
	case "high", "h", "q":
		return qrcode.High
	case "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// render draws the QR code with two ANSI background-colored spaces per
// module. The bitmap includes the quiet zone.
func render(w io.Writer, content string, level qrcode.RecoveryLevel, invert bool) error {
	qr, err := qrcode.New(content, level)
	if err != nil {
		return fmt.Errorf("generating qr code: %w", err)
	}

	dark, light := "\033[40m  \033[0m", "\033[47m  \033[0m"
	if invert {
		dark, light = light, dark
	}

	for _, row := range qr.Bitmap() {
		var b strings.Builder
		for _, set := range row {
			if set {
				b.WriteString(dark)
			} else {
				b.WriteString(light)
			}
		}
		fmt.Fprintln(w, b.String()+"\033[0m")
	}
	return nil
}
