package morse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/morse/code"
	"github.com/gigurra/dit/cmd/morse/sequencer"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type TableParams struct {
	Speed    float64 `short:"s" help:"Speed multiplier used for the playing time column." default:"1"`
	Markdown bool    `short:"m" help:"Render the table as markdown." default:"false"`
}

func TableCmd() *cobra.Command {
	return boa.CmdT[TableParams]{
		Use:         "table",
		Short:       "Show the Morse symbol table",
		Long:        "List every supported symbol with its Morse code and how long it takes to play.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *TableParams, cmd *cobra.Command, args []string) {
			if err := runTable(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "table: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runTable(params *TableParams, stdout io.Writer) error {
	speed := sequencer.ClampSpeed(params.Speed, sequencer.DefaultMinSpeed, sequencer.DefaultMaxSpeed)

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"SYMBOL", "CODE", "TIME"})

	for _, s := range code.Symbols() {
		t.AppendRow(table.Row{
			symbolName(s.Char),
			s.Code,
			sequencer.Duration(sequencer.Plan(s.Code, speed)).String(),
		})
	}

	if params.Markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

func symbolName(r rune) string {
	if r == ' ' {
		return "space"
	}
	return strings.ToUpper(string(r))
}
