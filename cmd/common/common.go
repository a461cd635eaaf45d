package common

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"golang.org/x/term"
)

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// StdinIsTerminal reports whether stdin is an interactive terminal rather
// than a pipe or a file.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadInputs returns the positional args joined by spaces as a single input.
// Without args every line of stdin is one input.
func ReadInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	return inputs, scanner.Err()
}
