package code

import (
	"sort"

	"github.com/samber/lo"
)

// WordSeparator is the code for a space between words.
const WordSeparator = "/"

var toMorse = map[rune]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".",
	'f': "..-.", 'g': "--.", 'h': "....", 'i': "..", 'j': ".---",
	'k': "-.-", 'l': ".-..", 'm': "--", 'n': "-.", 'o': "---",
	'p': ".--.", 'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
	'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-", 'y': "-.--",
	'z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	' ': WordSeparator,
}

var fromMorse = lo.Invert(toMorse)

// Symbol is one entry of the symbol table.
type Symbol struct {
	Char rune
	Code string
}

// Lookup returns the code for a single lowercase character.
func Lookup(r rune) (string, bool) {
	c, ok := toMorse[r]
	return c, ok
}

// Reverse returns the character for a single code.
func Reverse(code string) (rune, bool) {
	r, ok := fromMorse[code]
	return r, ok
}

// Symbols lists the table ordered letters first, then digits, then space.
func Symbols() []Symbol {
	symbols := lo.MapToSlice(toMorse, func(r rune, c string) Symbol {
		return Symbol{Char: r, Code: c}
	})
	sort.Slice(symbols, func(i, j int) bool {
		return rank(symbols[i].Char) < rank(symbols[j].Char)
	})
	return symbols
}

func rank(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= '0' && r <= '9':
		return 26 + int(r-'0')
	default:
		return 36
	}
}
