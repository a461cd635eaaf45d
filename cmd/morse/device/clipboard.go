package device

import (
	"fmt"

	"github.com/atotto/clipboard"
)

var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
