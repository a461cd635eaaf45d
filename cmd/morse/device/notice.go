package device

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
)

// Level of a Notice.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a user facing message. Blocking notices need to be acknowledged
// before the user carries on (an alert rather than a toast).
type Notice struct {
	Level    Level
	Title    string
	Message  string
	Blocking bool
}

func (n Notice) String() string {
	if n.Title == "" {
		return n.Message
	}
	return fmt.Sprintf("%s: %s", n.Title, n.Message)
}

// Notifier surfaces notices to the user.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Notifiers fans a notice out to several notifiers.
func Notifiers(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notice) {
		for _, nf := range notifiers {
			if nf != nil {
				nf.Notify(n)
			}
		}
	})
}

// CopiedNotice confirms that what, e.g. "Morse code", is on the clipboard.
func CopiedNotice(what string) Notice {
	return Notice{
		Level:   LevelInfo,
		Title:   "Copied",
		Message: what + " copied to clipboard.",
	}
}

// WriterNotifier prints notices as lines, typically to stderr.
type WriterNotifier struct {
	mu sync.Mutex
	W  io.Writer
}

func (w *WriterNotifier) Notify(n Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.W, n.String())
}

var (
	beeepNotify = beeep.Notify
	beeepAlert  = beeep.Alert
)

// DesktopNotifier sends OS notifications. Blocking notices become alerts.
type DesktopNotifier struct {
	AppName string
}

// NewDesktopNotifier registers appName with the OS notification service.
// beeep keeps the name in a package global, so it is set here once and not
// on every Notify.
func NewDesktopNotifier(appName string) DesktopNotifier {
	if appName != "" {
		beeep.AppName = appName
	}
	return DesktopNotifier{AppName: appName}
}

func (d DesktopNotifier) Notify(n Notice) {
	title := n.Title
	if title == "" {
		title = d.AppName
	}

	send := beeepNotify
	if n.Blocking {
		send = beeepAlert
	}
	if err := send(title, n.Message, ""); err != nil {
		slog.Debug("desktop notification failed", "title", title, "error", err)
	}
}
