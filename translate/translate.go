// Package translate formats user-visible ls8 messages in the user's language.
package translate

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/ls8/cpu github.com/ezrec/ls8/emulator github.com/ezrec/ls8/io

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	lock    sync.Mutex
	printer *message.Printer
)

// getPrinter returns the active printer, detecting the system locale on first use.
func getPrinter() *message.Printer {
	lock.Lock()
	defer lock.Unlock()

	if printer == nil {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("ls8: locale: %v", err)
		}
		printer = newPrinter(locales...)
	}

	return printer
}

func newPrinter(tags ...string) *message.Printer {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(tags...))
}

// SetLanguage overrides the detected locale with the given BCP 47 tags.
func SetLanguage(tags ...string) (err error) {
	for _, tag := range tags {
		_, err = language.Parse(tag)
		if err != nil {
			return
		}
	}

	lock.Lock()
	defer lock.Unlock()

	printer = newPrinter(tags...)

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return getPrinter().Sprintf(key, args...)
}

// Error is an en-US message translated each time its text is requested,
// so it follows later SetLanguage calls.
type Error struct {
	key string
}

// NewError returns a distinct error for the en-US message key.
func NewError(key string) error {
	return &Error{key: key}
}

func (err *Error) Error() string {
	return From(err.key)
}
