package output

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	taskCountKey = "%d tasks"
	remainingKey = "%d tasks remaining"
)

var printer = newPrinter()

func newPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	mustSet(b, taskCountKey, plural.Selectf(1, "%d",
		"=1", "%d task",
		plural.Other, "%d tasks",
	))
	mustSet(b, remainingKey, plural.Selectf(1, "%d",
		"=1", "%d task remaining",
		plural.Other, "%d tasks remaining",
	))
	return message.NewPrinter(language.English, message.Catalog(b))
}

func mustSet(b *catalog.Builder, key string, msg catalog.Message) {
	if err := b.Set(language.English, key, msg); err != nil {
		panic(err)
	}
}

// TaskCount returns "1 task" for exactly one and "N tasks" otherwise,
// zero included.
func TaskCount(n int) string {
	return printer.Sprintf(taskCountKey, n)
}

// RemainingText returns the remaining-count line, e.g. "2 tasks remaining".
func RemainingText(n int) string {
	return printer.Sprintf(remainingKey, n)
}
