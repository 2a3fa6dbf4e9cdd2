// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"vibelist/internal/service"
)

// EmptyState is printed when the list holds no tasks.
const EmptyState = "no tasks yet"

// ClearHint is printed when completed tasks can be cleared.
const ClearHint = "run 'vibelist clear' to remove completed tasks"

// FormatTask formats a task line.
// Format: "{N:>4}  [ ] {TEXT}\n", with [x] for completed tasks.
func FormatTask(w io.Writer, num int, task service.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, mark, normalizeText(task.Text))
}

// FormatTaskVerbose is FormatTask with the task id appended.
func FormatTaskVerbose(w io.Writer, num int, task service.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s  (%s)\n", num, mark, normalizeText(task.Text), task.ID)
}

// FormatRemaining formats the remaining-count footer.
func FormatRemaining(w io.Writer, remaining int) {
	fmt.Fprintln(w, RemainingText(remaining))
}

// normalizeText replaces newlines with spaces so one task stays on one line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
