package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"vibelist/internal/exitcode"
	"vibelist/internal/service"
)

// TaskRef identifies a task either by its 1-based position in the listing
// or by its id.
type TaskRef struct {
	Num int    // 1-based position; 0 when ID is set
	ID  string // task id; empty when Num is set

	raw string // digits as typed, tried as an id when Num is out of range
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrTaskNotFound indicates the referenced task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrOutOfRange indicates a position past the end of the list.
	ErrOutOfRange = errors.New("task number out of range")
)

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
//  1. No args → ErrTaskRefRequired
//  2. More than one arg → error: unexpected argument
//  3. All digits → position reference, falling back to an id match when
//     the position is out of range
//  4. Anything else → id reference
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	ref := strings.TrimSpace(args[0])
	if ref == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
		}
		return TaskRef{Num: num, raw: ref}, nil
	}
	return TaskRef{ID: ref}, nil
}

// String returns the reference as the user typed it.
func (r TaskRef) String() string {
	if r.ID != "" {
		return r.ID
	}
	return strconv.Itoa(r.Num)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveTask finds the task a reference points at. Positions count from the
// newest task, matching the list command's numbering.
func ResolveTask(svc service.Service, ref TaskRef) (service.Task, error) {
	if ref.ID != "" {
		task, ok := svc.Get(ref.ID)
		if !ok {
			return service.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref.ID)
		}
		return task, nil
	}

	tasks := svc.All()
	if ref.Num < 1 || ref.Num > len(tasks) {
		if ref.raw != "" {
			if task, ok := svc.Get(ref.raw); ok {
				return task, nil
			}
		}
		return service.Task{}, fmt.Errorf("%w: %d", ErrOutOfRange, ref.Num)
	}
	return tasks[ref.Num-1], nil
}

// resolveArgs parses and resolves a task reference, reporting failures on
// errOut. Returns exitcode.Success when task is valid.
func resolveArgs(svc service.Service, args []string, errOut io.Writer) (service.Task, int) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Task{}, exitcode.UserError
	}

	task, err := ResolveTask(svc, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Task{}, exitcode.UserError
	}
	return task, exitcode.Success
}
