package store

import (
	"bytes"
	"encoding/json"

	"vibelist/internal/service"
)

// Encode serializes tasks as an indented JSON array.
func Encode(tasks []service.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []service.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON array of task records. Unknown fields are ignored and
// missing fields keep their zero value, so records written by older or newer
// versions still load.
func Decode(data []byte) ([]service.Task, error) {
	var tasks []service.Task
	if err := json.Unmarshal(bytes.TrimSpace(data), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}
