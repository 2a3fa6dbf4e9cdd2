package cli

import (
	"context"
	"io"
	"log"

	"vibelist/internal/backend"
	"vibelist/internal/config"
	"vibelist/internal/service"
	"vibelist/internal/store"
	"vibelist/internal/tasklist"
)

var _ ServiceFactory = OpenTaskList

// OpenTaskList opens the configured backend and restores the task list from
// it. It is the production ServiceFactory.
func OpenTaskList(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, io.Closer, error) {
	b, closer, err := backend.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.New(b, cfg.StorageKey, logger)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return tasklist.New(st, tasklist.WithLogger(logger)), closer, nil
}
