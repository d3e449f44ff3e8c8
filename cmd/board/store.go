package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amonks/todoboard/internal/config"
	"github.com/amonks/todoboard/internal/kv"
	"github.com/amonks/todoboard/internal/logging"
	"github.com/amonks/todoboard/internal/paths"
	"github.com/amonks/todoboard/todo"
	"github.com/charmbracelet/log"
)

// exitNotFound is returned when some of the requested todos do not exist.
const exitNotFound = 2

// session is an open board plus the configuration it was opened with.
type session struct {
	cfg    *config.Config
	store  *todo.Store
	logger *log.Logger
}

// loadConfig reads configuration for the working directory and applies the
// root flags on top.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if rootStorage != "" || rootPath != "" {
		if err := cfg.SetStorage(cwd, rootStorage, rootPath); err != nil {
			return nil, err
		}
	}
	if rootKey != "" {
		cfg.Storage.Key = rootKey
	}
	if rootLogLevel != "" {
		cfg.Log.Level = rootLogLevel
	}
	return cfg, nil
}

func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(os.Stderr, logging.Options{Level: cfg.Log.Level})
	if err != nil {
		return nil, err
	}

	slot, err := kv.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened storage", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path, "key", cfg.Storage.Key)

	store, err := todo.Open(slot, todo.OpenOptions{
		Key:        cfg.Storage.Key,
		TimeFormat: cfg.Display.TimeFormat,
		Logger:     logger,
	})
	if err != nil {
		slot.Close()
		return nil, err
	}

	return &session{cfg: cfg, store: store, logger: logger}, nil
}

// close flushes and closes the store. A write that failed during the
// command and still fails here is returned as an error.
func (s *session) close(errp *error) {
	if err := s.store.Close(); err != nil && *errp == nil {
		*errp = fmt.Errorf("changes were not saved: %w", err)
	}
}

// parseIDs converts todo ID arguments to numbers.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid todo id %q: must be a number", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func notFoundError(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, strconv.FormatInt(id, 10))
	}
	return exitError{
		code: exitNotFound,
		err:  fmt.Errorf("%w: %s", todo.ErrTodoNotFound, strings.Join(values, ", ")),
	}
}
