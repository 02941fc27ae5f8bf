package history

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no history exists for an app
var ErrNotFound = errors.New("no history for app")

// Record is the persisted launch history of one app
type Record struct {
	Name    string    `json:"name"`
	Module  string    `json:"module"`
	Runs    int       `json:"runs"`
	LastRun time.Time `json:"last_run"`
}

// Options contains history store options
type Options struct {
	Directory string
	InMemory  bool
	// TTL expires records that have not been launched for this long.
	// Zero keeps records forever.
	TTL time.Duration
	// Logger enables badger's internal logging
	Logger bool
}

const keyPrefix = "app:"

func recordKey(name string) []byte {
	return []byte(keyPrefix + name)
}
