package store

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// newID returns a fresh record identifier (override in tests for determinism).
var newID = uuid.NewString
