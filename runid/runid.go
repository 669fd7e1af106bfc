// Package runid assigns a unique id to each report run, used to correlate
// log output of overlapping runs on shared infrastructure.
package runid

import (
	"github.com/google/uuid"
)

// nolint:gochecknoglobals
var runId uuid.UUID

// nolint:gochecknoinits
func init() {
	runId = uuid.New()
}

// String returns the run id as string
func String() string {
	return runId.String()
}
