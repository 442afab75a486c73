//go:build unit

package ai

import "io"

// The fx lifecycle hook closes the rephraser and reports the result, so
// Close must carry the client's error through.
var _ io.Closer = (*Rephraser)(nil)
