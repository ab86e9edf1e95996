package dag_test

import "bytes"

// captureSink is a minimal io.Writer used to assert on log output without
// pulling in a real logging sink in tests.
type captureSink struct {
	bytes.Buffer
}
