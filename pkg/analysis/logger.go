package analysis

import (
	"log"
	"os"
)

// Logger is the diagnostic sink used for EmptyMesh warnings and
// spatial-index build progress. Embedders (WASM hosts, browser glue)
// can redirect it without this package importing anything beyond the
// standard library.
type Logger interface {
	Printf(format string, args ...any)
}

// stdLogger adapts the standard library's *log.Logger to the Logger
// interface; it's the Analyzer's default when none is supplied.
type stdLogger struct {
	*log.Logger
}

func defaultLogger() Logger {
	return stdLogger{log.New(os.Stderr, "geom-core: ", log.LstdFlags)}
}
