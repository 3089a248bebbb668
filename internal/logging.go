package internal

import (
	"log"
	"os"
)

// InitLogging routes the standard logger to stderr with microsecond
// timestamps, keeping stdout free for decoded output.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
