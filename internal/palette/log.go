package palette

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var paletteLogger = logrus.New()

func init() {
	paletteLogger.SetOutput(io.Discard)
	if os.Getenv("HARMONY_DEBUG_PALETTE") == "1" {
		paletteLogger.SetOutput(os.Stderr)
		paletteLogger.SetLevel(logrus.DebugLevel)
	}
}

// EnableDebug sends the package's debug logging to w, regardless of
// HARMONY_DEBUG_PALETTE.
func EnableDebug(w io.Writer) {
	paletteLogger.SetOutput(w)
	paletteLogger.SetLevel(logrus.DebugLevel)
}
