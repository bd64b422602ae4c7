package wavl

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger receives trace events from the rebalancing machinery, one per
// rotation and fix-up walk.  It defaults to info level, which keeps the
// debug-level trace silent; lower it to zerolog.DebugLevel when chasing a
// structural problem.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
}
