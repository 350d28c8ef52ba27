package engine

import (
	"os"

	fwdebug "github.com/vst3go/phasercore/pkg/framework/debug"
)

// logger reports configuration-time and control-thread events: format
// changes, transport state transitions. It is never touched from
// RenderFrames or ProcessAndRender.
var logger = fwdebug.New(os.Stderr, "engine", fwdebug.DefaultFlags)

func init() {
	logger.SetLevel(fwdebug.LogLevelInfo)
}
