package presets

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/aicredit/go-aicredit/config"
)

func init() {
	register("standalone", standalone())
}

func standalone() config.Config {
	conf := config.DefaultConfig()
	conf.DataDirParent = filepath.Join(os.TempDir(), "aicredit")
	conf.DatabaseConnections = 4

	conf.VM.CacheSize = 1000

	conf.LOGGING.VMLoggerLevel = zapcore.DebugLevel.String()
	return conf
}
