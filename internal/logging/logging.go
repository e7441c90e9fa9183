package logging

import "go.uber.org/zap"

// NewLogger builds the diagnostic logger. The table goes to stdout, so all
// warnings and errors are kept on stderr where they cannot corrupt output
// that is being piped or redirected.
func NewLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
