package logger

import "go.uber.org/zap"

// New builds the process logger. Diagnostics go to stderr so they never
// interleave with prompts and receipts on stdout.
func New() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}
