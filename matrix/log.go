// SPDX-License-Identifier: MIT

package matrix

import "go.uber.org/zap"

var logger = zap.NewNop()

// Logger returns the package logger. It discards everything until SetLogger is called.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the package logger; nil restores the no-op logger.
// Not safe to call concurrently with running operations.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
