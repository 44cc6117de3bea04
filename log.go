package iec104

import (
	"github.com/sirupsen/logrus"
)

// _lg is the package logger. It stays quiet (warnings only) until the host
// application injects its own logger via SetLogger.
var _lg = func() *logrus.Logger {
	lg := logrus.New()
	lg.SetLevel(logrus.WarnLevel)
	return lg
}()

// SetLogger replaces the package logger. Passing nil is a no-op.
func SetLogger(lg *logrus.Logger) {
	if lg != nil {
		_lg = lg
	}
}
