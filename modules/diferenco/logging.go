package diferenco

import "github.com/sirupsen/logrus"

// log is the package logger, logrus's standard logger, following
// modules/trace/error.go's logrus.Error(location, message) pattern. The
// library never configures log output itself (no init() side effects, no env
// var reads), so messages go wherever the caller's standard-logger
// configuration sends them; under logrus defaults the Warn messages for
// skipped hunks and merge conflicts reach stderr and the Debug messages for
// fuzzy matches are dropped.
var log = logrus.StandardLogger()
