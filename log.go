package pollyskema

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	loggerMu      sync.RWMutex
	currentLogger log.FieldLogger = log.WithField("component", "pollyskema")
)

// SetLogger replaces the logger used for tolerated validation failures; nil
// restores the logrus standard logger.
func SetLogger(l log.FieldLogger) {
	if l == nil {
		l = log.WithField("component", "pollyskema")
	}
	loggerMu.Lock()
	currentLogger = l
	loggerMu.Unlock()
}

func logger() log.FieldLogger {
	loggerMu.RLock()
	l := currentLogger
	loggerMu.RUnlock()
	return l
}

func logTolerated(schema string, iss Issues) {
	details := make([]string, 0, len(iss))
	for _, it := range iss {
		details = append(details, it.String())
	}
	logger().WithFields(log.Fields{
		"schema":  schema,
		"count":   len(iss),
		"paths":   iss.Paths(),
		"details": details,
	}).WithError(iss).Error("got unexpected params in API response")
}
