// logging.go - Structured logging via op/go-logging
//
// Every host-visible log line is tagged with a source ("app" for
// forwarded guest messages, "runtime" for host-internal HostErrors) and
// a level, rather than a plain fmt.Println — this module ships to end
// users, where an unstructured stream isn't enough to separate guest
// noise from host faults at triage time.

package main

import (
	"os"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("console")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} ▶ %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	logging.SetBackend(formatted)
}

// LoggingDevice wraps LogDebug/LogError with op/go-logging, tagging
// every line with its source module: forwarded guest messages ("app")
// and host-internal HostErrors ("runtime").
type LoggingDevice struct{}

func (LoggingDevice) LogDebug(source, msg string) {
	log.Debugf("[%s] %s", source, msg)
}

func (LoggingDevice) LogError(source, msg string) {
	log.Errorf("[%s] %s", source, msg)
}
