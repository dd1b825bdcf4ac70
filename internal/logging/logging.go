// Package logging configures the process-wide go-logging backend.
package logging

import (
	"fmt"
	"io"
	"strings"

	gologging "github.com/op/go-logging"
)

var format = gologging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)

// Setup sends every module logger to w, dropping records below level.
func Setup(w io.Writer, level string) error {
	lvl, err := gologging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	backend := gologging.NewBackendFormatter(gologging.NewLogBackend(w, "", 0), format)
	leveled := gologging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	gologging.SetBackend(leveled)
	return nil
}
