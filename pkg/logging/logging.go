// Package logging writes an audit trail of cartctl operations to a
// per-day file. Terminal output stays with pkg/ui; this log exists so a
// destructive run (env down, reset) leaves a record of what was removed.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	// Until Init runs (or if it fails), nothing is written anywhere.
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Init opens the audit log file under the user cache directory
// (e.g. ~/.cache/cartctl/cartctl-20260823.log). A failure to open it is
// non-fatal: the CLI keeps working, the audit trail is simply dropped.
func Init() error {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return fmt.Errorf("cannot resolve cache directory: %w", err)
	}

	dir := filepath.Join(cacheDir, "cartctl")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, "cartctl-"+time.Now().Format("20060102")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) // #nosec G304 -- path built from the user cache dir
	if err != nil {
		return fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	log.SetOutput(f)
	return nil
}

// SetOutput redirects the audit log, used by tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Component returns an entry tagged with the originating component.
func Component(name string) *logrus.Entry {
	return log.WithField("component", name)
}

// Stage records the start of a named operation stage.
func Stage(e *logrus.Entry, stage string) {
	e.WithField("stage", stage).Info("stage started")
}

// Completion records the successful end of a stage.
func Completion(e *logrus.Entry, stage string) {
	e.WithField("stage", stage).Info("stage completed")
}

// Failure records a stage failure without aborting the run.
func Failure(e *logrus.Entry, stage string, err error) {
	e.WithField("stage", stage).WithError(err).Error("stage failed")
}
