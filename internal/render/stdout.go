package render

import (
	"fmt"
	"io"
	"sync"

	"gitwrap/internal/events"
)

// StdoutRenderer streams events to a plain text writer.
type StdoutRenderer struct {
	w       io.Writer
	errW    io.Writer
	mu      sync.Mutex
	verbose bool
	quiet   bool
}

// NewStdoutRenderer creates a renderer writing workdirs to w and failures to errW.
func NewStdoutRenderer(w io.Writer, errW io.Writer, verbose bool, quiet bool) *StdoutRenderer {
	return &StdoutRenderer{w: w, errW: errW, verbose: verbose, quiet: quiet}
}

func (r *StdoutRenderer) Emit(event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch event.Type {
	case events.RunStarted:
		if payload, ok := event.Payload.(events.RunStartedPayload); ok {
			if r.quiet || !r.verbose {
				return
			}
			fmt.Fprintf(r.errW, "gitroot v%s | run: %s | paths: %d\n", payload.Version, payload.RunID, len(payload.Paths))
		}
	case events.RootResolved:
		if payload, ok := event.Payload.(events.RootResolvedPayload); ok {
			if r.verbose {
				note := ""
				if payload.Fallback {
					note = " (fallback)"
				}
				fmt.Fprintf(r.w, "%s -> %s%s\n", payload.Path, payload.Workdir, note)
				return
			}
			fmt.Fprintln(r.w, payload.Workdir)
		}
	case events.RootFailed:
		if payload, ok := event.Payload.(events.RootFailedPayload); ok {
			if r.quiet {
				return
			}
			fmt.Fprintf(r.errW, "gitroot: %s\n", payload.Message)
		}
	case events.RunFinished:
		if payload, ok := event.Payload.(events.RunFinishedPayload); ok {
			if r.quiet || !r.verbose {
				return
			}
			fmt.Fprintf(r.errW, "%s: %d resolved, %d failed\n", payload.Status, payload.Resolved, payload.Failed)
		}
	}
}

func (r *StdoutRenderer) Close() error {
	return nil
}
