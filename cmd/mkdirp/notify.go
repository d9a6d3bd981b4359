package main

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp/core"
)

// subscribePrinter prints creation and permission notifications to w, one
// line per event, in the order the creator publishes them.
func subscribePrinter(bus core.EventBus, w io.Writer) {
	bus.Subscribe(core.EventDirectoryCreated, core.EventHandlerFunc(func(ctx context.Context, e core.Event) error {
		payload, ok := e.Data().(core.DirectoryCreatedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", e.Data(), e.Type())
		}
		_, err := fmt.Fprintf(w, "Created directory: %s\n", payload.Path)
		return err
	}))

	bus.Subscribe(core.EventModeChanged, core.EventHandlerFunc(func(ctx context.Context, e core.Event) error {
		payload, ok := e.Data().(core.ModeChangedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", e.Data(), e.Type())
		}
		_, err := fmt.Fprintf(w, "Changed permission of %s to %s\n", payload.Path, payload.Mode.Octal())
		return err
	}))
}
