package opviewcmd

import (
	"context"
	"fmt"
	"io"

	"go.brendoncarroll.net/stdctx/logctx"

	"go.opview.org/opview/pkg/maybe"
	"go.opview.org/opview/pkg/opview"
)

// runHazard reproduces the stale binding trap. A view holds its address
// into a container's payload, so it keeps reading the last value after
// the container disengages.
func runHazard(ctx context.Context, w io.Writer) error {
	m := maybe.Just(0)
	mv := opview.FromMaybe(&m)
	mv.Set(90)
	fmt.Fprintf(w, "container engaged = %v\n", m.Ok)

	m.Clear()
	fmt.Fprintf(w, "container engaged = %v\n", m.Ok)
	fmt.Fprintf(w, "view still ok = %v\n", mv.Ok())
	fmt.Fprintf(w, "view reads %d\n", mv.Get())

	logctx.Warnf(ctx, "hazard: view read %d from a disengaged container", mv.Get())
	return nil
}
