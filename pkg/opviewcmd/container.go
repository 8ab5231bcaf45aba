package opviewcmd

import (
	"context"
	"fmt"
	"io"

	"go.brendoncarroll.net/stdctx/logctx"

	"go.opview.org/opview/pkg/maybe"
	"go.opview.org/opview/pkg/opview"
)

// runContainer binds views to a maybe.Maybe payload. Reads observe later
// writes to the container, and a mutable view writes back into it.
func runContainer(ctx context.Context, w io.Writer) error {
	m := maybe.Just(20)
	rv := opview.ReadFromMaybe(&m)
	show(w, rv)

	m.Set(25)
	show(w, rv)

	mv := opview.FromMaybe(&m)
	mv.Set(30)
	fmt.Fprintf(w, "container holds %d\n", m.X)

	logctx.Infof(ctx, "container: payload ended at %d", m.X)
	return nil
}
