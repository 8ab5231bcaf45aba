package opviewcmd

import (
	"context"
	"fmt"
	"io"

	"go.brendoncarroll.net/stdctx/logctx"

	"go.opview.org/opview/pkg/opview"
)

// runAbsent shows the ways a view can end up bound to nothing, and what
// each accessor reports in that state.
func runAbsent(ctx context.Context, w io.Writer) error {
	show(w, opview.ReadNone[int]())

	var zero opview.View[int]
	show(w, zero.ReadOnly())

	v := opview.From[int](nil)
	fmt.Fprintf(w, "ok = %v\n", v.Ok())
	fmt.Fprintf(w, "ptr = %v\n", v.Ptr())

	logctx.Infoln(ctx, "absent: every view reported empty")
	return nil
}
