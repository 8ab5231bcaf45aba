package opviewcmd

import (
	"context"
	"fmt"
	"io"

	"go.brendoncarroll.net/stdctx/logctx"

	"go.opview.org/opview/pkg/opview"
)

// runAlias binds a View to a local variable and shows writes traveling
// in both directions through the binding.
func runAlias(ctx context.Context, w io.Writer) error {
	x := 10
	vx := opview.From(&x)
	show(w, vx.ReadOnly())

	x = 40
	show(w, vx.ReadOnly())

	vx.Set(50)
	show(w, vx.ReadOnly())
	fmt.Fprintf(w, "x = %d\n", x)

	logctx.Infof(ctx, "alias: x ended at %d", x)
	return nil
}
