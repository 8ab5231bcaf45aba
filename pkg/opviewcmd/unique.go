package opviewcmd

import (
	"context"
	"fmt"
	"io"

	"go.brendoncarroll.net/stdctx/logctx"

	"go.opview.org/opview/pkg/opview"
)

// runUnique materializes a value into a UniqueView, moves the binding,
// and releases it. It then shows that closing a borrowed binding leaves
// the borrowed variable alone.
func runUnique(ctx context.Context, w io.Writer) error {
	uq := opview.UniqueOf(5)
	fmt.Fprintf(w, "materialized %d\n", uq.Get())

	moved := uq.Move()
	fmt.Fprintf(w, "after move: ok = %v\n", uq.Ok())
	fmt.Fprintf(w, "moved holds %d\n", moved.Get())
	if err := moved.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "after close: ok = %v\n", moved.Ok())

	y := 7
	alias := opview.UniqueFrom(&y)
	alias.Set(8)
	if err := alias.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "y = %d\n", y)

	logctx.Infoln(ctx, "unique: move and close completed")
	return nil
}
