package opviewcmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

var ctx = func() context.Context {
	ctx := context.Background()
	l, _ := zap.NewProduction()
	ctx = logctx.NewContext(ctx, l)
	return ctx
}()

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "opview",
		Short: "opview: walkthroughs for optional views over borrowed values",
	}
	for _, sc := range scenarios {
		c.AddCommand(newScenarioCmd(sc))
	}
	c.AddCommand(newRunCmd())
	c.AddCommand(newListCmd())
	return c
}
