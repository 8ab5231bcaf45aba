package opviewcmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/exp/slices"

	"go.opview.org/opview/pkg/opview"
)

// A scenario is one self-contained walkthrough, written to w.
type scenario struct {
	Name  string
	Short string
	Run   func(ctx context.Context, w io.Writer) error
}

var scenarios = []scenario{
	{Name: "alias", Short: "bind a view to a variable and write through it", Run: runAlias},
	{Name: "absent", Short: "observe views which are not bound to anything", Run: runAbsent},
	{Name: "container", Short: "bind views to a container's payload", Run: runContainer},
	{Name: "unique", Short: "move a unique view and release what it owns", Run: runUnique},
	{Name: "hazard", Short: "read through a view after its container disengages", Run: runHazard},
}

func scenarioNames() []string {
	return slices2.Map(scenarios, func(sc scenario) string { return sc.Name })
}

// RunScenario executes the named scenario, writing its transcript to w.
func RunScenario(ctx context.Context, name string, w io.Writer) error {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc.Run(ctx, w)
		}
	}
	return errors.Errorf("no scenario named %q", name)
}

func newScenarioCmd(sc scenario) *cobra.Command {
	return &cobra.Command{
		Use:   sc.Name,
		Short: sc.Short,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := sc.Run(ctx, w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list prints the name of every scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, sc := range scenarios {
				fmt.Fprintf(w, "%s\t%s\n", sc.Name, sc.Short)
			}
			return w.Flush()
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [scenario...]",
		Short: "run executes the named scenarios, or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := scenarioNames()
			for _, arg := range args {
				if !slices.Contains(names, arg) {
					return errors.Errorf("no scenario named %q", arg)
				}
			}
			if len(args) == 0 {
				args = names
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, sc := range scenarios {
				if !slices.Contains(args, sc.Name) {
					continue
				}
				logctx.Infof(ctx, "running scenario %q", sc.Name)
				fmt.Fprintf(w, "== %s ==\n", sc.Name)
				if err := sc.Run(ctx, w); err != nil {
					return errors.Wrap(err, sc.Name)
				}
			}
			return w.Flush()
		},
	}
}

// show prints the value behind v, or "empty" when v is unbound.
// Taking a ReadView keeps the printer from writing through the binding.
func show(w io.Writer, v opview.ReadView[int]) {
	if v.Ok() {
		fmt.Fprintln(w, v.Get())
	} else {
		fmt.Fprintln(w, "empty")
	}
}
