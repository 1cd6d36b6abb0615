// Package app wires the skipset demonstration commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/metailurini/skipset/cmd/skipset-demo/app/options"
)

const commandDesc = `exercise the skipset container: ordered insert, find,
erase, indexed access, clone and swap`

func New(basename string) *cobra.Command {
	opts := options.New()
	cmd := &cobra.Command{
		Use:           basename,
		Long:          commandDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := opts.Complete(); err != nil {
				return err
			}
			if errs := opts.Validate(); len(errs) > 0 {
				return errs[0]
			}
			return nil
		},
	}
	opts.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(newWalkthroughCommand(opts))
	cmd.AddCommand(newFillCommand(opts))
	return cmd
}
