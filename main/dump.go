package main

import (
	"github.com/spf13/cobra"

	"github.com/adammck/biped/link"
)

func dumpCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the first frames of the gait, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := coordinator()
			if err != nil {
				return err
			}

			enc := link.NewEncoder(cmd.OutOrStdout())
			for i := 0; i < n; i++ {
				a, err := c.Tick()
				if err != nil {
					return err
				}

				err = enc.Encode(c.Now(), a)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "frames", "n", 2000, "number of frames to print")
	return cmd
}
