package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adammck/biped/gait"
	"github.com/adammck/biped/params"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

var (
	paramsPath string
	debug      bool
)

func main() {
	root := &cobra.Command{
		Use:           "biped",
		Short:         "Generate and stream biped walking joint angles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&paramsPath, "params", "", "YAML file of gait parameters (default: reference gait)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log every frame")

	root.AddCommand(walkCmd(), dumpCmd(), paramsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// coordinator loads the parameters and builds a coordinator from them.
func coordinator() (*gait.Coordinator, error) {
	p, err := params.Load(paramsPath)
	if err != nil {
		return nil, err
	}

	return gait.New(gait.ConfigFrom(p))
}

func paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the resolved gait parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params.Load(paramsPath)
			if err != nil {
				return err
			}

			b, err := p.YAML()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
