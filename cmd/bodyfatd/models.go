package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/pkg/types"
)

func newModelsCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the model artifacts found in the models directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			mgr, err := buildManager(cfg, loggerFor(cmd, cfg))
			if err != nil {
				return err
			}
			models := mgr.ListModels()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(types.ModelsResponse{Models: models})
			}
			byID := make(map[string]types.Model, len(models))
			for _, m := range models {
				byID[m.ID] = m
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VARIANT\tFEATURES\tFORMAT\tPATH")
			for _, v := range bodyfat.Variants {
				m, ok := byID[string(v)]
				if !ok {
					fmt.Fprintf(tw, "%s\t%d\t-\t(missing)\n", v, len(v.Schema()))
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", v, len(v.Schema()), m.Format, m.Path)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
