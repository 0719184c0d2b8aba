package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/internal/manager"
)

type predictFlags struct {
	sex              string
	age              int
	weight, height   float64
	abdomen          float64
	neck, hip, wrist float64
	export, asJSON   bool
}

func newPredictCmd(opts *options) *cobra.Command {
	pf := &predictFlags{}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate body fat for one set of measurements",
		Example: "  bodyfatd predict --sex M --age 40 --weight 80 --height 180 --abdomen 100\n" +
			"  bodyfatd predict --sex F --age 35 --weight 62 --height 168 --abdomen 78 --neck 32 --hip 96 --wrist 15 --export",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			mgr, err := buildManager(cfg, loggerFor(cmd, cfg))
			if err != nil {
				return err
			}
			sex, err := bodyfat.ParseSex(pf.sex)
			if err != nil {
				return err
			}
			meas := bodyfat.Measurements{
				Sex:       sex,
				Age:       pf.age,
				WeightKg:  pf.weight,
				HeightCm:  pf.height,
				AbdomenCm: pf.abdomen,
				Neck:      bodyfat.FromSentinel(pf.neck),
				Hip:       bodyfat.FromSentinel(pf.hip),
				Wrist:     bodyfat.FromSentinel(pf.wrist),
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ev, err := mgr.EvaluateMeasurements(ctx, meas)
			if err != nil {
				return err
			}
			if pf.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ev.Response())
			}
			return writeReport(cmd.OutOrStdout(), ev, pf.export)
		},
	}
	f := cmd.Flags()
	f.StringVar(&pf.sex, "sex", "M", "Sex: M or F")
	f.IntVar(&pf.age, "age", 40, "Age in years (15-150)")
	f.Float64Var(&pf.weight, "weight", 80, "Weight in kg")
	f.Float64Var(&pf.height, "height", 180, "Height in cm")
	f.Float64Var(&pf.abdomen, "abdomen", 100, "Abdomen circumference in cm")
	f.Float64Var(&pf.neck, "neck", 0, "Neck circumference in cm (0 = not measured)")
	f.Float64Var(&pf.hip, "hip", 0, "Hip circumference in cm (0 = not measured)")
	f.Float64Var(&pf.wrist, "wrist", 0, "Wrist circumference in cm (0 = not measured)")
	f.BoolVar(&pf.export, "export", false, "Also print the CSV export row")
	f.BoolVar(&pf.asJSON, "json", false, "Print the result as JSON")
	return cmd
}

// writeReport prints the human-readable summary of an evaluation.
func writeReport(w io.Writer, ev manager.Evaluation, export bool) error {
	r := ev.Result
	fmt.Fprintf(w, "Estimated Body Fat: %.1f%%\n", r.BodyFatPercent)
	fmt.Fprintf(w, "Model used: %s\n", strings.ToUpper(r.Variant.ArtifactName()))
	fmt.Fprintf(w, "BMI: %.2f\n", r.BMI)
	fmt.Fprintf(w, "Lean mass: %.2f kg\n", r.LeanMassKg)
	fmt.Fprintf(w, "FFMI: %.2f\n", r.FFMI)
	fmt.Fprintf(w, "Assessment: %s\n", ev.Category)
	fmt.Fprintf(w, "  %s\n", ev.Category.Advice())
	if !export {
		return nil
	}
	b, err := ev.Export.CSV()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	_, err = w.Write(b)
	return err
}
