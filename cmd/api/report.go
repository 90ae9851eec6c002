package main

import (
	"fmt"
	"io"
	"os"

	"student-pet-records/internal/domain/reports"

	"github.com/spf13/cobra"
)

func newReportCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reportes sobre los alumnos",
	}
	cmd.AddCommand(newReportAgesCmd(root), newReportExportCmd(root))
	return cmd
}

func newReportAgesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ages",
		Short: "Alumnos por franja de edad y total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			counts, err := a.Services.Reports.CountByAgeBracket(cmd.Context())
			if err != nil {
				return err
			}
			total, err := a.Services.Reports.TotalCount(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range reports.Brackets() {
				fmt.Fprintf(out, "%-6s %d\n", b, counts[b])
			}
			fmt.Fprintf(out, "%-6s %d\n", "total", total)
			return nil
		},
	}
}

func newReportExportCmd(root *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta los alumnos a CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			a, err := root.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "-" {
				f, ferr := os.Create(outPath)
				if ferr != nil {
					return fmt.Errorf("create %s: %w", outPath, ferr)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = cerr
					}
				}()
				w = f
			}

			n, err := a.Services.Reports.ExportCSV(cmd.Context(), w)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no students to export")
			} else if outPath != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d students exported to %s\n", n, outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "students.csv", `archivo destino ("-" = stdout)`)
	return cmd
}
