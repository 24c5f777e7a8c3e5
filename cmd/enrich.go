package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/acquireiq/enrich-cli/internal/export"
	"github.com/acquireiq/enrich-cli/internal/model"
	"github.com/acquireiq/enrich-cli/internal/source"
)

var (
	enrichSample  int
	enrichCSV     string
	enrichXLSX    string
	enrichDomains []string
	enrichLimit   int
	enrichOut     string
	enrichFormat  string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich, score, and deduplicate a batch of leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPipeline(cfg)
		if err != nil {
			return err
		}

		leads, err := acquireLeads(ctx, env)
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			return eris.New("no input leads: use --sample, --csv, --xlsx, or --domains")
		}

		result, runErr := env.Pipeline.Run(ctx, leads)
		printReport(cmd, result.Report)

		if enrichOut != "" && len(result.Leads) > 0 {
			if err := writeOutput(result.Leads); err != nil {
				return err
			}
			cmd.Printf("Exported %d leads to %s\n", len(result.Leads), enrichOut)
		}

		return runErr
	},
}

func init() {
	enrichCmd.Flags().IntVar(&enrichSample, "sample", 0, "generate N sample leads")
	enrichCmd.Flags().StringVar(&enrichCSV, "csv", "", "read leads from a CSV file")
	enrichCmd.Flags().StringVar(&enrichXLSX, "xlsx", "", "read leads from an XLSX file")
	enrichCmd.Flags().StringSliceVar(&enrichDomains, "domains", nil, "search company domains for leads")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 20, "max leads per domain search")
	enrichCmd.Flags().StringVar(&enrichOut, "out", "", "export file (.csv or .xlsx)")
	enrichCmd.Flags().StringVar(&enrichFormat, "format", "", "export format: salesforce, hubspot, pipedrive, generic")
	rootCmd.AddCommand(enrichCmd)
}

func acquireLeads(ctx context.Context, e *env) ([]model.RawLead, error) {
	var leads []model.RawLead

	if enrichSample > 0 {
		leads = append(leads, source.Sample(enrichSample)...)
	}

	if enrichCSV != "" {
		f, err := os.Open(enrichCSV)
		if err != nil {
			return nil, eris.Wrapf(err, "open %s", enrichCSV)
		}
		defer f.Close()

		parsed, err := source.FromCSV(f)
		if err != nil {
			return nil, err
		}
		leads = append(leads, parsed...)
	}

	if enrichXLSX != "" {
		parsed, err := source.FromXLSX(enrichXLSX)
		if err != nil {
			return nil, err
		}
		leads = append(leads, parsed...)
	}

	if len(enrichDomains) > 0 {
		found, err := source.FromDomains(ctx, e.Hunter, enrichDomains, enrichLimit)
		if err != nil {
			return nil, err
		}
		leads = append(leads, found...)
	}

	return leads, nil
}

func writeOutput(leads []model.ScoredLead) error {
	formatName := enrichFormat
	if formatName == "" {
		formatName = cfg.Export.Format
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(enrichOut), ".xlsx") {
		return export.WriteXLSX(enrichOut, format, leads)
	}

	f, err := os.Create(enrichOut)
	if err != nil {
		return eris.Wrapf(err, "create %s", enrichOut)
	}
	defer f.Close()
	return export.WriteCSV(f, format, leads)
}

func printReport(cmd *cobra.Command, r model.Report) {
	cmd.Println("Enrichment report")
	cmd.Printf("  leads in:            %d\n", r.TotalLeads)
	cmd.Printf("  enriched:            %d\n", r.Enriched)
	cmd.Printf("  duplicates removed:  %d\n", r.DuplicatesRemoved)
	cmd.Printf("  verified emails:     %d\n", r.VerifiedEmails)
	cmd.Printf("  invalid emails:      %d\n", r.InvalidEmails)
	cmd.Printf("  bands (H/M/L):       %d/%d/%d\n", r.HighBand, r.MediumBand, r.LowBand)
	cmd.Printf("  avg quality score:   %.1f\n", r.AvgQualityScore)
	cmd.Printf("  duration:            %s\n", r.Duration.Round(time.Millisecond))
}
