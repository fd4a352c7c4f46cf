// sakhi-audit validates a sites dataset from the command line and can
// publish a clean dataset to Redis for the API server to load.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	dbRedis "github.com/studentGarv/hoshiarpur-sakhi/internal/db/redis"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/repository/sitestore"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/version"
)

var (
	// Global flags
	format     string
	strict     bool
	facilities []string

	// publish flags
	redisAddrs    []string
	redisUsername string
	redisPassword string
	keyPrefix     string
)

var rootCmd = &cobra.Command{
	Use:   "sakhi-audit",
	Short: "Validate and publish religious-site datasets",
	Long: `sakhi-audit checks a sites dataset against the record rules the API
server applies on load: required fields, coordinate bounds, timing
formats, contact details, and the facility vocabulary.

Exit status is 0 for a valid dataset and 1 otherwise, so it slots into
CI pipelines that gate dataset changes.`,
	SilenceUsage: true,
	Version:      version.Version,
}

var validateCmd = &cobra.Command{
	Use:   "validate [dataset.json]",
	Short: "Validate a dataset file and print the report",
	Long: `Validates every record in the file and prints a report. Records with
errors make the dataset invalid; warnings and advisories are listed but
do not fail the run unless --strict is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var publishCmd = &cobra.Command{
	Use:   "publish [dataset.json]",
	Short: "Publish a dataset file to Redis",
	Long: `Validates the file and writes it to Redis under the configured key
prefix, together with a metadata record (publish time, record count,
checksum). Structurally broken datasets are rejected; record-level
problems are reported but published, matching what a file-based server
would load.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "Report format: text or json")
	rootCmd.PersistentFlags().StringSliceVar(&facilities, "facility", nil, "Add to the recognized facility vocabulary (repeatable)")

	validateCmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings and advisories too")

	publishCmd.Flags().StringSliceVar(&redisAddrs, "redis-addr", []string{"localhost:6379"}, "Redis address (repeatable)")
	publishCmd.Flags().StringVar(&redisUsername, "redis-username", "", "Redis username")
	publishCmd.Flags().StringVar(&redisPassword, "redis-password", "", "Redis password")
	publishCmd.Flags().StringVar(&keyPrefix, "key-prefix", "sakhi", "Key prefix for dataset keys")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(publishCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildValidator() *validation.Validator {
	v := validation.New()
	if len(facilities) > 0 {
		v = v.WithKnownFacilities(append(validation.DefaultFacilities(), facilities...))
	}
	return v
}

func runValidate(cmd *cobra.Command, args []string) error {
	ds, err := sitestore.NewFile(args[0], buildValidator()).Load(cmd.Context())
	if err != nil {
		return err
	}

	if err := printReport(ds.Report); err != nil {
		return err
	}

	if !ds.Report.Valid {
		return fmt.Errorf("dataset invalid: %d of %d records failed validation",
			len(ds.Report.Invalid), ds.Report.Summary.TotalSites)
	}
	if strict && len(ds.Report.Flagged) > 0 {
		return fmt.Errorf("strict mode: %d records carry warnings", len(ds.Report.Flagged))
	}
	return nil
}

func runPublish(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    redisAddrs,
		Username: redisUsername,
		Password: redisPassword,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
		return err
	}

	pub := sitestore.NewRedis(store, keyPrefix, buildValidator())
	meta, err := pub.Publish(ctx, data)
	if err != nil {
		return err
	}

	fmt.Printf("Published %d sites under %q (checksum %s)\n",
		meta.Count, keyPrefix, meta.Checksum[:12])
	return nil
}

func printReport(report validation.DatasetReport) error {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	s := report.Summary
	fmt.Printf("Sites: %d (%d temples, %d gurdwaras)\n", s.TotalSites, s.Temples, s.Gurdwaras)
	fmt.Printf("With contact: %d, with images: %d\n", s.WithContact, s.WithImages)

	for _, iss := range report.Structural {
		fmt.Printf("STRUCTURE  %s\n", iss)
	}
	printEntries("INVALID", report.Invalid)
	printEntries("FLAGGED", report.Flagged)

	if report.Valid {
		fmt.Println("Dataset is valid")
	} else {
		fmt.Println("Dataset is INVALID")
	}
	return nil
}

func printEntries(label string, entries []validation.Entry) {
	for _, e := range entries {
		name := e.ID
		if name == "" {
			name = fmt.Sprintf("record %d", e.Index)
		}
		fmt.Printf("%s  %s (index %d)\n", label, name, e.Index)
		for _, iss := range e.Report.Errors {
			fmt.Printf("  error    [%s] %s\n", iss.Code, iss)
		}
		for _, iss := range e.Report.Warnings {
			fmt.Printf("  warning  [%s] %s\n", iss.Code, iss)
		}
		for _, iss := range e.Report.Advisories {
			fmt.Printf("  advisory [%s] %s\n", iss.Code, iss)
		}
	}
}
