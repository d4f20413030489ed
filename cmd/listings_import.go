package cmd

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/output"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds how many files are parsed at once.
const maxConcurrentReads = 4

var importGenerateIDs bool

var listingsImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import listings from JSON or YAML files",
	Long: `Read listings from one or more JSON or YAML files and upsert them into the
local database. A file holds either a bare array of listings or an object with
the listings under "data" (the shape of a listings page).

All records are validated before anything is written; a single invalid record
aborts the whole import.

Examples:
  plaza listings import listings.json
  plaza listings import austin.yaml denver.yaml --generate-ids`,
	Args: cobra.MinimumNArgs(1),
	RunE: runListingsImport,
}

func init() {
	listingsCmd.AddCommand(listingsImportCmd)

	listingsImportCmd.Flags().BoolVar(&importGenerateIDs, "generate-ids", false, "Assign a random id to listings that have none")
}

// readListingFiles parses every file concurrently, keeping argument order.
func readListingFiles(paths []string, progress func(done, total int)) ([][]listing.Record, error) {
	results := make([][]listing.Record, len(paths))

	var (
		g    errgroup.Group
		mu   sync.Mutex
		done int
	)

	g.SetLimit(maxConcurrentReads)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			records, err := listing.ReadFile(path)
			if err != nil {
				return err
			}

			logger.Log.Debugf("Read %d listings from %s", len(records), path)
			results[i] = records

			mu.Lock()
			done++
			if progress != nil {
				progress(done, len(paths))
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// assignIDs gives every record without an id a new UUID and returns how many
// were assigned.
func assignIDs(records []listing.Record) int {
	n := 0

	for i := range records {
		if strings.TrimSpace(records[i].ID) == "" {
			records[i].ID = uuid.NewString()
			n++
		}
	}

	return n
}

func runListingsImport(cmd *cobra.Command, args []string) error {
	spin := output.NewSpinner(fmt.Sprintf("Reading %d file(s)", len(args)))
	spin.Start()

	batches, err := readListingFiles(args, func(done, total int) {
		spin.Update(fmt.Sprintf("Read %d/%d file(s)", done, total))
	})
	if err != nil {
		spin.Fail("Failed to read listings")
		return err
	}

	var records []listing.Record
	for _, batch := range batches {
		records = append(records, batch...)
	}

	if importGenerateIDs {
		if n := assignIDs(records); n > 0 {
			logger.Log.Infof("Generated ids for %d listing(s)", n)
		}
	}

	s, err := openStore()
	if err != nil {
		spin.Fail("Failed to open database")
		return err
	}
	defer func() { _ = s.Close() }()

	spin.Update(fmt.Sprintf("Saving %d listing(s)", len(records)))

	n, err := s.Upsert(commandContext(cmd), records)
	if err != nil {
		spin.Fail("Import failed")
		return err
	}

	spin.Success(fmt.Sprintf("Imported %d listing(s) into %s", n, s.Path()))

	total, err := s.Count(commandContext(cmd))
	if err == nil {
		pterm.Info.Printfln("The database now holds %d listing(s)", total)
	}

	return nil
}
