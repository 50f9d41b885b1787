package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aristath/folio/internal/modules/reference"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the stored reference data with a JSON dataset" }
func (*importCmd) Usage() string {
	return `folioctl [-db <path>] import -file <dataset.json>

  Validates the dataset and replaces every reference table, price and
  holding in a single transaction. Nothing is written if validation fails.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Dataset file (JSON). Reads stdin when empty or '-'.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.file != "" && c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		defer file.Close()
		in = file
	}

	ds, err := reference.DecodeDataset(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	repo := reference.NewRepository(db.Conn(), newLogger())
	if err := repo.Import(ctx, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Imported %d instruments, %d prices and %d holdings into %s\n",
		len(ds.Instruments), len(ds.Prices), len(ds.Holdings), db.Path())
	return subcommands.ExitSuccess
}
