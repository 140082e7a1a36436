package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
	"github.com/matzehuels/checkcrates/pkg/integrations/crates"
	"github.com/matzehuels/checkcrates/pkg/render/table"
)

// searchArgs accepts exactly one non-empty search term. On rejection it
// prints usage to stderr before returning the error.
func searchArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		printUsage(cmd)
		return apperrors.New(apperrors.ErrCodeInvalidInput, "expected exactly one <NAME> argument, got %d", len(args))
	}
	if err := apperrors.ValidateSearchTerm(args[0]); err != nil {
		printUsage(cmd)
		return err
	}
	return nil
}

// printUsage writes usage to stderr. cmd.Usage would follow SetOut.
func printUsage(cmd *cobra.Command) {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
}

func (c *CLI) runSearch(cmd *cobra.Command, args []string) error {
	if err := apperrors.ValidateURL(c.registryURL); err != nil {
		return err
	}

	ctx := withLogger(cmd.Context(), c.Logger)
	client := crates.NewClient(c.registryURL, c.Config.UserAgent)

	found, err := search(ctx, client, args[0])
	if err != nil {
		return err
	}

	return table.Write(cmd.OutOrStdout(), found, table.ComputeWidths(found))
}

// search fetches and decodes the matches for query. Nothing is printed to
// stdout here; a failure at any step leaves the output empty.
func search(ctx context.Context, client *crates.Client, query string) ([]crates.Crate, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	logger.Debug("Searching registry", "url", client.SearchURL(query))
	text, err := client.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	logger.Debug("Received response", "bytes", len(text))

	found, err := crates.Decode(text)
	if err != nil {
		return nil, err
	}

	for _, c := range found {
		logger.Debug("Match", "purl", c.PURL(), "updated_at", c.UpdatedAt)
	}
	prog.done(pluralCrates(len(found)))
	return found, nil
}

func pluralCrates(n int) string {
	if n == 1 {
		return "Found 1 crate"
	}
	return fmt.Sprintf("Found %d crates", n)
}
