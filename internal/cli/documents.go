package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmlgraph/nmlgraph/pkg/cache"
	"github.com/nmlgraph/nmlgraph/pkg/store"
)

// storeOpts holds the backend selection flags shared by the documents
// subcommands.
type storeOpts struct {
	mongoURI string
	database string
}

// documentsCommand creates the documents command group for persisting and
// retrieving serialized topology snapshots.
func (c *CLI) documentsCommand() *cobra.Command {
	opts := storeOpts{database: appName}

	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Manage stored topology documents",
	}
	cmd.PersistentFlags().StringVar(&opts.mongoURI, "mongo", "", "mongodb URI (defaults to the local file store)")
	cmd.PersistentFlags().StringVar(&opts.database, "database", opts.database, "mongodb database name")

	cmd.AddCommand(c.documentsPushCommand(&opts))
	cmd.AddCommand(c.documentsGetCommand(&opts))
	cmd.AddCommand(c.documentsListCommand(&opts))
	return cmd
}

// openStore selects the document store backend: MongoDB when a URI is
// given, the XDG data-dir file store otherwise.
func openStore(ctx context.Context, opts *storeOpts) (store.Store, error) {
	if opts.mongoURI != "" {
		return store.NewMongoStore(ctx, opts.mongoURI, opts.database, "documents")
	}
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return store.NewFileStore(dir)
}

// documentsPushCommand creates the "documents push" subcommand.
func (c *CLI) documentsPushCommand(opts *storeOpts) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "push [manifest]",
		Short: "Build a manifest and store its XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			m, err := buildFromManifest(args[0])
			if err != nil {
				return err
			}

			s, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			doc := store.Document{
				Name:      name,
				XML:       m.Document().String(),
				Entities:  m.Namespace().Len(),
				CreatedAt: time.Now().UTC(),
			}
			// Mongo pushes can hit transient network failures; retry those.
			err = cache.RetryWithBackoff(ctx, func() error {
				return s.Save(ctx, doc)
			})
			if err != nil {
				return fmt.Errorf("save document: %w", err)
			}
			printSuccess("Stored %s (%d entities)", doc.Name, doc.Entities)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "document name (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// documentsGetCommand creates the "documents get" subcommand.
func (c *CLI) documentsGetCommand(opts *storeOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get [name]",
		Short: "Print a stored document's XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			doc, err := s.Get(ctx, args[0])
			if err != nil {
				return err
			}

			w, err := openOutput(output)
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			defer w.Close()
			_, err = fmt.Fprintln(w, doc.XML)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")
	return cmd
}

// documentsListCommand creates the "documents list" subcommand.
func (c *CLI) documentsListCommand(opts *storeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openStore(ctx, opts)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			docs, err := s.List(ctx)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				printInfo("No stored documents")
				return nil
			}
			for _, doc := range docs {
				printKeyValue(doc.Name, fmt.Sprintf("%d entities, %s",
					doc.Entities, doc.CreatedAt.Format(time.RFC3339)))
			}
			return nil
		},
	}
}
