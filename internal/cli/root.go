// Package cli implements cursorctl, a debugging tool for connection cursors
// and pagination arguments.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/nrfta/relay-paging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command for cursorctl. Each command tree
// owns its logger and flag state.
func NewRootCmd() *cobra.Command {
	var debug bool
	logger := logrus.New()

	root := &cobra.Command{
		Use:          "cursorctl",
		Short:        "Inspect Relay connection cursors and arguments",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(logger),
		newResolveCmd(logger),
	)

	return root
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <type> <id>",
		Short: "Encode an entity type and id into a cursor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), paging.EncodeCursor(args[0], args[1]))
			return nil
		},
	}
}

func newDecodeCmd(logger logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <cursor>",
		Short: "Decode the id carried by a cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := paging.DecodeCursor(args[0])
			if id == "" {
				logger.WithField("cursor", args[0]).Warn("cursor is malformed or carries an empty id")
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newResolveCmd(logger logrus.FieldLogger) *cobra.Command {
	var (
		first, last   int
		before, after string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve connection arguments into a query descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pa := &paging.PageArgs{}
			flags := cmd.Flags()
			if flags.Changed("first") {
				paging.WithFirst(pa, first)
			}
			if flags.Changed("last") {
				paging.WithLast(pa, last)
			}
			if flags.Changed("before") {
				paging.WithBefore(pa, before)
			}
			if flags.Changed("after") {
				paging.WithAfter(pa, after)
			}

			query, err := paging.ResolveArgs(*pa)
			if err != nil {
				return fmt.Errorf("resolve: %w", err)
			}

			logger.WithField("empty", query.IsEmpty()).Debug("resolved arguments")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(query)
		},
	}

	cmd.Flags().IntVar(&first, "first", 0, "Forward page size")
	cmd.Flags().IntVar(&last, "last", 0, "Backward page size")
	cmd.Flags().StringVar(&before, "before", "", "Backward cursor")
	cmd.Flags().StringVar(&after, "after", "", "Forward cursor")

	return cmd
}
