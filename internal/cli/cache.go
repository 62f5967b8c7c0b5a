package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrCacheDisabled is returned by cache commands when redis.enabled is false.
var ErrCacheDisabled = errors.New("page cache is disabled (set redis.enabled)")

func (a *app) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the Redis page cache",
	}
	cmd.AddCommand(a.cachePurgeCommand())
	return cmd
}

func (a *app) cachePurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every cached page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := a.deps()
			if err != nil {
				return err
			}

			pc, err := a.openCache(cmd.Context(), deps.Config, nil, deps.Logger)
			if err != nil {
				return fmt.Errorf("connect page cache: %w", err)
			}
			if pc == nil {
				return ErrCacheDisabled
			}
			defer func() { _ = pc.Close() }()

			n, err := pc.Purge(cmd.Context())
			if err != nil {
				return fmt.Errorf("purge page cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %d cached pages\n", n)
			return nil
		},
	}
}
