package commands

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/padraicbc/sherdogapi/cache"
	"github.com/padraicbc/sherdogapi/config"
	"github.com/padraicbc/sherdogapi/db"
)

func init() {
	cacheCmd.AddCommand(purgeCmd)
	cacheCmd.AddCommand(forgetCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manages the SQL scrape cache.",
}

func openCache(cmd *cobra.Command) (*cache.SQL, func(), error) {
	cfg := config.Load()
	if !cfg.UsesSQL() {
		return nil, nil, fmt.Errorf("CACHE_DRIVER=%s is not persistent", cfg.CacheDriver)
	}
	bdb, err := db.Setup(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewSQL(bdb), func() { _ = bdb.Close() }, nil
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Deletes expired cache entries.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, done, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer done()

		n, err := store.Purge(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired entries\n", n)
		return nil
	},
}

var objectTypes = []string{"promotion", "event", "fighter"}

// forgetKeys turns "<type> <id>..." arguments into cache keys.
func forgetKeys(args []string) ([]string, error) {
	if !slices.Contains(objectTypes, args[0]) {
		return nil, fmt.Errorf("unknown object type %q", args[0])
	}
	keys := make([]string, 0, len(args)-1)
	for _, raw := range args[1:] {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid id %q", raw)
		}
		keys = append(keys, cache.Key(args[0], id))
	}
	return keys, nil
}

var forgetCmd = &cobra.Command{
	Use:       "forget <promotion|event|fighter> <id>...",
	Short:     "Deletes cached records so the next request scrapes them again.",
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: objectTypes,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := forgetKeys(args)
		if err != nil {
			return err
		}

		store, done, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer done()

		n, err := store.Delete(cmd.Context(), keys...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "forgot %d of %d entries\n", n, len(keys))
		return nil
	},
}
