package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/cli/internal/output"
)

var (
	uuidCount int
	uuidSeed  string
)

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Generate UUIDs",
	Long: `Generate version 4 UUIDs.

Without --seed the UUIDs come from crypto/rand. With --seed they come
from the deterministic generator, so the same seed reproduces the same
sequence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUUID(cmd.OutOrStdout(), uuidCount, uuidSeed)
	},
}

func runUUID(w io.Writer, count int, seedStr string) error {
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	next := uuid.NewRandom
	if seedStr != "" {
		seed, err := rng.ParseSeed(seedStr)
		if err != nil {
			return err
		}
		g := rng.New(seed)
		next = func() (uuid.UUID, error) { return uuid.NewRandomFromReader(g) }
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := next()
		if err != nil {
			return err
		}
		ids = append(ids, id.String())
	}

	if jsonOutput {
		return output.JSON(w, ids)
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(uuidCmd)
	uuidCmd.Flags().IntVarP(&uuidCount, "count", "n", 1, "Number of UUIDs to generate")
	uuidCmd.Flags().StringVar(&uuidSeed, "seed", "", "Seed for reproducible UUIDs")
}
