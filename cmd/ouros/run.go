package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ouros/internal/config"
	"ouros/internal/resource"
	"ouros/internal/rtlog"
	"ouros/internal/snapshot"
)

// runCmd inspects a serialized session snapshot and reports its live heap
// entry count, the session timeout, and any pending exception. A full bytecode front end (parser, compiler,
// instruction dispatch loop) is out of this build's scope (spec.md's
// Non-goals exclude the surrounding VM); this command exercises the core
// subsystems this repository actually implements end-to-end against a
// real snapshot file, the way the teacher's `surge run` exercises its
// compiler pipeline against a real source file.
var runCmd = &cobra.Command{
	Use:   "run <snapshot-file>",
	Short: "Load a session snapshot and report its resident state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := rtlog.Default()

		policy := config.DefaultSessionPolicy()
		if cfgPath, _ := cmd.Root().PersistentFlags().GetString("config"); cfgPath != "" {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			policy = loaded
		} else if loaded, err := config.LoadFromDir("."); err == nil {
			policy = loaded
		}
		if mb, _ := cmd.Root().PersistentFlags().GetUint64("max-memory-mb"); mb > 0 {
			policy.MaxMemoryBytes = mb << 20
		}
		if ops, _ := cmd.Root().PersistentFlags().GetUint64("max-operations"); ops > 0 {
			policy.MaxOperations = ops
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading snapshot: %w", err)
		}

		tracker := resource.NewBudgetTracker(cmd.Context(), policy.MaxMemoryBytes, policy.MaxOperations, policy.MaxRecursionDepth)
		interns, heap, exc, err := snapshot.DecodeBytes(data, tracker)
		if err != nil {
			return fmt.Errorf("decoding snapshot: %w", err)
		}
		log.Infof("loaded snapshot: %s", args[0])

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "live heap entries: %d\n", heap.LiveCount())
		fmt.Fprintf(out, "session timeout: %s\n", policy.Timeout)
		if exc != nil {
			fmt.Fprintf(out, "pending exception: %s: %s\n", exc.Exc.ClassName(), exc.Exc.PyRepr())
			names := exc.FrameNames(interns)
			for _, n := range names {
				fmt.Fprintf(out, "  at %s\n", n)
			}
		} else {
			fmt.Fprintln(out, "pending exception: none")
		}
		return nil
	},
}
