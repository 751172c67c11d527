package main

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/spf13/cobra"

	"github.com/diegoclair/meeting-alarm-bot/internal/app"
	"github.com/diegoclair/meeting-alarm-bot/internal/config"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
	"github.com/diegoclair/meeting-alarm-bot/internal/logger"
	"github.com/diegoclair/meeting-alarm-bot/internal/persistence"
)

var humanOutput bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the stored schedules from the configured storage",
	Long: `Reads the schedule snapshot through STORAGE_DRIVER and prints it.

Outputs the JSON document by default. Use --human for one line per entry.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.ValidateStorage(); err != nil {
			return err
		}

		log, err := logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		storage, closeStorage, err := app.OpenStorage(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStorage()

		snap, err := persistence.NewSnapshotter(storage, log).Load(cmd.Context())
		if err != nil {
			return err
		}

		if humanOutput {
			printHuman(cmd, snap)
			return nil
		}

		data, err := persistence.Encode(snap)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return err
		}
		cmd.Println(out.String())
		return nil
	},
}

func printHuman(cmd *cobra.Command, snap *entity.Snapshot) {
	var keys []entity.BucketKey
	snap.Each(func(key entity.BucketKey, _ *entity.Bucket) { keys = append(keys, key) })
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	if len(keys) == 0 {
		cmd.Println("no schedules stored")
		return
	}

	for _, key := range keys {
		b, _ := snap.Lookup(key)
		cmd.Printf("%s (%s)\n", key, domain.FormatOffset(b.Offset()))
		for i, e := range b.Entries {
			cmd.Printf("  [%d] %s -> %s\n", i, e.Time(), e.DestinationID)
		}
	}
	cmd.Printf("%d entries\n", snap.Len())
}

func init() {
	snapshotCmd.Flags().BoolVar(&humanOutput, "human", false, "human-readable output")
	rootCmd.AddCommand(snapshotCmd)
}
