package main

import (
	"encoding/json"
	"fmt"
	"os"

	"wordbank/internal/config"
	"wordbank/internal/domain"
	"wordbank/internal/repository"
	"wordbank/internal/repository/postgres"

	"github.com/spf13/cobra"
)

var exportUserID int64

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print a user's word bank and collection as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportUserID == 0 {
			return fmt.Errorf("--user is required")
		}

		dbCfg, err := config.LoadDatabase()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err := connectDatabase(dbCfg.DSN(), 5, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		slots, err := postgres.NewSlotRepo(db).ListSlots(cmd.Context(), exportUserID)
		if err != nil {
			return fmt.Errorf("list slots: %w", err)
		}

		out := exportDocument{
			UserID:      exportUserID,
			HasLaunched: slots[repository.SlotHasLaunched] != "",
			WordBank:    decodeSlot(slots[repository.SlotWordBank]),
			Collection:  decodeSlot(slots[repository.SlotCollection]),
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	exportCmd.Flags().Int64Var(&exportUserID, "user", 0, "Telegram user id to export")
}

type exportDocument struct {
	UserID      int64              `json:"user_id"`
	HasLaunched bool               `json:"has_launched"`
	WordBank    []domain.WordEntry `json:"word_bank"`
	Collection  []domain.WordEntry `json:"collection"`
}

// decodeSlot parses a stored list, treating missing or malformed values as empty
func decodeSlot(value string) []domain.WordEntry {
	entries := []domain.WordEntry{}
	if value == "" {
		return entries
	}
	if err := json.Unmarshal([]byte(value), &entries); err != nil || entries == nil {
		return []domain.WordEntry{}
	}
	return entries
}
