package main

import (
	"complaintbox/backend/internal/complaint"
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/models"
	"complaintbox/backend/internal/preferences"
	"complaintbox/backend/internal/storage"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const usage = `Usage: admin <command> [args]

Commands:
  list [status]             list complaints, optionally filtered by status
  set-status <id> <status>  change the status of a complaint
  seed                      restore the example complaints
  theme [toggle]            show or toggle the stored theme`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if cfg.Debug {
		logger, _ = zap.NewDevelopment()
	}

	ctx := context.Background()
	kv, closeKV, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer closeKV()

	if err := run(ctx, os.Stdout, kv, logger, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeKV()
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, kv storage.KeyValue, logger *zap.Logger, args []string) error {
	store := storage.NewComplaintStore(kv, logger)
	service := complaint.NewService(store, logger)

	switch args[0] {
	case "list":
		filter := strings.Join(args[1:], " ")
		complaints, err := service.ListByStatus(ctx, filter)
		if err != nil {
			return fmt.Errorf("list complaints: %w", err)
		}
		printComplaints(out, complaints)

	case "set-status":
		if len(args) < 3 {
			return fmt.Errorf("usage: admin set-status <id> <status>")
		}
		id := args[1]
		status := models.Status(strings.Join(args[2:], " "))
		if !containsID(service.List(ctx), id) {
			return fmt.Errorf("no complaint with id %s", id)
		}
		if _, err := service.UpdateStatus(ctx, id, status); err != nil {
			return fmt.Errorf("update %s: %w", id, err)
		}
		fmt.Fprintf(out, "Complaint %s is now %s.\n", id, status)

	case "seed":
		if err := store.Save(ctx, storage.SeedComplaints()); err != nil {
			return fmt.Errorf("seed complaints: %w", err)
		}
		fmt.Fprintln(out, "Example complaints restored.")

	case "theme":
		themes := preferences.NewThemeStore(kv, logger)
		if len(args) > 1 && args[1] == "toggle" {
			fmt.Fprintln(out, themes.Toggle(ctx))
			return nil
		}
		fmt.Fprintln(out, themes.Get(ctx))

	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[0], usage)
	}
	return nil
}

func printComplaints(out io.Writer, complaints []models.Complaint) {
	if len(complaints) == 0 {
		fmt.Fprintln(out, "No complaints.")
		return
	}
	for _, c := range complaints {
		who := "named"
		if c.Anonymous {
			who = "anonymous"
		}
		fmt.Fprintf(out, "%s\t%s\t%-11s\t%-14s\t%s\t%s\n", c.ID, c.Date, c.Status, c.Category, who, c.Description)
	}
}

func containsID(complaints []models.Complaint, id string) bool {
	for _, c := range complaints {
		if c.ID == id {
			return true
		}
	}
	return false
}
