// Terminal dashboard client: lists the derived job views and records status
// changes against the API, with the built-in offline dataset as fallback.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/ncjobshub/ncjobshub/internal/config"
	"github.com/ncjobshub/ncjobshub/internal/dashboard"
	"github.com/ncjobshub/ncjobshub/internal/models"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("[dashboard] .env loaded")
	}
	cfg := config.Load()

	var state *dashboard.State

	loadState := func(ctx context.Context, c *cli.Command) error {
		state = dashboard.NewState(dashboard.NewClient(c.String("api-url")))
		tab := dashboard.Tab(c.String("tab"))
		switch tab {
		case dashboard.TabDashboard, dashboard.TabSaved, dashboard.TabAlphabetical, dashboard.TabLogs:
			state.SetTab(tab)
		default:
			return fmt.Errorf("unknown tab %q", c.String("tab"))
		}
		if err := state.Load(ctx); err != nil {
			return err
		}
		if state.UsingFallback() {
			fmt.Println("! Using offline data — start the API server to sync updates.")
		}
		return nil
	}

	cmd := &cli.Command{
		Name:  "ncjobs",
		Usage: "NC Jobs Hub terminal dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "base URL of the NC Jobs Hub API",
				Value: cfg.APIBaseURL,
			},
			&cli.StringFlag{
				Name:  "tab",
				Usage: "view to derive: dashboard, saved, alphabetical, logs",
				Value: string(dashboard.TabDashboard),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "jobs",
				Usage: "list the visible jobs for the selected tab",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := loadState(ctx, c); err != nil {
						return err
					}
					for _, job := range state.VisibleJobs() {
						fmt.Printf("%-14s %3s  %-10s  %-40s %s (%s)\n",
							job.ID, formatScore(job), job.Status, job.Title, job.Company, job.Location)
					}
					return nil
				},
			},
			{
				Name:  "alpha",
				Usage: "list visible jobs grouped alphabetically by title",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := loadState(ctx, c); err != nil {
						return err
					}
					for _, group := range state.AlphabeticalGroups() {
						fmt.Printf("— %s —\n", group.Letter)
						for _, job := range group.Jobs {
							fmt.Printf("  %-14s %-40s %s\n", job.ID, job.Title, job.Company)
						}
					}
					return nil
				},
			},
			{
				Name:  "logs",
				Usage: "list the tracking logs, newest first",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := loadState(ctx, c); err != nil {
						return err
					}
					for _, entry := range state.Logs() {
						fmt.Printf("%s  %-14s %-10s %s\n",
							entry.Timestamp.Format("2006-01-02 15:04"), entry.JobID, entry.Status, entry.Notes)
					}
					return nil
				},
			},
			{
				Name:      "status",
				Usage:     "update a job's status and record a tracking log",
				ArgsUsage: "<job-id> <new|saved|applied|interview|rejected>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "note", Usage: "log note"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 2 {
						return fmt.Errorf("expected <job-id> <status>")
					}
					status, err := models.ParseStatus(c.Args().Get(1))
					if err != nil {
						return err
					}
					if err := loadState(ctx, c); err != nil {
						return err
					}

					state.UpdateJobStatus(ctx, c.Args().Get(0), status, c.String("note"))
					state.Wait()

					failed := false
					for {
						select {
						case err := <-state.Errors():
							fmt.Printf("! sync failed: %v\n", err)
							failed = true
							continue
						default:
						}
						break
					}
					if !failed {
						fmt.Printf("%s -> %s\n", c.Args().Get(0), status)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func formatScore(job models.JobListing) string {
	if job.RelevanceScore == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *job.RelevanceScore)
}
