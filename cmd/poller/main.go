// The OpenClaw poller is a separate process: it polls the combined feed
// endpoint on an interval and relays each new event to the Telegram bot (or
// logs it locally when credentials are absent).
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/ncjobshub/ncjobshub/internal/config"
	"github.com/ncjobshub/ncjobshub/internal/poller"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("[poller] .env loaded")
	}
	cfg := config.Load()

	cmd := &cli.Command{
		Name:  "openclaw-poller",
		Usage: "poll the NC Jobs Hub feed and relay new events to Telegram",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "base URL of the NC Jobs Hub API",
				Value: cfg.APIBaseURL,
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "polling interval",
				Value: cfg.PollInterval,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			notifier := poller.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
			if !notifier.Enabled() {
				log.Println("[poller] Telegram credentials absent — events will be logged locally")
			}
			p := poller.New(c.String("api-url"), c.Duration("interval"), notifier)
			p.Run(ctx)
			return nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
