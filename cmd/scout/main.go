package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"boardscout/internal/bot"
	"boardscout/internal/config"
	"boardscout/internal/fetch"
	"boardscout/internal/match"
	"boardscout/internal/notify"
	"boardscout/internal/scout"
	"boardscout/internal/secrets"
)

func main() {
	// .env is a convenience for local runs; missing file is fine
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		if err := runSubcommand(os.Args[1], os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// runSubcommand covers keychain provisioning so the bot token never has to
// live in a file.
func runSubcommand(name string, args []string) error {
	switch name {
	case "set-token":
		if len(args) != 1 {
			return fmt.Errorf("usage: scout set-token <telegram-bot-token>")
		}
		if err := secrets.SetBotToken(args[0]); err != nil {
			return err
		}
		log.Printf("[scout] bot token stored in keychain (service=%s)", secrets.KeyringService)
		return nil
	case "delete-token":
		return secrets.DeleteBotToken()
	default:
		return fmt.Errorf("unknown command %q (want set-token or delete-token)", name)
	}
}

func run() error {
	dataDir := os.Getenv("BOARDSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// single daemon per data dir: the seen-state assumes one writer
	lock := flock.New(filepath.Join(dataDir, "scout.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return fmt.Errorf("another scout instance already owns %s", dataDir)
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return fmt.Errorf("config load (%s): %w", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	// write the normalized form back so the file on disk matches what the
	// daemon runs with; the previous version survives as config.yml.bak
	if err := config.SaveAtomic(userCfgPath, cfg); err != nil {
		return fmt.Errorf("config save: %w", err)
	}

	token, err := secrets.BotToken()
	if err != nil {
		return err
	}
	chatID, err := secrets.AuthorizedChatID()
	if err != nil {
		return err
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("telegram init: %w", err)
	}
	log.Printf("[scout] authorized as @%s", api.Self.UserName)

	notifier := notify.NewNotifier(api, chatID, cfg.Telegram.ChunkLimit, cfg.Telegram.DisablePreview)

	runner := &scout.Runner{
		Source:       fetch.NewClient(fetch.NewHostLimiter(1.0, 2)),
		Out:          notifier,
		RegistryPath: filepath.Join(dataDir, "companies.csv"),
		SeenPath:     filepath.Join(dataDir, "seen_jobs.json"),
		Filters:      match.NewFilters(cfg.Filters.Include, cfg.Filters.Exclude, cfg.Filters.LocationsInclude),
	}

	poller := scout.NewPoller(runner, time.Duration(cfg.Polling.ScanSeconds)*time.Second)

	commands := bot.New(api, notifier, chatID,
		runner.RegistryPath,
		filepath.Join(dataDir, "telegram_offset.json"),
		func() { poller.RequestRun(scout.Options{IgnoreSeen: true}) },
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[scout] starting (data=%s scan=%ds commands=%ds)",
		dataDir, cfg.Polling.ScanSeconds, cfg.Polling.CommandSeconds)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return poller.Run(gctx)
	})

	g.Go(func() error {
		t := time.NewTicker(time.Duration(cfg.Polling.CommandSeconds) * time.Second)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-t.C:
				if err := commands.Poll(); err != nil {
					log.Printf("[bot] poll error: %v", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("[scout] shutting down")
	return nil
}
