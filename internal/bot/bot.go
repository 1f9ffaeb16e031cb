package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"boardscout/internal/domain"
	"boardscout/internal/registry"
)

const helpText = `🤖 Board Scout commands

/list
Show tracked boards

/add <board_url>
Add board using slug as name
Example: /add https://jobs.ashbyhq.com/rogo

/add <name> <board_url>
Add board with custom name
Example: /add Rogo https://jobs.ashbyhq.com/rogo

/remove <slug-or-name>
Remove a board
Example: /remove rogo

/runall
Trigger an immediate full scan across all tracked boards (ignores seen history for that run)
`

// Sender is the reply channel; satisfied by notify.Notifier.
type Sender interface {
	Send(text string) error
}

// Processor drains pending Telegram updates and executes management
// commands from the single authorized chat. Everyone else is ignored
// silently.
type Processor struct {
	api          *tgbotapi.BotAPI
	out          Sender
	chatID       int64
	registryPath string
	offsetPath   string
	runNow       func()
}

func New(api *tgbotapi.BotAPI, out Sender, chatID int64, registryPath, offsetPath string, runNow func()) *Processor {
	return &Processor{
		api:          api,
		out:          out,
		chatID:       chatID,
		registryPath: registryPath,
		offsetPath:   offsetPath,
		runNow:       runNow,
	}
}

// Poll fetches updates past the persisted offset, handles each command,
// and persists the new offset once the batch is done.
func (p *Processor) Poll() error {
	offset := loadOffset(p.offsetPath)

	req := tgbotapi.NewUpdate(offset)
	req.Timeout = 0
	req.AllowedUpdates = []string{"message"}

	updates, err := p.api.GetUpdates(req)
	if err != nil {
		return fmt.Errorf("telegram getUpdates: %w", err)
	}

	next := offset
	for _, upd := range updates {
		if upd.UpdateID+1 > next {
			next = upd.UpdateID + 1
		}
		if upd.Message == nil || upd.Message.Chat == nil {
			continue
		}
		text := strings.TrimSpace(upd.Message.Text)
		if text == "" {
			continue
		}
		if upd.Message.Chat.ID != p.chatID {
			continue
		}

		if err := p.out.Send(p.Handle(text)); err != nil {
			log.Printf("[bot] reply failed: %v", err)
		}
	}

	return saveOffset(p.offsetPath, next)
}

// Handle executes one command line and returns the reply text.
func (p *Processor) Handle(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return "❌ Empty command. Use /help."
	}

	switch strings.ToLower(tokens[0]) {
	case "/help":
		return helpText
	case "/list":
		return p.handleList()
	case "/add":
		return p.handleAdd(tokens[1:])
	case "/remove":
		return p.handleRemove(tokens[1:])
	case "/runall":
		return p.handleRunAll()
	default:
		return "❌ Unknown command. Use /help."
	}
}

func (p *Processor) handleList() string {
	boards, err := registry.Load(p.registryPath)
	if err != nil {
		return fmt.Sprintf("❌ Could not read the board registry: %v", err)
	}
	return formatListReply(boards)
}

func (p *Processor) handleAdd(args []string) string {
	if len(args) == 0 {
		return "❌ Usage: /add <board_url> or /add <name> <board_url>"
	}

	boardURL := args[len(args)-1]
	name := strings.TrimSpace(strings.Join(args[:len(args)-1], " "))

	if registry.ParseSlug(boardURL) == "" {
		return "❌ Invalid board URL. Use something like https://jobs.ashbyhq.com/<slug>"
	}

	added, err := registry.Add(p.registryPath, name, boardURL)
	if err != nil {
		return fmt.Sprintf("ℹ️ %v", err)
	}
	return fmt.Sprintf("✅ Added board\nName: %s\nURL: %s\nSlug: %s",
		added.Company, added.URL, registry.ParseSlug(added.URL))
}

func (p *Processor) handleRemove(args []string) string {
	if len(args) != 1 {
		return "❌ Usage: /remove <slug-or-name>"
	}

	removed, err := registry.Remove(p.registryPath, args[0])
	if errors.Is(err, registry.ErrNotFound) {
		return fmt.Sprintf("❌ No tracked board matched: %s\nUse /list to see valid names/slugs.", args[0])
	}
	if err != nil {
		return fmt.Sprintf("❌ Remove failed: %v", err)
	}

	names := make([]string, 0, len(removed))
	for _, b := range removed {
		names = append(names, b.Company)
	}
	return "✅ Removed board: " + strings.Join(names, ", ")
}

func (p *Processor) handleRunAll() string {
	if p.runNow == nil {
		return "❌ /runall is not configured."
	}
	p.runNow()
	return "🚀 Run requested.\n" +
		"Starting an immediate full scan across all tracked boards.\n" +
		"This run will ignore seen history and send all current matching jobs."
}

func formatListReply(boards []domain.Board) string {
	if len(boards) == 0 {
		return "📋 Tracked boards (0)"
	}
	lines := []string{fmt.Sprintf("📋 Tracked boards (%d)", len(boards))}
	for _, b := range boards {
		lines = append(lines, fmt.Sprintf("- %s: %s", b.Company, b.URL))
	}
	return strings.Join(lines, "\n")
}
