package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram caps messages at 4096 characters; the default limit leaves
// headroom for the API counting characters rather than bytes.
const DefaultChunkLimit = 4000

// Notifier sends digests and command replies to the single authorized
// chat, splitting oversized messages at the chunk limit.
type Notifier struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	chunkLimit     int
	disablePreview bool
}

func NewNotifier(bot *tgbotapi.BotAPI, chatID int64, chunkLimit int, disablePreview bool) *Notifier {
	if chunkLimit <= 0 {
		chunkLimit = DefaultChunkLimit
	}
	return &Notifier{
		bot:            bot,
		chatID:         chatID,
		chunkLimit:     chunkLimit,
		disablePreview: disablePreview,
	}
}

func (n *Notifier) Send(text string) error {
	for _, part := range Chunk(text, n.chunkLimit) {
		msg := tgbotapi.NewMessage(n.chatID, part)
		msg.DisableWebPagePreview = n.disablePreview
		if _, err := n.bot.Send(msg); err != nil {
			return fmt.Errorf("telegram send: %w", err)
		}
	}
	return nil
}
