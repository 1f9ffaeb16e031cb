package secrets

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "boardscout"

	tokenAccount = "telegram-bot-token"

	envBotToken = "TELEGRAM_BOT_TOKEN"
	envChatID   = "TELEGRAM_CHAT_ID"
)

// BotToken returns the Telegram bot token: environment first (the CI /
// container path), OS keychain second (the workstation path).
func BotToken() (string, error) {
	if t := strings.TrimSpace(os.Getenv(envBotToken)); t != "" {
		return t, nil
	}
	if t, err := keyring.Get(KeyringService, tokenAccount); err == nil && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t), nil
	}
	return "", errors.New("telegram bot token not found (set TELEGRAM_BOT_TOKEN or store it in the keychain)")
}

func SetBotToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, tokenAccount, strings.TrimSpace(token))
}

func DeleteBotToken() error {
	return keyring.Delete(KeyringService, tokenAccount)
}

// AuthorizedChatID returns the single chat id allowed to command the bot
// and to receive digests.
func AuthorizedChatID() (int64, error) {
	raw := strings.TrimSpace(os.Getenv(envChatID))
	if raw == "" {
		return 0, errors.New("TELEGRAM_CHAT_ID is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("TELEGRAM_CHAT_ID must be a numeric chat id")
	}
	return id, nil
}
