package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/johnkalayu/portfolio-backend/config"
	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/rs/zerolog/log"
)

// SendUnreadDigest emails the site owner a summary of unread contact
// messages. It is scheduled daily from main; when nothing is unread no email
// goes out.
func SendUnreadDigest(cfg map[string]string, db database.Database) error {
	unread, err := db.ContactRepo().ListUnread()
	if err != nil {
		return fmt.Errorf("list unread messages: %w", err)
	}
	if len(unread) == 0 {
		log.Debug().Msg("No unread contact messages, skipping digest")
		return nil
	}

	recipient := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	if recipient == "" {
		return fmt.Errorf("CONTACT_NOTIFY_EMAIL environment variable is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d unread contact message(s):\n\n", len(unread))
	for _, msg := range unread {
		fmt.Fprintf(&b, "- %s <%s> on %s\n  %s\n\n",
			msg.FullName, msg.Email, msg.CreatedAt.Format(time.RFC1123), msg.Message)
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	subject := fmt.Sprintf("Portfolio: %d unread contact message(s)", len(unread))
	return SendEmail(ctx, cfg, subject, b.String(), []string{recipient})
}

// RunUnreadDigest is the cron entrypoint wrapper; scheduler funcs cannot
// return errors so it logs instead.
func RunUnreadDigest(cfg map[string]string, db database.Database) func() {
	return func() {
		if err := SendUnreadDigest(cfg, db); err != nil {
			log.Error().Err(err).Msg("Unread contact digest failed")
		}
	}
}
