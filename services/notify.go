package services

import (
	"context"
	"fmt"
	"time"

	"github.com/johnkalayu/portfolio-backend/config"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

// notifyTimeout bounds the outbound mail call so a slow provider cannot
// stall anything waiting on the notification.
const notifyTimeout = 10 * time.Second

// NotifyContact emails the site owner about a new contact message. It runs
// after the message has been committed; failures are logged by the caller
// and never affect the request that triggered it.
func NotifyContact(cfg map[string]string, msg *models.ContactMessage) error {
	recipient := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	if recipient == "" {
		return fmt.Errorf("CONTACT_NOTIFY_EMAIL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.FullName)
	body := fmt.Sprintf("From: %s\nEmail: %s\n\nMessage:\n%s", msg.FullName, msg.Email, msg.Message)

	return SendEmail(ctx, cfg, subject, body, []string{recipient})
}

// NotifyContactAsync fires NotifyContact in a goroutine, logging the outcome.
// The contact request itself never waits on or fails with the email.
func NotifyContactAsync(cfg map[string]string, msg *models.ContactMessage) {
	go func() {
		if err := NotifyContact(cfg, msg); err != nil {
			log.Error().Err(err).Str("email", msg.Email).Msg("Failed to send contact notification")
			return
		}
		log.Info().Str("email", msg.Email).Msg("Contact notification sent")
	}()
}
