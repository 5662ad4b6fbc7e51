package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/johnkalayu/portfolio-backend/errs"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/johnkalayu/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	config      map[string]string
}

func newContactHandler(contactRepo *database.ContactRepo, cfg map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		config:      cfg,
	}
}

// contactSubmission carries a contact form post. Name is accepted under
// either the `full_name` or legacy `name` key.
type contactSubmission struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required"`
}

func decodeSubmission(r *http.Request) (contactSubmission, error) {
	var sub contactSubmission

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, errs.Malformed("contact submission")
		}
		return sub, nil
	}

	if err := r.ParseForm(); err != nil {
		return sub, errs.Malformed("contact form")
	}
	sub.FullName = r.PostFormValue("full_name")
	if sub.FullName == "" {
		sub.FullName = r.PostFormValue("name")
	}
	sub.Email = r.PostFormValue("email")
	sub.Message = r.PostFormValue("message")
	return sub, nil
}

func isAJAX(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// submit validates and persists a contact message, then fires the owner
// notification. The notification is best-effort: it runs after the row has
// committed and its failure is only ever logged.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := decodeSubmission(r)
		if err != nil {
			h.writeFailure(w, r, "Please check all fields and try again.")
			return
		}

		// Emptiness is judged after trimming; the name itself is stored as
		// submitted, only the email is normalized.
		candidate := contactSubmission{
			FullName: strings.TrimSpace(sub.FullName),
			Email:    strings.ToLower(strings.TrimSpace(sub.Email)),
			Message:  strings.TrimSpace(sub.Message),
		}
		if err := validate.Struct(candidate); err != nil {
			h.writeFailure(w, r, "Please check all fields and try again.")
			return
		}

		message := &models.ContactMessage{
			FullName: sub.FullName,
			Email:    candidate.Email,
			Message:  sub.Message,
		}
		if err := h.contactRepo.Add(message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		services.NotifyContactAsync(h.config, message)

		if isAJAX(r) {
			h.responder.WriteJSON(w, map[string]any{
				"success": true,
				"message": "Thank you! I'll get back to you as soon as possible.",
			})
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h contactHandler) writeFailure(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	h.responder.WriteJSON(w, map[string]any{
		"success": false,
		"error":   message,
	})
}
