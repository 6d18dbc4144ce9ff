package handler

import (
	"context"
	"strings"

	"wordbank/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	// If not authorized, the text is a password attempt
	if !authorized {
		if !h.authService.CheckPassword(text) {
			return c.Send("Wrong password.")
		}

		if err := h.authService.AuthorizeUser(ctx, userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send("Something went wrong. Try again later.")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		if err := c.Send("✅ Access granted!"); err != nil {
			return err
		}
		return h.sendMenu(ctx, c)
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingNative:
		return h.saveWordPair(c, state.CurrentWord, text)

	case domain.StateWaitingEdit:
		return h.saveEdit(c, state.EditID, text)

	default:
		// Idle or waiting for a foreign word: the text is the foreign word
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingNative,
			CurrentWord: text,
		})
		return c.Send("Now send the translation", cancelMarkup())
	}
}

// handleAddWord starts the add flow from the menu button
func (h *Handler) handleAddWord(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingForeign})
	return h.show(c, "📝 Send the foreign word", cancelMarkup())
}

func (h *Handler) saveWordPair(c tele.Context, foreign, native string) error {
	userID := c.Sender().ID

	store, err := h.store(c)
	if err != nil {
		return c.Send(noticeText(err), cancelMarkup())
	}

	entry, err := store.AddEntry(foreign, native)
	if err != nil {
		h.logger.Info("Word pair rejected",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingForeign})
		return c.Send(noticeText(err) + "\n\nSend the foreign word again.")
	}

	h.logger.Info("Word pair saved",
		zap.Int64("user_id", userID),
		zap.String("entry_id", entry.ID),
	)

	// Ready for the next word
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingForeign})

	return c.Send("✅ Saved!\n\nSend the next foreign word or go back to the menu", mainMenuMarkup())
}

func (h *Handler) saveEdit(c tele.Context, id, text string) error {
	userID := c.Sender().ID

	foreign, native, ok := parseEditInput(text)
	if !ok {
		return c.Send("Send the new pair as: foreign - translation", cancelMarkup())
	}

	store, err := h.store(c)
	if err != nil {
		return c.Send(noticeText(err), cancelMarkup())
	}
	if err := store.EditEntry(id, foreign, native); err != nil {
		h.ResetState(userID)
		return c.Send(noticeText(err), mainMenuMarkup())
	}

	h.logger.Info("Word pair edited", zap.Int64("user_id", userID), zap.String("entry_id", id))
	h.ResetState(userID)

	view, markup := bankView(store.Bank(), store.SortMode(), 1)
	return c.Send("✏️ Updated!\n\n"+view, markup)
}
