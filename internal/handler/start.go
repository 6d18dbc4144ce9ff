package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	h.ResetState(userID)

	if !authorized {
		return c.Send("Hi! Enter the password to continue:")
	}

	return h.sendMenu(ctx, c)
}

// sendMenu shows the welcome screen on first launch, then the main menu
func (h *Handler) sendMenu(ctx context.Context, c tele.Context) error {
	userID := c.Sender().ID

	launched, err := h.launchService.HasLaunched(ctx, userID)
	if err != nil {
		// Not fatal, the welcome is shown again next time
		h.logger.Warn("Failed to read launch flag", zap.Int64("user_id", userID), zap.Error(err))
	}

	if !launched {
		if err := c.Send(welcomeText); err != nil {
			return err
		}
		if err := h.launchService.MarkLaunched(ctx, userID); err != nil {
			h.logger.Warn("Failed to set launch flag", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return c.Send(mainMenuText, mainMenuMarkup())
}

// handleMainMenu returns to the main menu from any screen
func (h *Handler) handleMainMenu(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	return h.handleMainMenu(c)
}
