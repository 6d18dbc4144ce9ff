package handler

import (
	"context"
	"sync"
	"time"

	"wordbank/internal/domain"
	"wordbank/internal/middleware"
	"wordbank/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds the storage calls made while handling one update
const requestTimeout = 10 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot           *tele.Bot
	authService   *service.AuthService
	launchService *service.LaunchService
	registry      *service.StoreRegistry
	logger        *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	launchService *service.LaunchService,
	registry *service.StoreRegistry,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		authService:   authService,
		launchService: launchService,
		registry:      registry,
		logger:        logger,
		states:        make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/words", h.handleBank, auth)
	h.bot.Handle("/collection", h.handleCollection, auth)

	// Text messages, authorization is checked inline to accept the password
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnBank, h.handleBank, auth)
	h.bot.Handle(&btnCollection, h.handleCollection, auth)
	h.bot.Handle(&btnAddWord, h.handleAddWord, auth)
	h.bot.Handle(&btnSortMenu, h.handleSortMenu, auth)
	h.bot.Handle(&btnSortMode, h.handleSortMode, auth)
	h.bot.Handle(&btnShuffle, h.handleShuffle, auth)
	h.bot.Handle(&btnDeleteAll, h.handleDeleteAll, auth)
	h.bot.Handle(&btnConfirmDeleteAll, h.handleConfirmDeleteAll, auth)
	h.bot.Handle(&btnPage, h.handlePage, auth)
	h.bot.Handle(&btnDelete, h.handlePrimaryAction, auth)
	h.bot.Handle(&btnCollect, h.handleSecondaryAction, auth)
	h.bot.Handle(&btnEdit, h.handleEdit, auth)
	h.bot.Handle(&btnUncollect, h.handleUncollect, auth)
	h.bot.Handle(&btnCancel, h.handleCancel, auth)
	h.bot.Handle(&btnBack, h.handleMainMenu, auth)

	// Generic callback handler for data that did not match a button
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// store returns the word bank of the user who sent the update
func (h *Handler) store(c tele.Context) (*service.WordBankStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	store, err := h.registry.Get(ctx, c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to load word bank", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
		return nil, err
	}
	return store, nil
}

// show edits the message behind a callback, or sends a new one for commands
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// notify answers a callback with an alert, or sends a message for commands
func (h *Handler) notify(c tele.Context, text string) error {
	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}
