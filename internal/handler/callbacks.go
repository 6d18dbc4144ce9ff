package handler

import (
	"strconv"
	"strings"
	"unicode"

	"wordbank/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseCallback splits cleaned callback data into the button unique and its payload
func parseCallback(data string) (unique, payload string) {
	unique, payload, _ = strings.Cut(cleanCallbackData(data), "|")
	return unique, payload
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Another callback already rendered the same content
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks whose data did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, payload := parseCallback(callback.Data)
	h.logger.Debug("handleCallback: processing callback",
		zap.String("unique", unique),
		zap.String("payload", payload),
		zap.Int64("user_id", c.Sender().ID),
	)

	callback.Unique = unique
	callback.Data = payload

	switch unique {
	case btnBank.Unique:
		return h.handleBank(c)
	case btnCollection.Unique:
		return h.handleCollection(c)
	case btnAddWord.Unique:
		return h.handleAddWord(c)
	case btnSortMenu.Unique:
		return h.handleSortMenu(c)
	case btnSortMode.Unique:
		return h.handleSortMode(c)
	case btnShuffle.Unique:
		return h.handleShuffle(c)
	case btnDeleteAll.Unique:
		return h.handleDeleteAll(c)
	case btnConfirmDeleteAll.Unique:
		return h.handleConfirmDeleteAll(c)
	case btnPage.Unique:
		return h.handlePage(c)
	case btnDelete.Unique:
		return h.handlePrimaryAction(c)
	case btnCollect.Unique:
		return h.handleSecondaryAction(c)
	case btnEdit.Unique:
		return h.handleEdit(c)
	case btnUncollect.Unique:
		return h.handleUncollect(c)
	case btnCancel.Unique, btnBack.Unique:
		return h.handleMainMenu(c)
	}

	h.logger.Warn("Unhandled callback", zap.String("unique", unique))
	return c.Respond()
}

// payload returns the data attached to the pressed button
func payload(c tele.Context) string {
	if c.Callback() == nil {
		return ""
	}
	return cleanCallbackData(c.Callback().Data)
}

// handleBank shows the first page of the word bank
func (h *Handler) handleBank(c tele.Context) error {
	return h.showBankPage(c, 1)
}

// handlePage handles bank page navigation
func (h *Handler) handlePage(c tele.Context) error {
	page, err := strconv.Atoi(payload(c))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showBankPage(c, page)
}

func (h *Handler) showBankPage(c tele.Context, page int) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	text, markup := bankView(store.Bank(), store.SortMode(), page)
	return h.show(c, text, markup)
}

// handleCollection shows the collection
func (h *Handler) handleCollection(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	text, markup := collectionView(store.Collection())
	return h.show(c, text, markup)
}

// handleSortMenu shows the sort options
func (h *Handler) handleSortMenu(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	text, markup := sortView(store.SortMode())
	return h.show(c, text, markup)
}

// handleSortMode applies the chosen sort mode
func (h *Handler) handleSortMode(c tele.Context) error {
	mode, ok := domain.ParseSortMode(payload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown sort order"})
	}

	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	store.SetSortMode(mode)
	h.logger.Info("Sort mode changed",
		zap.Int64("user_id", c.Sender().ID),
		zap.Stringer("mode", mode),
	)
	return h.showBankPage(c, 1)
}

// handleShuffle shuffles the bank
func (h *Handler) handleShuffle(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	if len(store.Bank()) < 2 {
		return h.notify(c, "Add at least two words to shuffle.")
	}

	store.Shuffle()
	return h.showBankPage(c, 1)
}

// handleDeleteAll asks for confirmation before clearing the bank
func (h *Handler) handleDeleteAll(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	total := len(store.Bank())
	if total == 0 {
		return h.notify(c, noticeText(domain.ErrBankEmpty))
	}

	text, markup := confirmDeleteAllView(total)
	return h.show(c, text, markup)
}

// handleConfirmDeleteAll clears the bank
func (h *Handler) handleConfirmDeleteAll(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	if err := store.DeleteAll(); err != nil {
		return h.notify(c, noticeText(err))
	}

	h.logger.Info("Word bank cleared", zap.Int64("user_id", c.Sender().ID))
	return h.showBankPage(c, 1)
}

// handlePrimaryAction deletes the entry behind the pressed button and
// re-renders the page it was pressed on
func (h *Handler) handlePrimaryAction(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}

	id, page := parseEntryPayload(payload(c))
	store.OnPrimaryAction(id)
	return h.showBankPage(c, page)
}

// handleSecondaryAction copies the entry behind the pressed button to the collection
func (h *Handler) handleSecondaryAction(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	if err := store.OnSecondaryAction(payload(c)); err != nil {
		return h.notify(c, noticeText(err))
	}
	return c.Respond(&tele.CallbackResponse{Text: "Added to collection"})
}

// handleEdit asks for the new words of an entry
func (h *Handler) handleEdit(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}

	id := payload(c)
	entry, ok := store.Entry(id)
	if !ok {
		return h.notify(c, noticeText(domain.ErrEntryNotFound))
	}

	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingEdit, EditID: id})
	return h.show(c,
		"✏️ Editing: "+entry.Foreign+" - "+entry.Native+"\n\nSend the new pair as: foreign - translation",
		cancelMarkup(),
	)
}

// handleUncollect removes the entry behind the pressed button from the collection
func (h *Handler) handleUncollect(c tele.Context) error {
	store, err := h.store(c)
	if err != nil {
		return h.notify(c, noticeText(err))
	}
	store.DeleteFromCollection(payload(c))

	text, markup := collectionView(store.Collection())
	return h.show(c, text, markup)
}
