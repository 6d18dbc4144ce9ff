package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wordbank/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// pageSize is the number of entries shown per bank page
const pageSize = 7

// Inline keyboard buttons
var (
	btnBank = tele.Btn{
		Unique: "bank",
		Text:   "📚 Word bank",
	}
	btnCollection = tele.Btn{
		Unique: "collection",
		Text:   "🗂 Collection",
	}
	btnAddWord = tele.Btn{
		Unique: "add",
		Text:   "➕ Add word",
	}
	btnSortMenu = tele.Btn{
		Unique: "sort_menu",
		Text:   "🔤 Sort",
	}
	btnShuffle = tele.Btn{
		Unique: "shuffle",
		Text:   "🎲 Shuffle",
	}
	btnDeleteAll = tele.Btn{
		Unique: "delete_all",
		Text:   "🗑 Delete all",
	}
	btnConfirmDeleteAll = tele.Btn{
		Unique: "confirm_delete_all",
		Text:   "🗑 Yes, delete everything",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Back",
	}

	// Buttons carrying a payload, one per entry or option
	btnSortMode  = tele.Btn{Unique: "sort"}
	btnPage      = tele.Btn{Unique: "page"}
	btnDelete    = tele.Btn{Unique: "del"}
	btnCollect   = tele.Btn{Unique: "collect"}
	btnEdit      = tele.Btn{Unique: "edit"}
	btnUncollect = tele.Btn{Unique: "uncollect"}
)

const mainMenuText = "🏠 Main menu\n\nChoose an action:"

const welcomeText = "👋 Welcome to Word Bank!\n\n" +
	"📝 Send a foreign word, then its translation, and it goes to your bank.\n" +
	"🔤 Sort or shuffle the bank to practice in a different order.\n" +
	"🗂 Put the words you want to focus on into your collection."

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAddWord),
		menu.Row(btnBank, btnCollection),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// pageBounds clamps page into range and returns the slice bounds for it
func pageBounds(total, page int) (start, end, clamped, totalPages int) {
	totalPages = (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	clamped = page
	if clamped < 1 {
		clamped = 1
	}
	if clamped > totalPages {
		clamped = totalPages
	}

	start = (clamped - 1) * pageSize
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end, clamped, totalPages
}

// entryPayload joins an entry id and the bank page it is shown on
func entryPayload(id string, page int) string {
	return id + ":" + strconv.Itoa(page)
}

// parseEntryPayload splits an entry payload; a missing or bad page means page 1
func parseEntryPayload(data string) (id string, page int) {
	id, rawPage, found := strings.Cut(data, ":")
	if !found {
		return id, 1
	}
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		return id, 1
	}
	return id, page
}

func sortLabel(mode domain.SortMode) string {
	switch mode {
	case domain.SortByForeignAsc:
		return "foreign word A→Z"
	case domain.SortByNativeAsc:
		return "translation A→Z"
	default:
		return "as added"
	}
}

// bankView renders one page of the bank with per entry action buttons
func bankView(entries []domain.WordEntry, mode domain.SortMode, page int) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	start, end, page, totalPages := pageBounds(len(entries), page)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 Word bank (%d)\nOrder: %s\n\n", len(entries), sortLabel(mode))

	rows := []tele.Row{}
	if len(entries) == 0 {
		sb.WriteString("Your bank is empty. Send a word to add it.")
	}
	for i := start; i < end; i++ {
		e := entries[i]
		n := strconv.Itoa(i + 1)
		fmt.Fprintf(&sb, "%s. %s — %s\n", n, e.Foreign, e.Native)
		rows = append(rows, markup.Row(
			markup.Data("❌ "+n, btnDelete.Unique, entryPayload(e.ID, page)),
			markup.Data("🗂 "+n, btnCollect.Unique, e.ID),
			markup.Data("✏️ "+n, btnEdit.Unique, e.ID),
		))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", btnPage.Unique, strconv.Itoa(page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", btnPage.Unique, strconv.Itoa(page+1)))
		}
		rows = append(rows, navRow)
		fmt.Fprintf(&sb, "\nPage %d of %d", page, totalPages)
	}

	rows = append(rows,
		markup.Row(btnSortMenu, btnShuffle),
		markup.Row(btnDeleteAll),
		markup.Row(btnBack),
	)
	markup.Inline(rows...)

	return sb.String(), markup
}

// collectionView renders the collection with a remove button per entry
func collectionView(entries []domain.WordEntry) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🗂 Collection (%d)\n\n", len(entries))
	if len(entries) == 0 {
		sb.WriteString("Nothing here yet. Use 🗂 next to a word in your bank.")
	}

	rows := []tele.Row{}
	for i, e := range entries {
		n := strconv.Itoa(i + 1)
		fmt.Fprintf(&sb, "%s. %s — %s\n", n, e.Foreign, e.Native)
		rows = append(rows, markup.Row(markup.Data("➖ "+n, btnUncollect.Unique, e.ID)))
	}

	rows = append(rows, markup.Row(btnBank, btnBack))
	markup.Inline(rows...)

	return sb.String(), markup
}

// sortView offers the sort modes, marking the active one
func sortView(active domain.SortMode) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}

	rows := []tele.Row{}
	for _, mode := range []domain.SortMode{domain.SortByForeignAsc, domain.SortByNativeAsc, domain.SortNone} {
		label := sortLabel(mode)
		if mode == active {
			label = "✅ " + label
		}
		rows = append(rows, markup.Row(markup.Data(label, btnSortMode.Unique, mode.String())))
	}
	rows = append(rows, markup.Row(btnBank))
	markup.Inline(rows...)

	return "🔤 Choose how to order your word bank:", markup
}

func confirmDeleteAllView(total int) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnConfirmDeleteAll),
		markup.Row(btnBank),
	)
	return fmt.Sprintf("Delete all %d words from your bank? Your collection is kept.", total), markup
}

// noticeText maps a store error to the message shown to the user
func noticeText(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "You haven't entered any words yet!"
	case errors.Is(err, domain.ErrIncompleteInput):
		return "Enter both the foreign word and its translation."
	case errors.Is(err, domain.ErrDuplicateTranslation):
		return "The foreign word is the same as the translation!"
	case errors.Is(err, domain.ErrBankEmpty):
		return "There are no words to delete!"
	case errors.Is(err, domain.ErrAlreadyInCollection):
		return "This word is already in your collection."
	case errors.Is(err, domain.ErrEntryNotFound):
		return "This word is no longer in your bank."
	default:
		return "Something went wrong. Try again later."
	}
}

// parseEditInput splits "foreign - native" into its two words
func parseEditInput(text string) (foreign, native string, ok bool) {
	for _, sep := range []string{" — ", " – ", " - "} {
		if before, after, found := strings.Cut(text, sep); found {
			return strings.TrimSpace(before), strings.TrimSpace(after), true
		}
	}
	return "", "", false
}
