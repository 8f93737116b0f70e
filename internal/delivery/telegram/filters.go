package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

const customRangeLayout = "02.01.06"

// handleFiltersCommand shows the chat's current filters with buttons to
// change them.
func (h *Handler) handleFiltersCommand(chatID int64) {
	state := h.filters.Get(chatID)
	msg := newHTMLMessage(chatID, formatFilters(state))
	msg.ReplyMarkup = buildFiltersKeyboard(state)
	h.send(msg)
}

// handleFilterCallback applies a time or word filter selection. Picking the
// custom range switches the chat into range-input mode instead of changing
// the state directly.
func (h *Handler) handleFilterCallback(_ context.Context, chatID int64, messageID int, cd callbackData) string {
	if len(cd.Params) < 2 {
		return ""
	}

	state := h.filters.Get(chatID)

	switch cd.Params[0] {
	case filterTime:
		tf := entities.TimeFilter(cd.Params[1])
		if tf == entities.TimeCustom {
			h.filters.SetAwaitingCustomRange(chatID, true)
			h.send(newHTMLMessage(chatID, msgSendCustomRange))
			return ""
		}
		state.TimeFilter = tf
		h.filters.SetAwaitingCustomRange(chatID, false)

	case filterWord:
		state.WordFilter = entities.WordFilter(cd.Params[1])

	default:
		return ""
	}

	h.filters.Set(chatID, state)
	h.renderFilters(chatID, messageID, state)
	return ""
}

// handleCustomRangeInput parses a "DD.MM.YY DD.MM.YY" message and applies it
// as the custom time range.
func (h *Handler) handleCustomRangeInput(chatID int64, text string) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		h.send(newHTMLMessage(chatID, msgBadCustomRange))
		return
	}

	start, err := time.Parse(customRangeLayout, fields[0])
	if err != nil {
		h.send(newHTMLMessage(chatID, msgBadCustomRange))
		return
	}
	end, err := time.Parse(customRangeLayout, fields[1])
	if err != nil {
		h.send(newHTMLMessage(chatID, msgBadCustomRange))
		return
	}

	state := h.filters.Get(chatID)
	state.TimeFilter = entities.TimeCustom
	state.CustomStart = start
	state.CustomEnd = end
	h.filters.Set(chatID, state)
	h.filters.SetAwaitingCustomRange(chatID, false)

	msg := newHTMLMessage(chatID, formatFilters(state))
	msg.ReplyMarkup = buildFiltersKeyboard(state)
	h.send(msg)
}

func (h *Handler) renderFilters(chatID int64, messageID int, state entities.FilterState) {
	edit := newHTMLEdit(chatID, messageID, formatFilters(state))
	kb := buildFiltersKeyboard(state)
	edit.ReplyMarkup = &kb
	h.send(edit)
}
