package telegram

// hardestWordsLimit caps the list shown by /progress.
const hardestWordsLimit = 5

func (h *Handler) handleProgressCommand(chatID int64) {
	h.send(newHTMLMessage(chatID, formatProgress(
		h.progress.TrackedCount(),
		h.progress.StarredCount(),
		h.progress.HardestWords(hardestWordsLimit),
		h.wordNames,
	)))
}
