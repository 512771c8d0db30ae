// Package handler maps the HTTP surface onto store operations.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/johndosdos/msgstore/internal/idgen"
	"github.com/johndosdos/msgstore/internal/model"
	"github.com/johndosdos/msgstore/internal/store"
)

// messageInput captures the request body for create and update. Content
// is decoded dynamically so an absent field, a non-string value and a
// blank string are distinguishable.
type messageInput struct {
	Content any `json:"content"`
}

// contentFromBody decodes and validates the message content. The second
// return value is a client-facing error message; empty means valid.
func contentFromBody(r *http.Request) (string, string) {
	var input messageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return "", "request body must be valid JSON"
	}

	if input.Content == nil {
		return "", "content is required"
	}

	content, ok := input.Content.(string)
	if !ok {
		return "", "content must be a string"
	}

	// Emptiness is checked on a trimmed view, but content is stored
	// exactly as given.
	if strings.TrimSpace(content) == "" {
		return "", "content must not be empty"
	}

	return content, ""
}

// CreateMessage handles POST /messages.
func CreateMessage(db *store.MemoryStore, gen idgen.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, errMsg := contentFromBody(r)
		if errMsg != "" {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}

		// One timestamp for both fields so createdAt == updatedAt
		// right after creation.
		now := time.Now().UTC()
		msg := model.Message{
			ID:        gen.Next(),
			Content:   content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		db.Insert(msg)

		slog.InfoContext(r.Context(), "message created",
			slog.String("id", msg.ID))

		writeJSON(w, http.StatusCreated, msg)
	}
}

// ListMessages handles GET /messages. Always 200; an empty store yields
// an empty array, never null.
func ListMessages(db *store.MemoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, db.List())
	}
}

// GetMessage handles GET /messages/{id}.
func GetMessage(db *store.MemoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		msg, err := db.Get(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "message not found")
			return
		}

		writeJSON(w, http.StatusOK, msg)
	}
}

// UpdateMessage handles PUT /messages/{id}. Content is validated before
// the id is looked up, so a bad body is 400 even for a missing message.
func UpdateMessage(db *store.MemoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, errMsg := contentFromBody(r)
		if errMsg != "" {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}

		id := chi.URLParam(r, "id")

		msg, err := db.Update(id, content, time.Now().UTC())
		if err != nil {
			writeError(w, http.StatusNotFound, "message not found")
			return
		}

		slog.InfoContext(r.Context(), "message updated",
			slog.String("id", msg.ID))

		writeJSON(w, http.StatusOK, msg)
	}
}

// DeleteMessage handles DELETE /messages/{id}.
func DeleteMessage(db *store.MemoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := db.Delete(id); err != nil {
			writeError(w, http.StatusNotFound, "message not found")
			return
		}

		slog.InfoContext(r.Context(), "message deleted",
			slog.String("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
