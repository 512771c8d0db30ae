// Package internal wires the router and shared middleware.
package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/johndosdos/msgstore/internal/handler"
	"github.com/johndosdos/msgstore/internal/idgen"
	"github.com/johndosdos/msgstore/internal/store"
)

// NewRouter builds the full HTTP surface over the given store and id
// generator. Both are owned by the caller; the router holds no state of
// its own.
func NewRouter(db *store.MemoryStore, gen idgen.Generator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", handler.ServeRoot())

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", handler.CreateMessage(db, gen))
		r.Get("/", handler.ListMessages(db))
		r.Get("/{id}", handler.GetMessage(db))
		r.Put("/{id}", handler.UpdateMessage(db))
		r.Delete("/{id}", handler.DeleteMessage(db))
	})

	return Middleware(r)
}
