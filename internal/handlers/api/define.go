package api

import (
	"github.com/gofiber/fiber/v3"

	"wordpage/internal/dictionary"
	"wordpage/internal/lookup"
	"wordpage/internal/models"
	"wordpage/internal/validation"
	"wordpage/internal/view"
)

// DefineHandler handles definition lookups via JSON API.
type DefineHandler struct {
	svc *lookup.Service
}

// NewDefineHandler creates a new API define handler.
func NewDefineHandler(svc *lookup.Service) *DefineHandler {
	return &DefineHandler{svc: svc}
}

// Define returns the mapped definition of the :word path parameter.
func (h *DefineHandler) Define(c fiber.Ctx) error {
	word := validation.NormalizeWord(c.Params("word"))
	if !validation.ValidateWord(word) {
		return jsonError(c, fiber.StatusBadRequest, "invalid word")
	}

	record, err := h.svc.Define(c.Context(), word)
	if err != nil {
		kind := dictionary.Classify(err)
		return jsonError(c, statusForKind(kind), view.ErrorMessage(kind, word))
	}

	return jsonSuccess(c, models.DefinitionResponse{
		Word:       word,
		Definition: record,
	})
}

// Random picks a random word and returns it with its definition. A word
// without a definition is still returned, with the error message.
func (h *DefineHandler) Random(c fiber.Ctx) error {
	word, err := h.svc.RandomWord(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, view.ErrorMessage(dictionary.TransportError, ""))
	}

	resp := models.RandomWordResponse{Word: word}
	record, err := h.svc.Define(c.Context(), word)
	if err != nil {
		kind := dictionary.Classify(err)
		if kind != dictionary.NotFoundError {
			return jsonError(c, statusForKind(kind), view.ErrorMessage(kind, word))
		}
		resp.Error = view.ErrorMessage(kind, word)
	} else {
		resp.Definition = &record
	}

	return jsonSuccess(c, resp)
}

func statusForKind(kind dictionary.ErrorKind) int {
	if kind == dictionary.NotFoundError {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadGateway
}
