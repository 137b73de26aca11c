package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
	"github.com/juris-lab/themis/pkg/usecase"
	"github.com/juris-lab/themis/pkg/utils/errutil"
	"github.com/juris-lab/themis/pkg/utils/safe"
)

const zeroResultsMessage = "No se encontraron resultados para esta búsqueda."

type createSessionRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

type statusEntryResponse struct {
	Index      int    `json:"n"`
	Expediente string `json:"expediente"`
	Fecha      string `json:"fecha"`
	Partes     string `json:"partes"`
	Caracteres string `json:"caracteres"`
	Estado     string `json:"estado"`
	Preview    string `json:"vista_previa"`
}

type chatTurnResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type sessionResponse struct {
	ID            string                `json:"id"`
	Query         string                `json:"query"`
	TotalRecords  int                   `json:"total_records"`
	DocumentCount int                   `json:"document_count"`
	Message       string                `json:"message,omitempty"`
	Documents     []statusEntryResponse `json:"documents"`
	History       []chatTurnResponse    `json:"history,omitempty"`
}

func toSessionResponse(sess *model.Session) sessionResponse {
	resp := sessionResponse{
		ID:            sess.ID.String(),
		Query:         sess.Query,
		TotalRecords:  len(sess.Expedientes),
		DocumentCount: sess.DocumentCount,
		Documents:     make([]statusEntryResponse, 0, len(sess.StatusEntries)),
	}

	if len(sess.Expedientes) == 0 {
		resp.Message = zeroResultsMessage
	}

	for _, e := range sess.StatusEntries {
		resp.Documents = append(resp.Documents, statusEntryResponse{
			Index:      e.Index,
			Expediente: e.CaseNumber,
			Fecha:      e.Date,
			Partes:     e.Parties,
			Caracteres: e.Characters,
			Estado:     e.Status.String(),
			Preview:    e.Preview,
		})
	}

	for _, turn := range sess.History {
		resp.History = append(resp.History, chatTurnResponse{
			Role:    turn.Role.String(),
			Content: turn.Content,
		})
	}

	return resp
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	sess, err := s.uc.Search.Start(ctx, req.Query, req.Limit, nil)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	writeJSON(ctx, w, http.StatusCreated, toSessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := s.uc.GetSession(ctx, types.SessionID(chi.URLParam(r, "sessionID")))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	writeJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.uc.Chat == nil {
		errutil.HandleHTTP(ctx, w, goerr.New("chat is not configured"), http.StatusServiceUnavailable)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	answer, err := s.uc.Chat.Ask(ctx, types.SessionID(chi.URLParam(r, "sessionID")), req.Message)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	writeJSON(ctx, w, http.StatusOK, chatResponse{Answer: answer})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Reset(ctx, types.SessionID(chi.URLParam(r, "sessionID"))); err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrEmptyQuery),
		errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, usecase.ErrNoContext):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to encode response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	safe.Write(ctx, w, body)
}
