package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MiniLibrary/internal/auth"
	"MiniLibrary/internal/library"
	"MiniLibrary/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20
	readyTimeout = 1 * time.Second
)

type Server struct {
	Store Store
	Log   *zap.Logger

	// Tokens guards the mutating routes; nil leaves them open.
	Tokens      *auth.TokenMaker
	WriteLimits *kit.IPRateLimiter
}

type sortReq struct {
	Key string `json:"key"`
}

type removeResp struct {
	Removed bool `json:"removed"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)

	r.Get("/products", s.list)
	r.Get("/products/count", s.count)

	r.Group(func(wr chi.Router) {
		if s.WriteLimits != nil {
			wr.Use(s.WriteLimits.Middleware)
		}
		wr.Use(auth.RequireRole(s.Tokens, auth.RoleEditor))

		wr.Post("/products", s.add)
		wr.Post("/products/sort", s.sort)
		wr.Delete("/products/{kind}/{title}", s.remove)
	})

	return r
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		s.logger().Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.logger().Error("list products failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) count(w http.ResponseWriter, r *http.Request) {
	st, err := s.Store.Stats(r.Context())
	if err != nil {
		s.logger().Error("count products failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, st)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var req library.NewProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	e, err := s.Store.Add(r.Context(), req)
	if err != nil {
		s.writeStoreError(w, r, "add product failed", err)
		return
	}

	s.logger().Info("product added",
		zap.String("kind", e.Kind.String()),
		zap.String("title", e.Title),
		zap.String("genre", e.Genre),
	)
	kit.WriteJSON(w, http.StatusCreated, e)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	kind, err := pathParam(r, "kind")
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad path", map[string]any{"param": "kind"})
		return
	}
	title, err := pathParam(r, "title")
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad path", map[string]any{"param": "title"})
		return
	}

	removed, err := s.Store.Remove(r.Context(), kind, title)
	if err != nil {
		s.writeStoreError(w, r, "remove product failed", err)
		return
	}

	if removed {
		s.logger().Info("product removed", zap.String("kind", kind), zap.String("title", title))
	}
	kit.WriteJSON(w, http.StatusOK, removeResp{Removed: removed})
}

func (s *Server) sort(w http.ResponseWriter, r *http.Request) {
	var req sortReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	products, err := s.Store.Sort(r.Context(), req.Key)
	if err != nil {
		s.writeStoreError(w, r, "sort products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, library.ErrInvalidKind):
		kit.WriteError(w, r, http.StatusBadRequest, "invalid kind", map[string]any{
			"allowed": []library.Kind{library.KindBook, library.KindJournal},
		})
	case errors.Is(err, library.ErrInvalidSortKey):
		kit.WriteError(w, r, http.StatusBadRequest, "invalid sort key", map[string]any{
			"allowed": []library.SortKey{library.SortByTitle, library.SortByPrice},
		})
	case errors.Is(err, library.ErrIncomplete):
		kit.WriteError(w, r, http.StatusBadRequest, "incomplete product", nil)
	default:
		s.logger().Error(msg, zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// pathParam decodes a URL parameter. chi matches on the escaped path when the
// request carries one (e.g. "%2F" in a title), leaving params still escaped.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
