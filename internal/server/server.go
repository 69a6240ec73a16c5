package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aerissecure/sheetjson"
	"github.com/aerissecure/sheetjson/internal/cache"
	"github.com/aerissecure/sheetjson/internal/config"
	"github.com/coder/websocket"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server exposes the converter over HTTP: POST /parse takes a multipart
// upload, GET /ws takes workbooks as binary WebSocket messages.
type Server struct {
	cfg   config.Server
	opts  sheetjson.Options
	cache *cache.Cache
	log   logrus.FieldLogger
}

// New builds a server. c may be nil to disable result caching.
func New(cfg config.Config, log logrus.FieldLogger, c *cache.Cache) *Server {
	return &Server{
		cfg: cfg.Server,
		opts: sheetjson.Options{
			EmptyStreak: cfg.Convert.EmptyStreak,
			Workers:     cfg.Convert.Workers,
			Logger:      log,
		},
		cache: c,
		log:   log,
	}
}

// Handler returns the routed handler wrapped with logging and CORS.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLogging)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)

	var parse http.Handler = http.HandlerFunc(s.handleParse)
	if s.cfg.RequestTimeout > 0 {
		parse = http.TimeoutHandler(parse, s.cfg.RequestTimeout, sheetjson.ErrorJSON(errors.New("conversion timed out")))
	}
	r.Handle("/parse", parse).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)

	return withCORS(r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr).Info("starting")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"cache":  s.cache != nil,
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("reading upload: %w", err))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("missing file field"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("reading upload: %w", err))
		return
	}
	writeDocument(w, http.StatusOK, s.convert(r.Context(), data))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.log.WithError(err).Warn("websocket accept failed")
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(s.cfg.MaxUploadBytes)

	ctx := r.Context()
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				s.log.WithError(err).Debug("websocket read ended")
			}
			return
		}
		doc := sheetjson.ErrorJSON(errors.New("expected a binary message"))
		if typ == websocket.MessageBinary {
			doc = s.convert(ctx, data)
		}
		if err := conn.Write(ctx, websocket.MessageText, []byte(doc)); err != nil {
			s.log.WithError(err).Debug("websocket write failed")
			return
		}
	}
}

// convert runs one conversion, going through the cache when configured.
// Failed conversions are never cached.
func (s *Server) convert(ctx context.Context, data []byte) string {
	var key string
	if s.cache != nil {
		key = cache.Key(data, s.fingerprint())
		doc, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.WithError(err).Warn("cache lookup failed")
		} else if ok {
			return doc
		}
	}

	start := time.Now()
	doc, err := sheetjson.XlsxToJSON(bytesReader(data), int64(len(data)), s.opts)
	if err != nil {
		s.log.WithError(err).WithField("bytes", len(data)).Warn("conversion failed")
		return sheetjson.ErrorJSON(err)
	}
	s.log.WithFields(logrus.Fields{
		"bytes":       len(data),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("converted")

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, doc); err != nil {
			s.log.WithError(err).Warn("cache store failed")
		}
	}
	return doc
}

func (s *Server) fingerprint() string {
	return fmt.Sprintf("streak=%d", s.opts.EmptyStreak)
}
