package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/servicegrid/match-cli/internal/engine"
	"github.com/servicegrid/match-cli/internal/model"
	"github.com/servicegrid/match-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matching API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		eng, err := buildEngine("", 0)
		if err != nil {
			return err
		}

		var st store.Store
		if cfg.Store.Record {
			st, err = openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      newRouter(eng, st),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// newRouter builds the HTTP API. A nil store disables run recording.
func newRouter(eng *engine.Engine, st store.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/v1/match", func(w http.ResponseWriter, req *http.Request) {
		var matchReq model.MatchRequest
		if err := json.NewDecoder(req.Body).Decode(&matchReq); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		start := time.Now()
		resp, err := eng.Match(req.Context(), matchReq)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		if st != nil {
			topK := len(resp.Matches)
			if matchReq.TopK != nil {
				topK = *matchReq.TopK
			}
			if err := saveRun(req.Context(), st, eng.Strategy(), topK, resp, time.Since(start)); err != nil {
				zap.L().Warn("failed to record run", zap.Error(err))
			}
		}

		writeJSON(w, http.StatusOK, resp)
	})

	return r
}

func saveRun(ctx context.Context, st store.Store, strategy string, topK int, resp *model.MatchResponse, elapsed time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return eris.Wrap(err, "serve: encode run response")
	}
	return st.SaveRun(ctx, &model.MatchRun{
		JobID:        resp.JobID,
		Strategy:     strategy,
		TopK:         topK,
		MatchesFound: resp.MatchesFound,
		Response:     string(raw),
		DurationMS:   elapsed.Milliseconds(),
	})
}

// requestLogger tags every request with a UUID and logs it on completion.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		zap.L().Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("failed to write response", zap.Error(err))
	}
}
