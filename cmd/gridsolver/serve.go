package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/gridsolver/internal/adapters/http"
	"svw.info/gridsolver/internal/hint"
	"svw.info/gridsolver/internal/infrastructure/storage"
	"svw.info/gridsolver/internal/library"
	"svw.info/gridsolver/internal/usecase"
	"svw.info/gridsolver/internal/validator"
	"svw.info/gridsolver/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func serveCmd() *cobra.Command {
	var (
		addr       string
		persist    string
		levelStr   string
		solverKind string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: parseLevel(levelStr),
			}))
			if err := os.MkdirAll(persist, 0o755); err != nil {
				return err
			}

			s := newSolver(solverKind)
			lib, err := library.New()
			if err != nil {
				return err
			}

			// Wire providers → use cases → HTTP adapter
			v := validator.New()
			hin := hint.New(s)
			st := storage.NewFS(persist)
			uc := usecase.NewService(s, v, hin, lib, st)
			h := httpadapter.New(uc)

			tmpl := web.Templates()

			mux := http.NewServeMux()
			mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
			mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
					http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
				}
			})
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persist, "solver", solverKind)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().StringVar(&solverKind, "solver", "mrv", "solver to use: mrv|sat")
	return cmd
}
