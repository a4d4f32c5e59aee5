package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgrid/panelmap/pkg/buildinfo"
	"github.com/ledgrid/panelmap/pkg/errors"
	"github.com/ledgrid/panelmap/pkg/mapper"
	"github.com/ledgrid/panelmap/pkg/observability"
	"github.com/ledgrid/panelmap/pkg/wiring"
)

// mapServer exposes a configured display over HTTP.
type mapServer struct {
	disp       *display
	reg        *mapper.Registry
	logger     *charmlog.Logger
	instanceID string
}

// router assembles the chi routes for the API.
func (s *mapServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/api/info", s.handleInfo)
	r.Get("/api/mappers", s.handleMappers)
	r.Get("/api/size", s.handleSize)
	r.Get("/api/map", s.handleMap)
	r.Get("/api/wiring.svg", s.handleWiring)
	return r
}

// observe reports requests to the logger and the HTTP hooks.
func (s *mapServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r, ww.Status(), duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration)
	})
}

func (s *mapServer) handleInfo(w http.ResponseWriter, r *http.Request) {
	vw, vh, err := s.disp.VisibleSize()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"instance": s.instanceID,
		"version":  buildinfo.Version,
		"commit":   buildinfo.Commit,
		"matrix": map[string]int{
			"width":  s.disp.cfg.Width(),
			"height": s.disp.cfg.Height(),
		},
		"visible": map[string]int{
			"width":  vw,
			"height": vh,
		},
		"mapper": s.disp.MapperSpec(),
	})
}

func (s *mapServer) handleMappers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"mappers": s.reg.Names()})
}

func (s *mapServer) handleSize(w http.ResponseWriter, r *http.Request) {
	width, height, err := s.disp.VisibleSize()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"width": width, "height": height})
}

func (s *mapServer) handleMap(w http.ResponseWriter, r *http.Request) {
	x, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "query parameter x must be an integer"))
		return
	}
	y, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "query parameter y must be an integer"))
		return
	}

	vw, vh, err := s.disp.VisibleSize()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if x < 0 || x >= vw || y < 0 || y >= vh {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"coordinate %d,%d outside visible canvas %dx%d", x, y, vw, vh))
		return
	}

	mx, my := s.disp.Map(x, y)
	s.writeJSON(w, http.StatusOK, map[string]int{"x": mx, "y": my})
}

func (s *mapServer) handleWiring(w http.ResponseWriter, r *http.Request) {
	dot := wiring.ToDOT(wiring.Layout{
		Chain:     s.disp.cfg.Matrix.Chain,
		Parallel:  s.disp.cfg.Matrix.Parallel,
		PanelCols: s.disp.cfg.Matrix.Cols,
		PanelRows: s.disp.cfg.Matrix.Rows,
	})
	svg, err := wiring.RenderSVG(dot)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *mapServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *mapServer) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidParameter,
		errors.ErrCodeInvalidTopology, errors.ErrCodeInvalidSize:
		status = http.StatusBadRequest
	case errors.ErrCodeUnknownMapper, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}

// newServeCmd runs the HTTP API.
func newServeCmd() *cobra.Command {
	flags := &displayFlags{}
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the coordinate mapping over HTTP",
		Long: `Serve the coordinate mapping over HTTP.

Endpoints:
    GET /api/info        instance, version, matrix and visible sizes
    GET /api/mappers     registered mapper names
    GET /api/size        visible canvas size
    GET /api/map?x=&y=   map one visible coordinate
    GET /api/wiring.svg  wiring diagram`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			disp, err := newDisplay(cfg, logger)
			if err != nil {
				return err
			}
			// Resolve the size up front so a bad topology fails at startup
			// instead of on the first request.
			if _, _, err := disp.VisibleSize(); err != nil {
				return err
			}

			srv := &mapServer{
				disp:       disp,
				reg:        mapper.NewRegistry(logger),
				logger:     logger,
				instanceID: uuid.NewString(),
			}

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr, "instance", srv.instanceID)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if err == http.ErrServerClosed {
					return nil
				}
				return err
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8423", "listen address")
	return cmd
}
