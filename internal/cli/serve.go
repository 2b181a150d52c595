package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/wfahy/lifeops/internal/logger"
	"github.com/wfahy/lifeops/internal/server"
	"github.com/wfahy/lifeops/internal/weather"
)

// ServeCmd runs the HTTP endpoint the e-paper display polls.
type ServeCmd struct {
	Port      int     `short:"p" help:"Port to listen on." default:"8090"`
	Host      string  `help:"Bind address." default:"127.0.0.1"`
	NoWeather bool    `help:"Skip the weather lookup entirely."`
	Lat       float64 `help:"Latitude for the weather lookup." default:"53.8"`
	Lon       float64 `help:"Longitude for the weather lookup." default:"-9.5"`
	Timezone  string  `help:"IANA timezone for dates on the display." default:"Europe/Dublin"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	pidPath := pidFilePath(ctx.DataDir)
	healthURL := fmt.Sprintf("http://%s:%d/health", c.Host, c.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := healthClient.Get(healthURL); err == nil {
		resp.Body.Close()
		if pid, pidErr := readPIDFile(pidPath); pidErr == nil {
			return fmt.Errorf("server already running (PID %d)", pid)
		}
		return fmt.Errorf("server already running on port %d", c.Port)
	}
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		logger.Warn("Unknown timezone, using local time", "timezone", c.Timezone, "error", err)
		loc = time.Local
	}

	var wc *weather.Client
	if !c.NoWeather {
		wc = weather.NewClient()
		wc.Lat = c.Lat
		wc.Lon = c.Lon
		wc.Timezone = c.Timezone
	}

	handler := server.New(server.Deps{
		Store:    ctx.Store,
		Weather:  wc,
		Location: loc,
	})

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Display endpoint listening", "addr", addr)
		fmt.Printf("Serving display summary on http://%s/api/epaper-summary\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-runCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown did not complete cleanly", "error", err)
		}
		fmt.Println("Stopped.")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "lifeops.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}
