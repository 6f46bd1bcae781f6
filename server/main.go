//go:build !js
// +build !js

package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/simukka/chromatic-surge/common"
)

//go:embed index.html
var indexHTML []byte

// mimeTypes maps file extensions to the Content-Type they are served with.
var mimeTypes = map[string]string{
	".html": "text/html; charset=UTF-8",
	".css":  "text/css; charset=UTF-8",
	".js":   "application/javascript; charset=UTF-8",
	".json": "application/json; charset=UTF-8",
	".map":  "application/json; charset=UTF-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".wav":  "audio/wav",
}

// staticHandler serves files under root. Paths without an extension resolve
// to the index.html inside them.
type staticHandler struct {
	root string
}

func newStaticHandler(root string) http.Handler {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &staticHandler{root: abs}
}

func send(w http.ResponseWriter, status int, body []byte, contentType string) {
	w.Header().Set("Cache-Control", "no-cache")
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	w.Write(body)
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := r.URL.Path
	if urlPath == "" {
		urlPath = "/"
	}
	filePath := filepath.Join(h.root, filepath.FromSlash(urlPath))
	if rel, err := filepath.Rel(h.root, filePath); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		send(w, http.StatusForbidden, []byte("Forbidden"), "text/plain; charset=UTF-8")
		return
	}

	info, err := os.Stat(filePath)
	switch {
	case err != nil && urlPath == "/":
		filePath = filepath.Join(h.root, "index.html")
	case err != nil && filepath.Ext(filePath) == "":
		filePath = filepath.Join(filePath, "index.html")
	case err != nil:
		send(w, http.StatusNotFound, []byte("Not Found"), "text/plain; charset=UTF-8")
		return
	case info.IsDir():
		filePath = filepath.Join(filePath, "index.html")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if urlPath == "/" {
			send(w, http.StatusOK, indexHTML, mimeTypes[".html"])
			return
		}
		send(w, http.StatusNotFound, []byte("Not Found"), "text/plain; charset=UTF-8")
		return
	}

	contentType, ok := mimeTypes[strings.ToLower(filepath.Ext(filePath))]
	if !ok {
		contentType = "application/octet-stream"
	}
	send(w, http.StatusOK, data, contentType)
}

func main() {
	host := flag.String("host", common.GetEnv("SURGE_HOST", "127.0.0.1"), "HTTP listen host")
	port := flag.Int("port", common.GetEnvInt("SURGE_PORT", 4173), "HTTP server port")
	staticDir := flag.String("static", common.GetEnv("SURGE_STATIC", "."), "Directory to serve static files from")
	flag.Parse()

	addr := fmt.Sprintf("%s:%d", *host, *port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newStaticHandler(*staticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Chromatic Surge server listening at http://%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Printf("Server stopped")
}
