package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - RAG
	mux.HandleFunc("/api/chat", s.app.ChatHandler.ChatHandler)
	mux.HandleFunc("/api/upload", s.app.UploadHandler.UploadHandler)
	mux.HandleFunc("/api/systems", s.app.SystemsHandler.SystemsHandler)
	mux.HandleFunc("/api/retrieve", s.app.RetrieveHandler.RetrieveHandler)
	mux.HandleFunc("/api/status", s.app.StatusHandler.StatusHandler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
