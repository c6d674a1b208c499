package mcp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/brandvault/brandvault-mcp-server/internal/protocol"
)

// NewRouter builds the HTTP front end: JSON-RPC via POST at the root,
// plus plain REST endpoints for callers that cannot speak MCP framing.
func NewRouter(server *Server, log *logrus.Entry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var rpc protocol.Request
		if err := json.NewDecoder(req.Body).Decode(&rpc); err != nil {
			writeJSON(w, protocol.Response{Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}
		resp, err := server.Handle(req.Context(), rpc)
		if err != nil {
			log.WithError(err).Error("rpc handling failed")
			writeJSON(w, WriteError(rpc.ID, -32603, "internal error", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, resp, http.StatusOK)
	})

	// Convenience surface mirroring tools/list and tools/call.
	r.Get("/list-tools", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(protocol.ListResult{Tools: server.dispatcher.Describe()})
	})

	r.Post("/call-tool", func(w http.ResponseWriter, req *http.Request) {
		var params protocol.CallParams
		if err := json.NewDecoder(req.Body).Decode(&params); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if params.Name == "" {
			http.Error(w, "tool name required", http.StatusBadRequest)
			return
		}
		result := server.dispatcher.Call(req.Context(), params.Name, params.Args)
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(result)
	})

	return r
}

// RunHTTP starts the HTTP front end and blocks.
func RunHTTP(server *Server, addr string, log *logrus.Entry) error {
	log.WithField("addr", addr).Info("HTTP MCP server listening")
	return http.ListenAndServe(addr, NewRouter(server, log))
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
