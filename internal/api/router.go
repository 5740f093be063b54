package api

import "net/http"

func Router(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/health", h.Health)

	mux.HandleFunc("GET /v1/scheduler/status", h.SchedulerStatus)
	mux.HandleFunc("POST /v1/scheduler/start", h.SchedulerStart)
	mux.HandleFunc("POST /v1/scheduler/stop", h.SchedulerStop)

	mux.HandleFunc("POST /v1/auto-send/run", h.RunAutoSend)
	mux.HandleFunc("POST /v1/auto-send/test", h.ForceTest)

	mux.HandleFunc("GET /v1/messages", h.ListMessages)
	mux.HandleFunc("GET /v1/contacts/{id}/outcomes", h.ListOutcomes)
	mux.HandleFunc("POST /v1/groceries/{id}/adjust", h.AdjustGrocery)
	mux.HandleFunc("POST /v1/compose/preview", h.ComposePreview)

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("household-messaging"))
	})

	return mux
}
