package status

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	streamCheckService "github.com/isergeich22/twitch-bot/internal/service/stream_check"
)

type statusProvider interface {
	CurrentStatus() streamCheckService.Status
}

type StatusHandler struct {
	streamCheckService statusProvider
}

func NewStatusHandler(streamCheckService statusProvider) *StatusHandler {
	return &StatusHandler{
		streamCheckService: streamCheckService,
	}
}

type Response struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
}

func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	WriteSuccessData(w, r, h.streamCheckService.CurrentStatus())
}

func WriteSuccessData(w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = jsoniter.NewEncoder(w).Encode(Response{
		Data: data,
	})
}
