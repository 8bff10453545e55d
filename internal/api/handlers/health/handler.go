package health

import (
	"net/http"

	"github.com/m04kA/SMC-ChargingService/internal/api/handlers"
)

// Response модель ответа health-check
type Response struct {
	Status string `json:"status"`
}

// Handle GET /health
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
}
