package api

import (
	"net/http"

	"imodocs/internal/auth"

	"go.uber.org/zap"
)

func (d Dependencies) wsHandler(w http.ResponseWriter, r *http.Request) {
	if d.Hub == nil {
		d.Log.Error("WebSocket hub not initialized")
		http.Error(w, "WebSocket hub not initialized", http.StatusInternalServerError)
		return
	}

	userID := auth.GetUserID(r.Context())
	d.Log.Info("WebSocket connection attempt",
		zap.String("remote", r.RemoteAddr),
		zap.String("user_id", userID),
	)

	d.Hub.Serve(w, r, userID)
}
