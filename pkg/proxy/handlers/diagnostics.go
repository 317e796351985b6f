package handlers

import (
	"net/http"

	"relay-hq/courier/pkg/config"
	"relay-hq/courier/pkg/proxy"
)

// DiagnosticsHandler serves GET /test, a connectivity snapshot of the
// backend and its database collaborator. Values report presence only;
// the database URL itself is never echoed back.
func DiagnosticsHandler(dbCfg *config.DatabaseConfig, store DiagnosticsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}

		resp := map[string]any{
			"backend":           "running",
			"database":          "not configured",
			"database_url":      "not set",
			"database_name":     "not set",
			"connection_status": "no store attached",
			"collections":       int64(0),
		}

		if dbCfg.URL != "" {
			resp["database_url"] = "set"
		}
		if dbCfg.Name != "" {
			resp["database_name"] = dbCfg.Name
		}

		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				resp["database"] = "disconnected"
				resp["connection_status"] = "ping failed"
			} else {
				resp["database"] = "connected"
				resp["connection_status"] = "ok"

				if count, err := store.Count(r.Context()); err == nil {
					resp["collections"] = count
				}
			}
		}

		_ = proxy.WriteJSONResponse(w, http.StatusOK, resp)
	}
}
