package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"trackr-engine/internal/config"
	"trackr-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setRendererTokenReq struct {
	Token string `json:"token"`
}

func (h SecretsHandler) SetRendererToken(w http.ResponseWriter, r *http.Request) {
	var req setRendererTokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.SetRendererToken(secrets.RendererKeyringAccount(cfg), req.Token); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", "failed to store token: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
