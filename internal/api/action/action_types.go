package action

import (
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/ecoscore"
)

// ActionTypes serves the fixed category catalog so clients can prefill point
// suggestions and show expected impact.
func (h *Handler) ActionTypes(w http.ResponseWriter, r *http.Request) {

	resParams := &api.ResParams{W: w, R: r}

	catalog := make(map[string]ecoscore.ActionTypeInfo, len(ecoscore.ActionTypes()))
	for _, t := range ecoscore.ActionTypes() {
		catalog[t.String()] = ecoscore.Info(t)
	}

	resParams.ResData = catalog
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
