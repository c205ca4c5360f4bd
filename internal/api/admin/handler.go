package admin

import "ecotrackapi/internal/api"

type Handler struct {
	*api.Handler
}
