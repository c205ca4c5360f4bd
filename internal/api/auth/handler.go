package auth

import "ecotrackapi/internal/api"

type Handler struct {
	*api.Handler
}
