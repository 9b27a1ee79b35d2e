package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/arbor-backend/internal/data/graph"
	"github.com/yungbote/arbor-backend/internal/http/response"
	pkgerrors "github.com/yungbote/arbor-backend/internal/pkg/errors"
)

// respondServiceError maps the service error taxonomy onto HTTP: invalid
// labels are the caller's fault, store failures are the backend's. Empty
// results never arrive here — they are success payloads.
func respondServiceError(c *gin.Context, err error) {
	var qerr *graph.QueryError
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.As(err, &qerr):
		response.RespondError(c, http.StatusBadGateway, "store_failure", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
