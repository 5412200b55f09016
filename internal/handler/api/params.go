package api

import (
	"net/http"
	"strconv"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// parsePage reads the from/size window parameters; omitted values fall
// back to the defaults. Aborts with 400 when a value is unusable.
func parsePage(c *gin.Context) (queries.Page, bool) {
	page := queries.DefaultPage()

	if raw := c.Query("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from parameter", nil)
			return page, false
		}
		page.From = v
	}

	if raw := c.Query("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid size parameter", nil)
			return page, false
		}
		page.Size = v
	}

	return page.Normalize(), true
}
