package handlers

import (
	"net/http"
	"strings"

	"kd_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDHeader scopes every request to one account's data. There is no auth
// layer in front of this service yet; the gateway terminates authentication
// and forwards the resolved user id.
const UserIDHeader = "X-User-ID"

var errMissingUserID = pkg.NewDomainErrorSimple("MISSING_USER_ID", "X-User-ID header is required", http.StatusBadRequest)

// userID extracts the scoping user id, writing the error response itself when
// the header is absent.
func userID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(UserIDHeader))
	if id == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return "", false
	}
	return id, true
}
