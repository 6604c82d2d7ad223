package middleware

import (
	"fmt"
	"net/http"

	"github.com/ashlia0420/Laptop-Recommendation/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every unhandled error as a JSON body so clients
// never see echo's default HTML error page.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("HTTP error", err)
	}

	if jsonErr := c.JSON(code, map[string]string{"message": message}); jsonErr != nil {
		logger.Error("Failed to write error response", jsonErr)
	}
}
