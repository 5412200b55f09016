package api

import (
	"errors"
	"log/slog"
	"net/http"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/user"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/password"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters only within a status class; the first match wins.
// Authorization failures on bookings report not-found so callers cannot
// discover other users' bookings.
var errorMappings = []errorMapping{
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrRequestNotFound, http.StatusNotFound, "Item request not found"},
	{commands.ErrOwnItemBooking, http.StatusNotFound, "Item not found"},
	{commands.ErrBookerResolve, http.StatusNotFound, "Booking not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrNotBookingParty, http.StatusNotFound, "Booking not found"},
	{queries.ErrRequestNotFound, http.StatusNotFound, "Item request not found"},

	{commands.ErrItemUnavailable, http.StatusBadRequest, "Item not available for booking"},
	{commands.ErrCommentNotAllowed, http.StatusBadRequest, "No finished booking to comment on"},
	{commands.ErrBlankRequestDescription, http.StatusBadRequest, "Description cannot be blank"},
	{booking.ErrZeroLengthPeriod, http.StatusBadRequest, "Booking period cannot be empty"},
	{booking.ErrInvertedPeriod, http.StatusBadRequest, "Booking end must be after start"},
	{booking.ErrAlreadyResolved, http.StatusBadRequest, "Booking status has already been set"},
	{item.ErrBlankComment, http.StatusBadRequest, "Comment text cannot be blank"},
	{user.ErrBlankName, http.StatusBadRequest, "Name cannot be blank"},
	{user.ErrInvalidEmail, http.StatusBadRequest, "Invalid email address"},
	{password.ErrInvalidPassword, http.StatusBadRequest, "Invalid password"},

	{commands.ErrItemNotOwned, http.StatusForbidden, "Only the owner may edit an item"},
	{commands.ErrDuplicateEmail, http.StatusConflict, "Email already registered"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
}

func abortWithDomainError(c *gin.Context, err error) {
	var unknownFilter *booking.UnknownFilterError
	if errors.As(err, &unknownFilter) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, unknownFilter.Error(), nil)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}

	slog.Error("unhandled usecase error", "error", err.Error(), "path", c.Request.URL.Path)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}
