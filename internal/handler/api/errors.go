package api

import (
	"errors"
	"log/slog"
	"net/http"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// checked in order: a reservation that ran out of time may also carry the
// mark of the step that was interrupted
var errorMappings = []errorMapping{
	{commands.ErrReservationTimeout, http.StatusGatewayTimeout, "Reservation timed out, please try again"},
	{commands.ErrRoomUnavailable, http.StatusConflict, "Room is not available for the selected dates"},
	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{commands.ErrDuplicateTransactionID, http.StatusConflict, "Could not allocate a transaction id, please try again"},
	{commands.ErrPaymentInitiationFailed, http.StatusBadGateway, "Payment initiation failed"},
	{commands.ErrVerificationMismatch, http.StatusConflict, "Payment outcome does not match the gateway"},
	{commands.ErrVerificationUnavailable, http.StatusServiceUnavailable, "Payment verification is unavailable, please retry"},
	{commands.ErrSettlementPending, http.StatusServiceUnavailable, "Payment is still being processed, please retry"},
	{commands.ErrInvalidOutcome, http.StatusBadRequest, "Invalid payment outcome"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{commands.ErrBookingNotOwned, http.StatusForbidden, "You can only cancel your own bookings"},
	{queries.ErrBookingAccess, http.StatusForbidden, "Access denied"},
	{booking.ErrInvalidDateRange, http.StatusBadRequest, "Check-out date must be after check-in date"},
	{booking.ErrInvalidPrice, http.StatusBadRequest, "Price must be a positive number within the allowed range"},
	{booking.ErrInvalidAmount, http.StatusBadRequest, "Total amount is out of range"},
	{booking.ErrInvalidContact, http.StatusBadRequest, "Name, email and phone are required"},
	{booking.ErrNoLineItems, http.StatusBadRequest, "At least one room is required"},
	{booking.ErrRoomRequired, http.StatusBadRequest, "Room id is required"},
	{reqdto.ErrInvalidDate, http.StatusBadRequest, "Dates must be formatted as YYYY-MM-DD"},
}

// statusFor maps a use case error to its HTTP status and client message.
// Anything unrecognised is a 500 with a generic message.
func statusFor(err error) (int, string) {
	var bookingTransition *booking.TransitionError
	if errors.As(err, &bookingTransition) {
		return http.StatusBadRequest, bookingTransition.Error()
	}
	var paymentTransition *payment.TransitionError
	if errors.As(err, &paymentTransition) {
		return http.StatusBadRequest, paymentTransition.Error()
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func abortWithUseCaseError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"status", status,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 10))
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}
