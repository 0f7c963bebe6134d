package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	reservations  commands.ReservationCommands
	cancellations commands.CancellationCommands
	q             queries.BookingQueries
}

func NewBookingHandler(
	reservations commands.ReservationCommands,
	cancellations commands.CancellationCommands,
	q queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		reservations:  reservations,
		cancellations: cancellations,
		q:             q,
	}
}

// @Summary Reserve rooms
// @Description Create a pending booking and start the payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.Envelope{data=resdto.ReserveResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.reservations.Reserve(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(http.StatusOK, "Booking created, proceed to payment", resdto.FromReserveResult(result)))
}

// @Summary Cancel booking
// @Description Staff cancel; the payment is flagged for refund
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.CancelResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	result, err := h.cancellations.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(http.StatusOK, "Booking cancelled", resdto.FromCancelResult(result)))
}

// @Summary Request cancellation
// @Description Guest asks staff to cancel a confirmed booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingStatusResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/cancel-request [post]
func (h *BookingHandler) RequestCancellation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	b, err := h.cancellations.RequestCancellation(c.Request.Context(), id, userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(http.StatusOK, "Cancellation requested", resdto.FromBooking(b)))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, actorID, role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(http.StatusOK, "", resdto.FromBookingView(view)))
}

// @Summary List bookings
// @Description Staff listing with status filter and search on contact fields or transaction id
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param searchTerm query string false "Search term"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} resdto.Envelope{data=[]resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, meta, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Paged(http.StatusOK, "", meta, resdto.FromBookingViews(views)))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.BookingResponse}
// @Failure 401 {object} httperr.Response
// @Router /api/users/me/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(http.StatusOK, "", resdto.FromBookingViews(views)))
}

// @Summary Booked dates of a room
// @Description Nights from today onward that are held by pending or booked reservations
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookedDatesResponse}
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/{roomId}/booked-dates [get]
func (h *BookingHandler) BookedDates(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room id", nil)
		return
	}

	nights, err := h.q.BookedDates(c.Request.Context(), roomID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(http.StatusOK, "", resdto.FromBookedDates(roomID.String(), nights)))
}
