package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-reservation-api/internal/domain/reservation"
	reqdto "hotel-reservation-api/internal/handler/dto/request"
	resdto "hotel-reservation-api/internal/handler/dto/response"
	"hotel-reservation-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Book a reservation; check-in/check-out must be today or later and in order
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation fields"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if name, missing := req.FirstMissingField(); missing {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required field: " + name,
		})
		return
	}

	rm, err := h.reservationUseCase.CreateReservation(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidDateFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format: expected YYYY-MM-DD",
			})
		case errors.Is(err, reservation.ErrStayDatesInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-in and check-out dates must be in the future.",
			})
		case errors.Is(err, reservation.ErrCheckOutNotAfterCheckIn):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date.",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		Message:     "Reservation Booked!",
		Reservation: resdto.FromReservationRM(rm),
	})
}

// @Summary List reservations
// @Description Return every reservation in insertion order
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.ListReservationsResponse
// @Failure 500 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	rms, err := h.reservationUseCase.ListReservations(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRMs(rms))
}

// @Summary Update reservation status
// @Description Overwrite the status of a reservation; all other fields stay untouched
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} resdto.MessageResponse
// @Failure 500 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateReservationStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.reservationUseCase.UpdateReservationStatus(c.Request.Context(), id, req.StatusValue()); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation modified successfully"})
}

// @Summary Delete reservation
// @Description Physically remove a reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} resdto.MessageResponse
// @Failure 500 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	if err := h.reservationUseCase.DeleteReservation(c.Request.Context(), id); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation deleted successfully"})
}

func (h *ReservationHandler) reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return 0, false
	}
	return id, true
}

func (h *ReservationHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, resdto.MessageResponse{Message: "Reservation not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
