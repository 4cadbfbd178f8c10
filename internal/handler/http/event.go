package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/event"
	"github.com/officemate-hq/officemate-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{eventService: eventService}
}

func (h *eventHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req event.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = claims.UserID

	result, err := h.eventService.CreateReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review submitted", result)
}

func (h *eventHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := event.Filter{}
	if v := q.Get("event_name"); v != "" {
		filter.EventName = &v
	}
	if v := q.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.eventService.ListReviews(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
