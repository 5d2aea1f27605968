package serviceorder

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	errors "github.com/ankaahq/ankaa-access/internal"
	"github.com/ankaahq/ankaa-access/internal/auth"
	"github.com/ankaahq/ankaa-access/internal/transport"
)

type ServiceAPI interface {
	Create(ctx context.Context, user *auth.User, dto CreateServiceOrderDTO) (*ServiceOrder, error)
	GetByID(user *auth.User, id int64) (*ServiceOrder, error)
	List(user *auth.User, limit, offset int) (*ServiceOrderListResponse, error)
	AllowedStatuses(user *auth.User, orderID int64) (*AllowedStatusesResponse, error)
	UpdateStatus(ctx context.Context, user *auth.User, orderID int64, dto UpdateStatusDTO) (*ServiceOrder, error)
	Cancel(ctx context.Context, user *auth.User, orderID int64) (*ServiceOrder, error)
	ApproveArtwork(ctx context.Context, user *auth.User, orderID int64) (*ServiceOrder, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateServiceOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	var dto CreateServiceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.Service.Create(r.Context(), user, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, order)
}

func (h *Handler) GetServiceOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.Service.GetByID(user, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) ListServiceOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	limit, offset := pagination(r)
	resp, err := h.Service.List(user, limit, offset)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// GetAllowedStatuses handles GET /service-orders/{id}/allowed-statuses. The
// client uses this to decide which transition buttons to render.
func (h *Handler) GetAllowedStatuses(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	resp, err := h.Service.AllowedStatuses(user, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateServiceOrderStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.Service.UpdateStatus(r.Context(), user, id, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) CancelServiceOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.Service.Cancel(r.Context(), user, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) ApproveArtworkOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.Service.ApproveArtwork(r.Context(), user, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) sessionUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return user, true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid service order id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch err {
	case ErrNotFound:
		h.HandleError(w, errors.ErrOrderNotFound)
	case ErrUnauthorized:
		h.HandleError(w, errors.ErrUnauthorizedAccess)
	case ErrForbiddenStatus:
		h.HandleError(w, errors.ErrForbiddenStatus)
	case ErrInvalidType:
		h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeInvalidType))
	case ErrInvalidStatus:
		h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeInvalidStatus))
	case ErrOrderClosed:
		h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeInvalidStatus))
	default:
		if _, ok := err.(ValidationError); ok {
			h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeValidationFailed))
			return
		}
		h.Logger.Error("service order request failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
