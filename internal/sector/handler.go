package sector

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/ankaahq/ankaa-access/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Sector, error)
	GetByID(id int64) (*Sector, error)
	Create(dto CreateSectorDTO) (*Sector, error)
	Update(id int64, dto UpdateSectorDTO) (*Sector, error)
	Delete(id int64) error
	AssignManager(sectorID, userID int64) (*Sector, error)
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

func (h *Handler) GetSectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := h.Service.GetAll()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to get sectors")
		return
	}

	resp := SectorsResponse{Sectors: make([]SectorResponse, 0, len(sectors))}
	for _, s := range sectors {
		resp.Sectors = append(resp.Sectors, s.ToResponse())
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetSector(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	s, err := h.Service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			h.WriteError(w, http.StatusNotFound, "sector not found")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.WriteJSON(w, http.StatusOK, s.ToResponse())
}

func (h *Handler) CreateSector(w http.ResponseWriter, r *http.Request) {
	var dto CreateSectorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.Service.Create(dto)
	if err != nil {
		switch err.(type) {
		case ValidationError:
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		switch err {
		case ErrInvalidPrivilege, ErrDuplicateName:
			h.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.Logger.Error("CreateSector: failed", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, s.ToResponse())
}

func (h *Handler) UpdateSector(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var dto UpdateSectorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.Service.Update(id, dto)
	if err != nil {
		switch err {
		case ErrNotFound:
			h.WriteError(w, http.StatusNotFound, "sector not found")
		case ErrInvalidPrivilege:
			h.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.Logger.Error("UpdateSector: failed", "sector_id", id, "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, s.ToResponse())
}

func (h *Handler) DeleteSector(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		if err == ErrNotFound {
			h.WriteError(w, http.StatusNotFound, "sector not found")
			return
		}
		h.Logger.Error("DeleteSector: failed", "sector_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid sector id")
		return 0, false
	}
	return id, true
}
