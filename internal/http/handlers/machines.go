package handlers

import (
	"net/http"
	"strings"

	"laundry/internal/domain"
	"laundry/internal/http/response"
	"laundry/internal/pagination"
	"laundry/internal/services"

	"github.com/gin-gonic/gin"
)

type MachineHandler struct {
	Service services.MachineService
}

type machinePayload struct {
	ID            *int64 `json:"id"`
	Identifier    string `json:"identifier" binding:"required"`
	Type          string `json:"type" binding:"required"`
	CondominiumID int64  `json:"condominiumId"`
}

var machineFieldMessages = map[string]string{
	"Identifier": "Machine identifier must not be empty or null",
	"Type":       "Machine type must not be empty or null",
}

func (p machinePayload) toDomain() domain.Machine {
	var id int64
	if p.ID != nil {
		id = *p.ID
	}
	return domain.Machine{
		ID:            id,
		Identifier:    p.Identifier,
		Type:          p.Type,
		CondominiumID: p.CondominiumID,
	}
}

type machineResponse struct {
	ID          int64               `json:"id"`
	Identifier  string              `json:"identifier"`
	Type        string              `json:"type"`
	Condominium condominiumResponse `json:"condominium"`
}

func toMachineResponse(d services.MachineDetail) machineResponse {
	return machineResponse{
		ID:          d.Machine.ID,
		Identifier:  d.Machine.Identifier,
		Type:        d.Machine.Type,
		Condominium: toCondominiumResponse(d.Condominium),
	}
}

// POST /machines
func (h MachineHandler) Create(c *gin.Context) {
	var payload machinePayload
	if !bindJSON(c, &payload, machineFieldMessages) {
		return
	}

	detail, err := h.Service.Create(payload.toDomain())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.MachineCreated, toMachineResponse(detail))
}

// GET /machines/:id
//
// The "identifier" segment is claimed by the by-identifier lookup; the
// router cannot register a static sibling next to the :id wildcard, so
// the split happens here.
func (h MachineHandler) GetByID(c *gin.Context) {
	if c.Param("id") == "identifier" {
		h.getByIdentifier(c)
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.Service.GetByID(id)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.MachineFound, toMachineResponse(detail))
}

// GET /machines/identifier?condominiumId=&identifier=
func (h MachineHandler) getByIdentifier(c *gin.Context) {
	condominiumID, ok := intQuery(c, "condominiumId")
	if !ok {
		return
	}
	if condominiumID == nil {
		response.Error(c, response.InvalidParameter, "Required request parameter 'condominiumId' is not present")
		return
	}

	identifier := strings.TrimSpace(c.Query("identifier"))
	if identifier == "" {
		response.Error(c, response.InvalidParameter, "Required request parameter 'identifier' is not present")
		return
	}

	detail, err := h.Service.GetByIdentifier(int64(*condominiumID), identifier)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.MachineFound, toMachineResponse(detail))
}

// PUT /machines — full replacement, the body carries the id.
func (h MachineHandler) Update(c *gin.Context) {
	var payload machinePayload
	if !bindJSON(c, &payload, machineFieldMessages) {
		return
	}

	detail, err := h.Service.Update(payload.toDomain())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.MachineUpdated, toMachineResponse(detail))
}

// DELETE /machines/:id
func (h MachineHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		response.FromDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /machines
func (h MachineHandler) List(c *gin.Context) {
	req, ok := pagingFromQuery(c)
	if !ok {
		return
	}

	page, err := h.Service.List(req)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.MachineFound, pagination.ToResponse(page, toMachineResponse))
}
