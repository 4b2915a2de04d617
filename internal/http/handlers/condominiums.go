package handlers

import (
	"laundry/internal/domain"
	"laundry/internal/http/response"
	"laundry/internal/pagination"
	"laundry/internal/services"

	"github.com/gin-gonic/gin"
)

type CondominiumHandler struct {
	Service services.CondominiumService
}

type condominiumPayload struct {
	ID           *int64 `json:"id"`
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	ContactPhone string `json:"contactPhone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
}

var condominiumFieldMessages = map[string]string{
	"Name":         "Condominium name must not be empty or null",
	"Address":      "Condominium Address must not be empty or null",
	"ContactPhone": "Condominium contact phone must not be empty or null",
	"Email":        "Condominium email must not be empty or null",
	"Email.email":  "Condominium email format is not valid",
}

func (p condominiumPayload) toDomain() domain.Condominium {
	var id int64
	if p.ID != nil {
		id = *p.ID
	}
	return domain.Condominium{
		ID:           id,
		Name:         p.Name,
		Address:      p.Address,
		ContactPhone: p.ContactPhone,
		Email:        p.Email,
	}
}

type condominiumResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contactPhone"`
	Email        string `json:"email"`
}

func toCondominiumResponse(c domain.Condominium) condominiumResponse {
	return condominiumResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		ContactPhone: c.ContactPhone,
		Email:        c.Email,
	}
}

// POST /condominiums
func (h CondominiumHandler) Create(c *gin.Context) {
	var payload condominiumPayload
	if !bindJSON(c, &payload, condominiumFieldMessages) {
		return
	}

	created, err := h.Service.Create(payload.toDomain())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.CondominiumCreated, toCondominiumResponse(created))
}

// GET /condominiums/:id
func (h CondominiumHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	found, err := h.Service.GetByID(id)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.CondominiumFound, toCondominiumResponse(found))
}

// GET /condominiums
func (h CondominiumHandler) List(c *gin.Context) {
	req, ok := pagingFromQuery(c)
	if !ok {
		return
	}

	page, err := h.Service.List(req)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, response.CondominiumFound, pagination.ToResponse(page, toCondominiumResponse))
}
