// Package response owns the uniform envelope every endpoint answers
// with, plus the fixed (status, label) catalog failures map onto.
package response

import (
	"errors"
	"log"
	"net/http"
	"time"

	"laundry/internal/domain"

	"github.com/gin-gonic/gin"
)

// Message pairs an HTTP status with its stable, machine-checkable
// label. The label never varies per request; the details field is the
// only free text on failure paths.
type Message struct {
	Status int
	Label  string
}

var (
	MachineCreated         = Message{http.StatusCreated, "Machine created successfully"}
	MachineFound           = Message{http.StatusOK, "Machine found"}
	MachineUpdated         = Message{http.StatusAccepted, "Machine updated successfully"}
	MachineDeleted         = Message{http.StatusNoContent, "Machine deleted successfully"}
	MachineNotFound        = Message{http.StatusNotFound, "Machine not found"}
	MachineIdentifierInUse = Message{http.StatusConflict, "Machine identifier already in use"}

	CondominiumCreated  = Message{http.StatusCreated, "Condominium created successfully"}
	CondominiumFound    = Message{http.StatusOK, "Condominium found"}
	CondominiumNotFound = Message{http.StatusNotFound, "Condominium not found"}

	InvalidParameter    = Message{http.StatusBadRequest, "Invalid parameter"}
	BadRequest          = Message{http.StatusBadRequest, http.StatusText(http.StatusBadRequest)}
	Unauthorized        = Message{http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)}
	Forbidden           = Message{http.StatusForbidden, http.StatusText(http.StatusForbidden)}
	NotFound            = Message{http.StatusNotFound, http.StatusText(http.StatusNotFound)}
	InternalServerError = Message{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
)

// Envelope wraps every response body, success or failure. The message
// is informational only; callers branch on success and the status code.
type Envelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// ErrorDetail is the envelope payload on failure paths.
type ErrorDetail struct {
	Details string `json:"details"`
	Path    string `json:"path"`
}

// Success writes a positive envelope with the message's status.
func Success(c *gin.Context, msg Message, data any) {
	c.JSON(msg.Status, Envelope{
		Success:   true,
		Message:   msg.Label,
		Timestamp: time.Now(),
		Data:      data,
	})
}

// Error writes a negative envelope; details is the human-diagnostic
// cause, the request path identifies where it happened.
func Error(c *gin.Context, msg Message, details string) {
	c.JSON(msg.Status, Envelope{
		Success:   false,
		Message:   msg.Label,
		Timestamp: time.Now(),
		Data: ErrorDetail{
			Details: details,
			Path:    c.Request.URL.Path,
		},
	})
}

// FromDomainError classifies a service failure into the catalog and
// responds. Expected outcomes (validation, not found, conflict) log at
// most a warning; anything unclassified degrades to the generic
// internal label and only the log keeps the real cause.
func FromDomainError(c *gin.Context, err error) {
	reqID := c.GetString("request_id")
	path := c.Request.URL.Path

	switch {
	case domain.IsValidation(err):
		Error(c, BadRequest, err.Error())
	case domain.IsNotFound(err):
		var nf domain.NotFoundError
		msg := NotFound
		if errors.As(err, &nf) && nf.Resource == "Machine" {
			msg = MachineNotFound
		}
		Error(c, msg, err.Error())
	case domain.IsConflict(err):
		log.Printf("[API] action=conflict request_id=%s path=%s msg=%s", reqID, path, err.Error())
		Error(c, MachineIdentifierInUse, err.Error())
	case domain.IsUnauthenticated(err):
		log.Printf("[AUTH] action=unauthenticated request_id=%s path=%s msg=%s", reqID, path, err.Error())
		Error(c, Unauthorized, err.Error())
	case domain.IsForbidden(err):
		log.Printf("[AUTH] action=forbidden request_id=%s path=%s msg=%s", reqID, path, err.Error())
		Error(c, Forbidden, err.Error())
	default:
		log.Printf("[API] action=internal_error request_id=%s path=%s err=%v", reqID, path, err)
		Error(c, InternalServerError, InternalServerError.Label)
	}
}
