package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/msgs"
	"github.com/zeroonedevs/SheRisesv1/internal/services"
)

type RestHandler struct {
	authService        *services.AuthenticationService
	messagingService   *services.MessagingService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	messagingService *services.MessagingService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		authService:        authService,
		messagingService:   messagingService,
		fileManagerService: fileManagerService,
	}
}

// statusForErrors maps the service error taxonomy onto HTTP statuses:
// validation 400, unknown entity 404, wrong party 403, everything else 500.
func statusForErrors(errors []error) int {
	for _, err := range errors {
		switch err {
		case errs.ErrMessageNotFound, errs.ErrRecipientNotFound, errs.ErrUserNotFound:
			return http.StatusNotFound
		case errs.ErrNotRecipient, errs.ErrNotParticipant:
			return http.StatusForbidden
		case errs.ErrInvalidRequestBody, errs.ErrInvalidParams, errs.ErrEmptyContent,
			errs.ErrSelfMessage, errs.ErrInvalidMessageKind, errs.ErrInvalidAttachment,
			errs.ErrUserAlreadyExists, errs.ErrWrongPassword, errs.ErrInvalidEmail,
			errs.ErrInvalidPassword, errs.ErrInvalidUser, errs.ErrFirstName,
			errs.ErrLastName, errs.ErrInvalidPageOrSize, errs.ErrInvalidFile:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func respondWithErrors(ctx *gin.Context, errors []error) {
	status := statusForErrors(errors)
	if status == http.StatusInternalServerError {
		// Store failures are logged in full and answered generically.
		log.Println("Internal error:", errors)
		ctx.AbortWithStatusJSON(status, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
		})
		return
	}
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  errors,
	})
}

func respondUnauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  []error{errs.ErrUnauthorized},
	})
}
