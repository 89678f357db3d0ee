package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/msgs"
	"github.com/zeroonedevs/SheRisesv1/internal/utils"
)

// GetConversations godoc
// @Summary      List the caller's conversations
// @Description  Per-partner summaries with last message and unread count, most recent first
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /api/messages/conversations [get]
func (rh *RestHandler) GetConversations(ctx *gin.Context) {
	viewerID := utils.GetUserIdFromContext(ctx)
	if viewerID < 1 {
		respondUnauthorized(ctx)
		return
	}

	response, serviceErrs := rh.messagingService.ListConversations(viewerID)
	if len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

// GetConversationWithUser returns one page of history with the given user,
// oldest first, and marks messages addressed to the caller as read.
func (rh *RestHandler) GetConversationWithUser(ctx *gin.Context) {
	viewerID := utils.GetUserIdFromContext(ctx)
	if viewerID < 1 {
		respondUnauthorized(ctx)
		return
	}

	otherID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil || otherID < 1 {
		respondWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 1 {
		limit = 0 // service applies its default
	}

	response, serviceErrs := rh.messagingService.GetConversationWithUser(viewerID, uint(otherID), page, limit)
	if len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

// SendMessage godoc
// @Summary      Send a direct message
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /api/messages [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	senderID := utils.GetUserIdFromContext(ctx)
	if senderID < 1 {
		respondUnauthorized(ctx)
		return
	}

	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	message, serviceErrs := rh.messagingService.SendMessage(senderID, &body)
	if len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgMessageSentSuccessfully,
		Data:    message,
	})
}

func (rh *RestHandler) MarkMessageRead(ctx *gin.Context) {
	viewerID := utils.GetUserIdFromContext(ctx)
	if viewerID < 1 {
		respondUnauthorized(ctx)
		return
	}

	messageID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || messageID < 1 {
		respondWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	if serviceErrs := rh.messagingService.MarkMessageRead(uint(messageID), viewerID); len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageMarkedAsRead,
	})
}

func (rh *RestHandler) DeleteMessage(ctx *gin.Context) {
	viewerID := utils.GetUserIdFromContext(ctx)
	if viewerID < 1 {
		respondUnauthorized(ctx)
		return
	}

	messageID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || messageID < 1 {
		respondWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	if serviceErrs := rh.messagingService.DeleteMessage(uint(messageID), viewerID); len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageDeleted,
	})
}

func (rh *RestHandler) GetUnreadCount(ctx *gin.Context) {
	viewerID := utils.GetUserIdFromContext(ctx)
	if viewerID < 1 {
		respondUnauthorized(ctx)
		return
	}

	count, serviceErrs := rh.messagingService.UnreadCount(viewerID)
	if len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data: models.UnreadCountResponse{
			UnreadCount: count,
		},
	})
}

// UploadMessageAttachment stores a file and hands back the opaque URL a
// message attachment then carries.
func (rh *RestHandler) UploadMessageAttachment(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		respondUnauthorized(ctx)
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		respondWithErrors(ctx, []error{errs.ErrInvalidFile})
		return
	}
	defer file.Close()

	fileName := fmt.Sprintf("%d_%d%s", userID, time.Now().UnixNano(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	url, uploadErr := rh.fileManagerService.UploadMessageAttachment(fileName, file, header.Size, contentType)
	if uploadErr != nil {
		respondWithErrors(ctx, []error{uploadErr})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgFileUploadedSuccessfully,
		Data: models.AttachmentUploadResponse{
			URL:      url,
			Filename: header.Filename,
			Size:     header.Size,
		},
	})
}
