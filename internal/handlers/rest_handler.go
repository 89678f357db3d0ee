package handlers

import (
	"fmt"
	"log"
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

// Login godoc
// @Summary      Login user to account
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		respondWithErrors(ctx, loginErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		respondWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		respondWithErrors(ctx, registerErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

func (rh *RestHandler) GetAllUsersWithPagination(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(ctx.Query("size"))
	if err != nil || size < 1 {
		size = 10
	}

	response, serviceErrs := rh.authService.GetAllUsersWithPagination(page, size)
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

func (rh *RestHandler) GetMyProfile(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		respondUnauthorized(ctx)
		return
	}

	profile, serviceErrs := rh.authService.GetOwnProfile(userID)
	if len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    profile,
	})
}

func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		respondWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	user, serviceErrs := rh.authService.GetSingleUser(id)
	if len(serviceErrs) > 0 {
		respondWithErrors(ctx, serviceErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    user,
	})
}

func (rh *RestHandler) UploadUserProfilePhoto(ctx *gin.Context) {
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
	url, uploadErr := rh.fileManagerService.UploadUserProfilePhoto(fileName, file, header.Size, contentType)
	if uploadErr != nil {
		respondWithErrors(ctx, []error{uploadErr})
		return
	}

	if updateErrs := rh.authService.UpdateProfilePhoto(userID, url); len(updateErrs) > 0 {
		respondWithErrors(ctx, updateErrs)
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
