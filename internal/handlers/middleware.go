package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/msgs"
	"github.com/zeroonedevs/SheRisesv1/internal/utils"
)

// MustAuthenticateMiddleware resolves the caller's identity from the bearer
// token and stores it in the context. Everything behind it trusts user_id
// unconditionally.
func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if strings.Contains(jwtToken, "Bearer") {
			jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
		}

		if jwtToken == "" {
			respondUnauthorized(ctx)
			return
		}

		claims, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		ctx.Set("user_id", claims.ID)
		ctx.Set("user_email", claims.Email)
		ctx.Set("user_first_name", claims.FirstName)
		ctx.Set("user_last_name", claims.LastName)
		ctx.Set("authenticated", true)
		ctx.Next()
	}
}
