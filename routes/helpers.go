package routes

import (
	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
)

// getCampsiteByID loads the campsite addressed by the {id} path parameter.
// Writes the error response and returns nil when it cannot.
func getCampsiteByID(ctx iris.Context) *models.Campsite {
	id := ctx.Params().GetUintDefault("id", 0)
	if id == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid campsite ID.", ctx)
		return nil
	}

	var campsite models.Campsite
	result := storage.DB.Find(&campsite, id)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return nil
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return nil
	}

	return &campsite
}

// authorizeWrite runs the access guard for a mutation and writes the 403
// response on Deny. Handlers must return immediately when it reports false.
func authorizeWrite(ctx iris.Context, resource access.Resource) bool {
	if access.Authorize(utils.CurrentPrincipal(ctx), resource, access.ActionWrite) != access.Allow {
		utils.CreateForbidden(ctx)
		return false
	}
	return true
}
