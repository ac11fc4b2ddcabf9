package routes

import (
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
)

// AdminListUsers returns a paginated user listing for staff.
func AdminListUsers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	if err := storage.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var users []models.User
	if err := storage.DB.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&users).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, users, page, perPage, total)
}

// AdminDeleteReview removes any review; the staff middleware has already
// established the caller's privileges.
func AdminDeleteReview(ctx iris.Context) {
	reviewID := ctx.Params().GetUintDefault("id", 0)

	result := storage.DB.Delete(&models.Review{}, reviewID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}
