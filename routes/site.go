package routes

import (
	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
)

type SiteInput struct {
	Name      string  `json:"name" validate:"required,max=50"`
	CampType  string  `json:"campType" validate:"max=50"`
	BasePrice float64 `json:"basePrice" validate:"required,min=0"`
}

type UpdateSiteInput struct {
	Name      string   `json:"name" validate:"omitempty,max=50"`
	CampType  *string  `json:"campType"`
	BasePrice *float64 `json:"basePrice" validate:"omitempty,min=0"`
}

func GetCampsiteSites(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var sites []models.Site
	if err := storage.DB.Where("campsite_id = ?", campsite.ID).Order("name ASC").Find(&sites).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"data": sites})
}

func CreateSite(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	var input SiteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	site := models.Site{
		CampsiteID: campsite.ID,
		Name:       input.Name,
		CampType:   input.CampType,
		BasePrice:  input.BasePrice,
	}

	if err := storage.DB.Create(&site).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(site)
}

func UpdateSite(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	siteID := ctx.Params().GetUintDefault("siteID", 0)
	var site models.Site
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Find(&site, siteID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input UpdateSiteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Name != "" {
		site.Name = input.Name
	}
	if input.CampType != nil {
		site.CampType = *input.CampType
	}
	if input.BasePrice != nil {
		site.BasePrice = *input.BasePrice
	}

	if err := storage.DB.Save(&site).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(site)
}

func DeleteSite(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	siteID := ctx.Params().GetUintDefault("siteID", 0)
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Delete(&models.Site{}, siteID)
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
