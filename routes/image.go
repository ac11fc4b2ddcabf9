package routes

import (
	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
)

type AddCampsiteImageInput struct {
	CloudflareID string `json:"cloudflareID" validate:"required,max=255"`
	Order        uint   `json:"order"`
}

// RequestUploadURL asks the image host for a one-time direct upload slot.
// A single attempt is made; a failure surfaces as 502.
func RequestUploadURL(ctx iris.Context) {
	slot, err := storage.RequestUploadSlot()
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadGateway, "remote_service_error", "Image hosting service unavailable.")
		return
	}

	ctx.JSON(iris.Map{
		"id":        slot.ID,
		"uploadURL": slot.UploadURL,
	})
}

func GetCampsiteImages(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var images []models.CampsiteImage
	if err := storage.DB.Where("campsite_id = ?", campsite.ID).Order(`"order" ASC`).Find(&images).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	data := make([]iris.Map, 0, len(images))
	for _, img := range images {
		data = append(data, iris.Map{
			"id":       img.ID,
			"imageURL": storage.DeliveryURL(img.CloudflareID, "public"),
			"order":    img.Order,
		})
	}

	ctx.JSON(iris.Map{"data": data})
}

// AddCampsiteImage records an image the client uploaded directly to the host.
func AddCampsiteImage(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	var input AddCampsiteImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	image := models.CampsiteImage{
		CampsiteID:   campsite.ID,
		CloudflareID: input.CloudflareID,
		Order:        input.Order,
	}

	if err := storage.DB.Create(&image).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"id":       image.ID,
		"imageURL": storage.DeliveryURL(image.CloudflareID, "public"),
		"order":    image.Order,
	})
}

func DeleteCampsiteImage(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	imageID := ctx.Params().GetUintDefault("imageID", 0)
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Delete(&models.CampsiteImage{}, imageID)
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
