package routes

import (
	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
)

type PolicyInput struct {
	CheckInTime     string `json:"checkInTime" validate:"required,len=5"`
	CheckOutTime    string `json:"checkOutTime" validate:"required,len=5"`
	MannerTimeStart string `json:"mannerTimeStart" validate:"omitempty,len=5"`
	MannerTimeEnd   string `json:"mannerTimeEnd" validate:"omitempty,len=5"`
}

func GetCampsitePolicy(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var policy models.Policy
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Find(&policy)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(policy)
}

// UpsertCampsitePolicy creates or replaces the campsite's single policy row.
func UpsertCampsitePolicy(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	var input PolicyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existing models.Policy
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Find(&existing)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if result.RowsAffected > 0 {
		existing.CheckInTime = input.CheckInTime
		existing.CheckOutTime = input.CheckOutTime
		existing.MannerTimeStart = input.MannerTimeStart
		existing.MannerTimeEnd = input.MannerTimeEnd

		if err := storage.DB.Save(&existing).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}

		ctx.JSON(existing)
		return
	}

	policy := models.Policy{
		CampsiteID:      campsite.ID,
		CheckInTime:     input.CheckInTime,
		CheckOutTime:    input.CheckOutTime,
		MannerTimeStart: input.MannerTimeStart,
		MannerTimeEnd:   input.MannerTimeEnd,
	}

	if err := storage.DB.Create(&policy).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(policy)
}
