package routes

import (
	"fmt"

	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

type AmenityInput struct {
	Name    string `json:"name" validate:"required,max=50"`
	IconURL string `json:"iconURL" validate:"omitempty,url"`
}

type SetCampsiteAmenitiesInput struct {
	AmenityIDs []uint `json:"amenityIDs" validate:"required"`
}

// GetAmenities lists the global amenity catalog.
func GetAmenities(ctx iris.Context) {
	var amenities []models.Amenity
	if err := storage.DB.Order("name ASC").Find(&amenities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"data": amenities})
}

// CreateAmenity adds a catalog entry. Amenities have no owner, so only staff
// may write them.
func CreateAmenity(ctx iris.Context) {
	if !authorizeWrite(ctx, access.Unowned()) {
		return
	}

	var input AmenityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	amenity := models.Amenity{
		Name:    input.Name,
		IconURL: input.IconURL,
	}

	if err := storage.DB.Create(&amenity).Error; err != nil {
		utils.CreateError(iris.StatusConflict, "Conflict", "Amenity name already exists.", ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(amenity)
}

func GetCampsiteAmenities(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var amenities []models.Amenity
	if err := storage.DB.Model(campsite).Association("Amenities").Find(&amenities); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"data": amenities})
}

// SetCampsiteAmenities replaces the campsite's amenity set with the given IDs.
func SetCampsiteAmenities(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	var input SetCampsiteAmenitiesInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var amenities []models.Amenity
	if len(input.AmenityIDs) > 0 {
		if err := storage.DB.Find(&amenities, input.AmenityIDs).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}

		foundIDs := make([]uint, 0, len(amenities))
		for _, a := range amenities {
			foundIDs = append(foundIDs, a.ID)
		}
		for _, id := range input.AmenityIDs {
			if !slices.Contains(foundIDs, id) {
				utils.CreateError(iris.StatusBadRequest, "Bad Request", fmt.Sprintf("Amenity %d does not exist.", id), ctx)
				return
			}
		}
	}

	if err := storage.DB.Model(campsite).Association("Amenities").Replace(amenities); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"data": amenities})
}
