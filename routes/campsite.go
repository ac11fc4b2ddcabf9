package routes

import (
	"encoding/json"

	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreateCampsiteInput struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Address        string   `json:"address" validate:"required,max=255"`
	Description    string   `json:"description"`
	PhoneNumber    string   `json:"phoneNumber" validate:"max=20"`
	BlogURL        string   `json:"blogURL" validate:"omitempty,url"`
	LayoutImageURL string   `json:"layoutImageURL" validate:"omitempty,url"`
	Keywords       []string `json:"keywords"`
}

type UpdateCampsiteInput struct {
	Name              string   `json:"name" validate:"omitempty,max=100"`
	Address           string   `json:"address" validate:"omitempty,max=255"`
	Description       *string  `json:"description"`
	PhoneNumber       *string  `json:"phoneNumber"`
	BlogURL           *string  `json:"blogURL"`
	LayoutImageURL    *string  `json:"layoutImageURL"`
	ThumbnailImageURL *string  `json:"thumbnailImageURL"`
	Keywords          []string `json:"keywords"`
}

// CampsiteListItem is the compact projection used by the list endpoint.
type CampsiteListItem struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	PhoneNumber       string `json:"phoneNumber"`
	ThumbnailImageURL string `json:"thumbnailImageURL"`
}

func CreateCampsite(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreateCampsiteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	keywords := input.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, _ := json.Marshal(keywords)

	campsite := models.Campsite{
		OwnerID:        userID,
		Name:           input.Name,
		Address:        input.Address,
		Description:    input.Description,
		PhoneNumber:    input.PhoneNumber,
		BlogURL:        input.BlogURL,
		LayoutImageURL: input.LayoutImageURL,
		Keywords:       keywordsJSON,
	}

	if err := storage.DB.Create(&campsite).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(campsite)
}

// GetCampsites returns the paginated compact listing.
func GetCampsites(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	if err := storage.DB.Model(&models.Campsite{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var campsites []models.Campsite
	if err := storage.DB.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&campsites).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	items := make([]CampsiteListItem, 0, len(campsites))
	for _, c := range campsites {
		items = append(items, CampsiteListItem{
			ID:                c.ID,
			Name:              c.Name,
			Address:           c.Address,
			PhoneNumber:       c.PhoneNumber,
			ThumbnailImageURL: c.ThumbnailImageURL,
		})
	}

	utils.JSONPage(ctx, items, page, perPage, total)
}

// GetCampsite returns the detail projection with owner, policy, amenities,
// sites, pricing rules and image delivery URLs.
func GetCampsite(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)
	if id == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid campsite ID.", ctx)
		return
	}

	var campsite models.Campsite
	res := storage.DB.
		Preload("Owner").
		Preload("Policy").
		Preload("Amenities").
		Preload("Sites").
		Preload("PricingRules").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Find(&campsite, id)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(campsiteDetailResponse(campsite))
}

func UpdateCampsite(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	var input UpdateCampsiteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Name != "" {
		campsite.Name = input.Name
	}
	if input.Address != "" {
		campsite.Address = input.Address
	}
	if input.Description != nil {
		campsite.Description = *input.Description
	}
	if input.PhoneNumber != nil {
		campsite.PhoneNumber = *input.PhoneNumber
	}
	if input.BlogURL != nil {
		campsite.BlogURL = *input.BlogURL
	}
	if input.LayoutImageURL != nil {
		campsite.LayoutImageURL = *input.LayoutImageURL
	}
	if input.ThumbnailImageURL != nil {
		campsite.ThumbnailImageURL = *input.ThumbnailImageURL
	}
	if input.Keywords != nil {
		keywordsJSON, _ := json.Marshal(input.Keywords)
		campsite.Keywords = keywordsJSON
	}

	if err := storage.DB.Save(campsite).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(campsite)
}

func DeleteCampsite(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	if err := storage.DB.Delete(campsite).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// GetHostCampsites lists the campsites owned by the caller.
func GetHostCampsites(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var campsites []models.Campsite
	if err := storage.DB.Where("owner_id = ?", userID).Order("created_at DESC").Find(&campsites).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"data": campsites})
}

func campsiteDetailResponse(campsite models.Campsite) iris.Map {
	images := make([]iris.Map, 0, len(campsite.Images))
	for _, img := range campsite.Images {
		images = append(images, iris.Map{
			"id":       img.ID,
			"imageURL": storage.DeliveryURL(img.CloudflareID, "public"),
			"order":    img.Order,
		})
	}

	return iris.Map{
		"id":                campsite.ID,
		"owner":             campsite.Owner.Username,
		"name":              campsite.Name,
		"address":           campsite.Address,
		"description":       campsite.Description,
		"phoneNumber":       campsite.PhoneNumber,
		"blogURL":           campsite.BlogURL,
		"layoutImageURL":    campsite.LayoutImageURL,
		"thumbnailImageURL": campsite.ThumbnailImageURL,
		"policy":            campsite.Policy,
		"amenities":         campsite.Amenities,
		"sites":             campsite.Sites,
		"pricingRules":      campsite.PricingRules,
		"images":            images,
		"createdAt":         campsite.CreatedAt,
	}
}
