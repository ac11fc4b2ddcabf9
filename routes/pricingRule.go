package routes

import (
	"errors"
	"time"

	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/pricing"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
)

type PricingRuleInput struct {
	Name        string    `json:"name" validate:"required,max=100"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
	DayOfWeek   string    `json:"dayOfWeek" validate:"max=15"`
	ExtraCharge float64   `json:"extraCharge" validate:"min=0"`
}

type QuoteStayInput struct {
	SiteID   uint      `json:"siteID" validate:"required"`
	CheckIn  time.Time `json:"checkIn" validate:"required"`
	CheckOut time.Time `json:"checkOut" validate:"required"`
}

func GetCampsitePricingRules(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var rules []models.PricingRule
	if err := storage.DB.Where("campsite_id = ?", campsite.ID).Order("start_date ASC").Find(&rules).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"data": rules})
}

func CreatePricingRule(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	var input PricingRuleInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.EndDate.Before(input.StartDate) {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "endDate must not be before startDate.", ctx)
		return
	}

	rule := models.PricingRule{
		CampsiteID:  campsite.ID,
		Name:        input.Name,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		DayOfWeek:   input.DayOfWeek,
		ExtraCharge: input.ExtraCharge,
	}

	if err := storage.DB.Create(&rule).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(rule)
}

func DeletePricingRule(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(campsite.OwnerID)) {
		return
	}

	ruleID := ctx.Params().GetUintDefault("ruleID", 0)
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Delete(&models.PricingRule{}, ruleID)
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

// QuoteStay prices a stay on one of the campsite's sites. All pricing rules
// of the campsite that overlap the stay contribute their surcharge.
func QuoteStay(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var input QuoteStayInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var site models.Site
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Find(&site, input.SiteID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Site does not belong to this campsite.", ctx)
		return
	}

	// One consistent snapshot of the campsite's rules; the resolver does not
	// re-fetch.
	var rules []models.PricingRule
	if err := storage.DB.Where("campsite_id = ?", campsite.ID).Find(&rules).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	nights := pricing.StayNights(input.CheckIn, input.CheckOut)
	total, err := pricing.ComputeStayCost(site.BasePrice, nights, input.CheckIn, rules)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDateRange) {
			utils.CreateError(iris.StatusBadRequest, "Bad Request", "checkOut must be after checkIn.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"siteID":    site.ID,
		"nights":    nights,
		"basePrice": site.BasePrice,
		"totalCost": total,
	})
}
