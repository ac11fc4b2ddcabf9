package routes

import (
	"campsite-market-server/access"
	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"max=1000"`
}

type UpdateReviewInput struct {
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Content string `json:"content" validate:"max=1000"`
}

type ReviewResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"userID"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarURL"`
	Rating    int    `json:"rating"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// GetCampsiteReviews lists reviews and the average rating for a campsite.
func GetCampsiteReviews(ctx iris.Context) {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var reviews []models.Review
	if err := storage.DB.Preload("User").
		Where("campsite_id = ?", campsite.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var totalRating float64
	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		totalRating += float64(review.Rating)
		responses = append(responses, ReviewResponse{
			ID:        review.ID,
			UserID:    review.UserID,
			Username:  review.User.Username,
			AvatarURL: review.User.AvatarURL,
			Rating:    review.Rating,
			Content:   review.Content,
			CreatedAt: review.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	avgRating := 0.0
	if len(reviews) > 0 {
		avgRating = totalRating / float64(len(reviews))
	}

	ctx.JSON(iris.Map{
		"data":          responses,
		"averageRating": avgRating,
		"reviewCount":   len(reviews),
	})
}

// CreateCampsiteReview posts a review by the authenticated caller. Any
// authenticated user may review; ownership of the campsite is not required.
func CreateCampsiteReview(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return
	}

	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review := models.Review{
		UserID:     userID,
		CampsiteID: campsite.ID,
		Rating:     input.Rating,
		Content:    input.Content,
	}

	if err := storage.DB.Create(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}

// UpdateCampsiteReview edits a review. The guard runs against the review's
// own author, never the campsite owner.
func UpdateCampsiteReview(ctx iris.Context) {
	review := getCampsiteReviewByID(ctx)
	if review == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(review.UserID)) {
		return
	}

	var input UpdateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Rating != 0 {
		review.Rating = input.Rating
	}
	if input.Content != "" {
		review.Content = input.Content
	}

	if err := storage.DB.Save(review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(review)
}

func DeleteCampsiteReview(ctx iris.Context) {
	review := getCampsiteReviewByID(ctx)
	if review == nil {
		return
	}

	if !authorizeWrite(ctx, access.OwnedBy(review.UserID)) {
		return
	}

	if err := storage.DB.Delete(review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

func getCampsiteReviewByID(ctx iris.Context) *models.Review {
	campsite := getCampsiteByID(ctx)
	if campsite == nil {
		return nil
	}

	reviewID := ctx.Params().GetUintDefault("reviewID", 0)
	var review models.Review
	result := storage.DB.Where("campsite_id = ?", campsite.ID).Find(&review, reviewID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return nil
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return nil
	}

	return &review
}
