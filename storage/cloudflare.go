package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Cloudflare Images configuration via environment variables:
// CLOUDFLARE_ACCOUNT_ID, CLOUDFLARE_API_TOKEN, CLOUDFLARE_ACCOUNT_HASH

// ErrRemoteService marks a failed call to the image-hosting service.
var ErrRemoteService = errors.New("image hosting service unavailable")

// UploadSlot is a one-time direct-upload target issued by Cloudflare Images.
type UploadSlot struct {
	ID        string `json:"id"`
	UploadURL string `json:"uploadURL"`
}

var imageClient = &http.Client{Timeout: 15 * time.Second}

// RequestUploadSlot asks Cloudflare Images for a one-time direct upload URL.
// A single attempt is made; any failure is wrapped in ErrRemoteService.
func RequestUploadSlot() (*UploadSlot, error) {
	accountID := os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	apiToken := os.Getenv("CLOUDFLARE_API_TOKEN")
	if accountID == "" || apiToken == "" {
		return nil, fmt.Errorf("%w: missing Cloudflare credentials", ErrRemoteService)
	}

	endpoint := fmt.Sprintf("https://api.cloudflare.com/client/v4/accounts/%s/images/v2/direct_upload", accountID)

	req, err := http.NewRequest(http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteService, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)

	res, err := imageClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteService, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteService, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRemoteService, res.StatusCode)
	}

	var payload struct {
		Success bool       `json:"success"`
		Result  UploadSlot `json:"result"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteService, err)
	}

	if !payload.Success {
		msg := "unknown error"
		if len(payload.Errors) > 0 {
			msg = payload.Errors[0].Message
		}
		return nil, fmt.Errorf("%w: %s", ErrRemoteService, msg)
	}

	return &payload.Result, nil
}

// DeliveryURL composes the public URL for a stored image variant.
// Pure string composition; "public" is the default variant name.
func DeliveryURL(cloudflareID, variant string) string {
	if variant == "" {
		variant = "public"
	}
	accountHash := os.Getenv("CLOUDFLARE_ACCOUNT_HASH")
	return fmt.Sprintf("https://imagedelivery.net/%s/%s/%s", accountHash, cloudflareID, variant)
}
