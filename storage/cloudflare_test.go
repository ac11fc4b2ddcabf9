package storage

import (
	"os"
	"testing"
)

func TestDeliveryURL(t *testing.T) {
	os.Setenv("CLOUDFLARE_ACCOUNT_HASH", "abc123hash")

	got := DeliveryURL("img-42", "public")
	want := "https://imagedelivery.net/abc123hash/img-42/public"
	if got != want {
		t.Errorf("DeliveryURL = %q, want %q", got, want)
	}

	// Empty variant falls back to "public".
	if got := DeliveryURL("img-42", ""); got != want {
		t.Errorf("DeliveryURL with empty variant = %q, want %q", got, want)
	}

	if got := DeliveryURL("img-42", "thumbnail"); got != "https://imagedelivery.net/abc123hash/img-42/thumbnail" {
		t.Errorf("DeliveryURL thumbnail variant = %q", got)
	}
}
