package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAd() Ad {
	return Ad{
		Type:      "banner",
		Format:    "display",
		Placement: "top",
		Size:      "728x90",
		Priority:  5,
		Content:   "<ins></ins>",
		ClientID:  "ca-pub-123",
		SlotID:    "456",
	}
}

func TestAdValidate(t *testing.T) {
	assert.NoError(t, validAd().Validate())

	bad := validAd()
	bad.Type = "interstitial"
	assert.Error(t, bad.Validate())

	bad = validAd()
	bad.Format = "video"
	assert.Error(t, bad.Validate())

	bad = validAd()
	bad.Size = "100x100"
	assert.Error(t, bad.Validate())

	bad = validAd()
	bad.Priority = 0
	assert.Error(t, bad.Validate())
	bad.Priority = 11
	assert.Error(t, bad.Validate())

	bad = validAd()
	bad.Content = ""
	assert.Error(t, bad.Validate())
}
