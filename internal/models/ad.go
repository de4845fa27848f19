package models

import (
	"encoding/json"
	"time"
)

type Ad struct {
	ID         int64     `json:"id"`
	VendorID   int64     `json:"vendor_id"`
	LocationID string    `json:"location_id"`
	AdCode     string    `json:"ad_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	VendorName string    `json:"vendor_name,omitempty"`
}

type AdEntry struct {
	LocationID string `json:"locationId"`
	AdCode     string `json:"adCode"`
}

// SaveAdsRequest is the body of POST /api/ads. AdEntries stays raw so the
// service can tell a missing field from a non-array one.
type SaveAdsRequest struct {
	VendorID  FlexInt         `json:"vendorId"`
	AdEntries json.RawMessage `json:"adEntries"`
}
