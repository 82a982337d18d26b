package models

// ResolutionStatus is the caller-facing outcome of a barcode resolution.
// Upstream failures are collapsed into [StatusNotFound].
type ResolutionStatus string

const (
	StatusFound    ResolutionStatus = "found"
	StatusNotFound ResolutionStatus = "not_found"
)

// BarcodeResolution is the result of resolving a barcode across all tiers.
//
// When Status is [StatusFound], Food is set and Tier tells where it came
// from. For an external hit ProductURL (and ImageURL when known) let the
// caller offer to contribute the record.
type BarcodeResolution struct {
	Status     ResolutionStatus `json:"status"`
	Barcode    string           `json:"barcode"`
	Tier       Tier             `json:"tier,omitempty"`
	Food       *NutritionRecord `json:"food,omitempty"`
	ProductURL string           `json:"product_url,omitempty"`
	ImageURL   string           `json:"image_url,omitempty"`
}

// Found reports whether a record was resolved.
func (r BarcodeResolution) Found() bool {
	return r.Status == StatusFound && r.Food != nil
}

// ContributeResult is returned by a community contribution.
// Created is false when a record with the same barcode already existed; in
// that case Food is the existing, unchanged record.
type ContributeResult struct {
	Created bool            `json:"created"`
	Food    NutritionRecord `json:"food"`
}
