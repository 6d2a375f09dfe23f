// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// AssetKind is the closed set of asset categories a will can dispose of.
type AssetKind string

const (
	AssetRealProperty AssetKind = "real_property"
	AssetBankAccount  AssetKind = "bank_account"
	AssetVehicle      AssetKind = "vehicle"
	AssetBusiness     AssetKind = "business"
	AssetDigital      AssetKind = "digital"
	AssetOther        AssetKind = "other"
)

// validAssetKinds is the accepted AssetKind set.
var validAssetKinds = map[AssetKind]bool{
	AssetRealProperty: true,
	AssetBankAccount:  true,
	AssetVehicle:      true,
	AssetBusiness:     true,
	AssetDigital:      true,
	AssetOther:        true,
}

// PropertyDetails carries the fields required for a real-property asset.
type PropertyDetails struct {
	// Address is the full property address with postcode and state.
	Address string `json:"address" yaml:"address"`

	// TitleRef is the land title reference (e.g. "HS(D) 12345 PT 67890").
	TitleRef string `json:"title_ref" yaml:"title_ref"`

	// OwnershipType records sole, joint tenancy, or tenancy in common.
	// Joint-tenancy property passes by survivorship, not by will.
	OwnershipType string `json:"ownership_type,omitempty" yaml:"ownership_type,omitempty"`
}

// AccountDetails carries the fields required for a bank-account asset.
type AccountDetails struct {
	Institution string `json:"institution" yaml:"institution"`
	Number      string `json:"number" yaml:"number"`
}

// VehicleDetails carries the fields required for a vehicle asset.
type VehicleDetails struct {
	RegistrationNo string `json:"registration_no" yaml:"registration_no"`
	MakeModel      string `json:"make_model,omitempty" yaml:"make_model,omitempty"`
}

// BusinessDetails carries the fields required for a business-interest asset.
type BusinessDetails struct {
	CompanyName    string `json:"company_name" yaml:"company_name"`
	RegistrationNo string `json:"registration_no" yaml:"registration_no"`

	// OwnershipPct is the testator's shareholding percentage (0 means
	// unstated).
	OwnershipPct float64 `json:"ownership_pct,omitempty" yaml:"ownership_pct,omitempty"`
}

// DigitalDetails carries the fields required for a digital asset.
type DigitalDetails struct {
	// AccessLocation records where access credentials are stored.
	AccessLocation string `json:"access_location" yaml:"access_location"`
}

// Asset is a tagged union: Kind selects which detail struct must be
// populated, and Validate checks the pairing exhaustively so a malformed
// asset is caught at construction rather than during clause generation.
type Asset struct {
	// ID identifies the asset within a will; bequests reference it.
	ID string `json:"id" yaml:"id"`

	Kind        AssetKind `json:"kind" yaml:"kind"`
	Description string    `json:"description" yaml:"description"`

	// EstimatedValue in MYR, informational only.
	EstimatedValue float64 `json:"estimated_value,omitempty" yaml:"estimated_value,omitempty"`

	Property *PropertyDetails `json:"property,omitempty" yaml:"property,omitempty"`
	Account  *AccountDetails  `json:"account,omitempty" yaml:"account,omitempty"`
	Vehicle  *VehicleDetails  `json:"vehicle,omitempty" yaml:"vehicle,omitempty"`
	Business *BusinessDetails `json:"business,omitempty" yaml:"business,omitempty"`
	Digital  *DigitalDetails  `json:"digital,omitempty" yaml:"digital,omitempty"`
}

// Validate checks that the asset names a known kind, that the detail struct
// matching the kind is present with its required fields, and that no
// foreign detail struct is attached.
func (a Asset) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("asset has no id")
	}
	if !validAssetKinds[a.Kind] {
		return fmt.Errorf("asset %s: unknown kind %q", a.ID, a.Kind)
	}
	if err := a.validateDetails(); err != nil {
		return fmt.Errorf("asset %s: %w", a.ID, err)
	}
	return nil
}

func (a Asset) validateDetails() error {
	// Reject details belonging to a different kind.
	attached := map[AssetKind]bool{
		AssetRealProperty: a.Property != nil,
		AssetBankAccount:  a.Account != nil,
		AssetVehicle:      a.Vehicle != nil,
		AssetBusiness:     a.Business != nil,
		AssetDigital:      a.Digital != nil,
	}
	for kind, present := range attached {
		if present && kind != a.Kind {
			return fmt.Errorf("%s details attached to %s asset", kind, a.Kind)
		}
	}

	switch a.Kind {
	case AssetRealProperty:
		if a.Property == nil || a.Property.Address == "" || a.Property.TitleRef == "" {
			return fmt.Errorf("real property requires address and title_ref")
		}
	case AssetBankAccount:
		if a.Account == nil || a.Account.Institution == "" || a.Account.Number == "" {
			return fmt.Errorf("bank account requires institution and number")
		}
	case AssetVehicle:
		if a.Vehicle == nil || a.Vehicle.RegistrationNo == "" {
			return fmt.Errorf("vehicle requires registration_no")
		}
	case AssetBusiness:
		if a.Business == nil || a.Business.CompanyName == "" || a.Business.RegistrationNo == "" {
			return fmt.Errorf("business requires company_name and registration_no")
		}
	case AssetDigital:
		if a.Digital == nil || a.Digital.AccessLocation == "" {
			return fmt.Errorf("digital asset requires access_location")
		}
	case AssetOther:
		if a.Description == "" {
			return fmt.Errorf("other asset requires a description")
		}
	}
	return nil
}
