package dto

import "github.com/shopspring/decimal"

type ConcretoRequest struct {
	Traco    string          `json:"traco"     validate:"required,oneof=1:2:3 1:3:6"`
	VolumeM3 decimal.Decimal `json:"volume_m3" validate:"gt=0"`
}

type RebocoRequest struct {
	AreaM2      decimal.Decimal `json:"area_m2"      validate:"gt=0"`
	EspessuraCm decimal.Decimal `json:"espessura_cm" validate:"gt=0"`
}

type CalculoResponse struct {
	Sacos decimal.Decimal `json:"sacos"`
}
