// Package calculadora estimates cement bags for common site mixes.
package calculadora

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Supported concrete mixes (cement:sand:gravel).
const (
	Traco123 = "1:2:3"
	Traco136 = "1:3:6"
)

// Cement bags per m³ of concrete, by mix.
var sacosPorM3 = map[string]decimal.Decimal{
	Traco123: decimal.NewFromInt(7),
	Traco136: decimal.NewFromInt(4),
}

// Cement bags per m³ of plaster.
var sacosRebocoPorM3 = decimal.NewFromInt(6)

var ErrTracoDesconhecido = errors.New("traço desconhecido")

// Concreto returns the cement bags needed for volumeM3 of concrete.
func Concreto(traco string, volumeM3 decimal.Decimal) (decimal.Decimal, error) {
	fator, ok := sacosPorM3[traco]
	if !ok {
		return decimal.Zero, ErrTracoDesconhecido
	}
	return volumeM3.Mul(fator).Round(1), nil
}

// Reboco returns the cement bags needed to plaster areaM2 at espessuraCm.
func Reboco(areaM2, espessuraCm decimal.Decimal) decimal.Decimal {
	volume := areaM2.Mul(espessuraCm.Div(decimal.NewFromInt(100)))
	return volume.Mul(sacosRebocoPorM3).Round(1)
}
