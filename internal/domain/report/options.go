package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/analytics-pro/internal/domain"
)

// Valores por defecto de la superficie de configuración. Nunca se usan como
// literales dentro del catálogo; siempre viajan en Options.
const (
	DefaultSLADays         = 5  // máximo de días despacho→entrega dentro del acuerdo de servicio
	DefaultTopN            = 10 // filas en los rankings de SKUs
	DefaultSlowMovingUnits = 10 // un SKU con menos unidades vendidas se considera de baja rotación
)

// DefaultHighValueThreshold umbral de LTV para clientes de alto valor (estricto >).
var DefaultHighValueThreshold = decimal.NewFromInt(50_000)

// Options parametriza el motor de reportes. El cero value no es válido;
// construir siempre con DefaultOptions() y sobreescribir lo necesario.
type Options struct {
	SLADays            int             // umbral de entrega a tiempo (días)
	HighValueThreshold decimal.Decimal // LTV mínimo (exclusivo) para el reporte de clientes de alto valor
	TopN               int             // límite de filas en rankings
	SlowMovingUnits    int64           // umbral de unidades para baja rotación
	Strict             bool            // true: una referencia rota aborta el reporte en lugar de degradar a warning
}

// DefaultOptions devuelve la configuración por defecto del catálogo.
func DefaultOptions() Options {
	return Options{
		SLADays:            DefaultSLADays,
		HighValueThreshold: DefaultHighValueThreshold,
		TopN:               DefaultTopN,
		SlowMovingUnits:    DefaultSlowMovingUnits,
	}
}

// Validate rechaza configuraciones sin sentido antes de cualquier cómputo.
func (o Options) Validate() error {
	if o.SLADays < 0 {
		return fmt.Errorf("%w: sla_days negativo (%d)", domain.ErrInvalidConfiguration, o.SLADays)
	}
	if o.TopN <= 0 {
		return fmt.Errorf("%w: top_n debe ser positivo (%d)", domain.ErrInvalidConfiguration, o.TopN)
	}
	if o.HighValueThreshold.IsNegative() {
		return fmt.Errorf("%w: umbral de alto valor negativo (%s)", domain.ErrInvalidConfiguration, o.HighValueThreshold)
	}
	if o.SlowMovingUnits < 0 {
		return fmt.Errorf("%w: umbral de baja rotación negativo (%d)", domain.ErrInvalidConfiguration, o.SlowMovingUnits)
	}
	return nil
}
