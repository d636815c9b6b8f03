package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada reporte envuelve el
// sentinel con su identificador, de modo que el fallo de un reporte nunca
// aborta el resto del lote.
var (
	ErrDivisionByZero       = errors.New("denominador cero: métrica indefinida")
	ErrMissingReference     = errors.New("referencia a fila inexistente en el snapshot")
	ErrInvalidConfiguration = errors.New("configuración de reportes inválida")
	ErrReportTimeout        = errors.New("deadline del lote excedido")
	ErrUnknownReport        = errors.New("reporte no registrado en el catálogo")
)
