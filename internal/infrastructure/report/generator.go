// Package report implementa las descargas del portal: planilla CSV,
// export XML y el reporte PDF consolidado.
package report

import "github.com/delp/portal-notas-api/internal/application/ports"

// Verificar en tiempo de compilación que Generator implementa ReportGenerator.
var _ ports.ReportGenerator = (*Generator)(nil)

// Generator agrupa los tres renderizadores detrás del puerto.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }
