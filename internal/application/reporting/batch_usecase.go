// Package reporting contiene los casos de uso del lote analítico: cargar un
// snapshot consistente desde el almacén y evaluar el catálogo de reportes
// sobre él.
package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
	"github.com/tu-usuario/analytics-pro/internal/domain/report"
	"github.com/tu-usuario/analytics-pro/internal/domain/repository"
	"github.com/tu-usuario/analytics-pro/pkg/logger"
)

// Outcome resultado (o error tipado) de un reporte dentro del lote.
type Outcome struct {
	ID     string
	Result *report.Result
	Err    error
}

// BatchResult resultado completo de una corrida del catálogo.
type BatchResult struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome // en orden de Seq del catálogo
}

// Failed cuenta los reportes que terminaron con error.
func (b *BatchResult) Failed() int {
	var n int
	for _, o := range b.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// BatchUseCase orquesta la corrida del catálogo completo.
//
// Los reportes son puros e independientes, así que se evalúan en paralelo
// sobre el mismo snapshot inmutable, sin locks. El fallo de un reporte nunca
// aborta a los demás.
type BatchUseCase struct {
	source repository.SnapshotSource
	engine *report.Engine
	log    *logger.Logger
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(source repository.SnapshotSource, engine *report.Engine, log *logger.Logger) *BatchUseCase {
	return &BatchUseCase{source: source, engine: engine, log: log}
}

// LoadSnapshot trae las ocho colecciones en paralelo y construye el snapshot.
// Cualquier fetch fallido aborta la carga: un snapshot parcial no es un
// snapshot.
func (uc *BatchUseCase) LoadSnapshot(ctx context.Context) (*report.Snapshot, error) {
	var (
		wg sync.WaitGroup

		customers  []entity.Customer
		products   []entity.Product
		warehouses []entity.Warehouse
		inventory  []entity.InventoryLevel
		orders     []entity.Order
		orderItems []entity.OrderItem
		shipments  []entity.Shipment
		vendors    []entity.Vendor

		errs [8]error
	)

	fetch := func(i int, f func() error) {
		defer wg.Done()
		errs[i] = f()
	}

	wg.Add(8)
	go fetch(0, func() (err error) { customers, err = uc.source.AllCustomers(ctx); return })
	go fetch(1, func() (err error) { products, err = uc.source.AllProducts(ctx); return })
	go fetch(2, func() (err error) { warehouses, err = uc.source.AllWarehouses(ctx); return })
	go fetch(3, func() (err error) { inventory, err = uc.source.AllInventory(ctx); return })
	go fetch(4, func() (err error) { orders, err = uc.source.AllOrders(ctx); return })
	go fetch(5, func() (err error) { orderItems, err = uc.source.AllOrderItems(ctx); return })
	go fetch(6, func() (err error) { shipments, err = uc.source.AllShipments(ctx); return })
	go fetch(7, func() (err error) { vendors, err = uc.source.AllVendors(ctx); return })
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("cargar snapshot: %w", err)
		}
	}

	snap := report.NewSnapshot(customers, products, warehouses, inventory, orders, orderItems, shipments, vendors)
	if n := len(snap.Warnings()); n > 0 {
		uc.log.Warn().Int("warnings", n).Msg("snapshot con referencias rotas")
	}
	return snap, nil
}

// Run carga un snapshot y evalúa el catálogo completo sobre él.
func (uc *BatchUseCase) Run(ctx context.Context) (*BatchResult, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.RunOnSnapshot(ctx, snap), nil
}

// RunOnSnapshot evalúa los 24 reportes en paralelo sobre un snapshot ya
// cargado. Si el deadline del contexto vence, los reportes pendientes quedan
// con error Timeout sin afectar a los ya completados.
func (uc *BatchUseCase) RunOnSnapshot(ctx context.Context, snap *report.Snapshot) *BatchResult {
	catalog := uc.engine.Catalog()
	batch := &BatchResult{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Outcomes:  make([]Outcome, len(catalog)),
	}

	var wg sync.WaitGroup
	wg.Add(len(catalog))
	for i, sp := range catalog {
		go func(slot int, id string) {
			defer wg.Done()
			res, err := uc.engine.Report(ctx, snap, id)
			batch.Outcomes[slot] = Outcome{ID: id, Result: res, Err: err}
		}(i, sp.ID)
	}
	wg.Wait()

	batch.FinishedAt = time.Now()
	uc.log.Info().
		Str("run_id", batch.RunID).
		Int("reports", len(batch.Outcomes)).
		Int("failed", batch.Failed()).
		Dur("elapsed", batch.FinishedAt.Sub(batch.StartedAt)).
		Msg("lote de reportes completado")
	return batch
}

// Report carga un snapshot y evalúa un único reporte por ID.
func (uc *BatchUseCase) Report(ctx context.Context, id string) (*report.Result, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.engine.Report(ctx, snap, id)
}

// Catalog expone los metadatos del catálogo para los adaptadores de salida.
func (uc *BatchUseCase) Catalog() []report.Spec { return uc.engine.Catalog() }
