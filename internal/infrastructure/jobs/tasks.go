// Package jobs contiene las tareas en segundo plano (asynq) del inventario.
package jobs

import (
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault cola única de trabajos.
	QueueDefault = "default"
	// TaskLowStockScan recalcula las alertas de stock bajo.
	TaskLowStockScan = "inventory:low_stock_scan"
	// TaskKPIWarmup recalcula la caché de KPIs del dashboard.
	TaskKPIWarmup = "analytics:kpi_warmup"

	// CronLowStockScan cada 30 minutos.
	CronLowStockScan = "*/30 * * * *"
	// CronKPIWarmup cada 5 minutos.
	CronKPIWarmup = "*/5 * * * *"
)

// NewLowStockScanTask construye la tarea de escaneo. No lleva payload.
func NewLowStockScanTask() *asynq.Task {
	return asynq.NewTask(TaskLowStockScan, nil)
}

// NewKPIWarmupTask construye la tarea de warmup. No lleva payload.
func NewKPIWarmupTask() *asynq.Task {
	return asynq.NewTask(TaskKPIWarmup, nil)
}

// DefaultCron programa ambas tareas.
func DefaultCron() []CronRegistration {
	return []CronRegistration{
		{Spec: CronLowStockScan, Task: NewLowStockScanTask()},
		{Spec: CronKPIWarmup, Task: NewKPIWarmupTask()},
	}
}
