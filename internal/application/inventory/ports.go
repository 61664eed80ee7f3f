package inventory

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRepos son los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Products  repository.ProductRepository
	Documents repository.DocumentRepository
	Sequences repository.SequenceRepository
	Stock     repository.StockLevelRepository
	Moves     repository.StockMoveRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
// Es el límite de atomicidad del motor de documentos.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx TxRepos) error) error
}

// StockObserver recibe aviso después de que una validación se confirma.
// Se usa para invalidar cachés de lectura; un fallo del observador no afecta la validación.
type StockObserver interface {
	StockChanged(ctx context.Context, doc *entity.Document)
}
