package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ProposalService/pkg/dbmetrics"
)

// TransactionManager менеджер сериализуемых транзакций поверх *sql.DB.
// Используется, когда метрики выключены.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// Транзакция передается репозиториям через контекст (dbmetrics.WithTx).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: failed to begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, plainTx{tx})

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: failed to commit transaction: %w", err)
	}

	return nil
}

// plainTx адаптирует *sql.Tx к dbmetrics.TxExecutor
type plainTx struct {
	*sql.Tx
}
