package draft

import (
	"github.com/m04kA/SMC-ProposalService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
