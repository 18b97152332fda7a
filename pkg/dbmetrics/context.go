package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor кладёт активный исполнитель (обычно транзакцию) в контекст.
// Репозитории, вызванные с таким контекстом, выполняют свои запросы внутри
// этой транзакции.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, executor)
}

// GetExecutor возвращает исполнитель из контекста, либо fallback,
// если транзакция не открыта
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(DBExecutor)
	return ok
}
