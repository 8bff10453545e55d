package snapshot

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к Redis
	ErrConnect = errors.New("snapshot.cache: failed to connect")

	// ErrStore возвращается при ошибках чтения или записи снапшота
	ErrStore = errors.New("snapshot.cache: store error")
)
