// Package web отдаёт встроенный single-page клиент (логин + дашборд).
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// Handler возвращает файловый хендлер со встроенной страницей дашборда.
func Handler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// embed гарантирует наличие каталога; сюда попадать не должны
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
