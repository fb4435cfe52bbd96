// Package migrations встраивает SQL-миграции в бинарник, чтобы накатывать
// схему без внешних файлов.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
