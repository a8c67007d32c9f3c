// Package web 内嵌页面模板与静态资源。
package web

import "embed"

//go:embed templates/*.tmpl
var Templates embed.FS

//go:embed static
var Static embed.FS
