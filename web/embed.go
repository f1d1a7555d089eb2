// Package web holds the page template and static assets compiled into the binary.
package web

import "embed"

//go:embed templates/*.html
var TemplateFiles embed.FS

//go:embed static/*
var StaticFiles embed.FS
