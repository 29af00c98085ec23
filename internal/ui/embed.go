package ui

import (
	"embed"

	"github.com/labstack/echo/v4"
)

//go:embed public/*
var public embed.FS

//go:embed templates/*
var templates embed.FS

// PublicFS holds the static files served from the site root.
var PublicFS = echo.MustSubFS(public, "public")

// TemplateFS holds the HTML templates rendered by handlers.
var TemplateFS = echo.MustSubFS(templates, "templates")
