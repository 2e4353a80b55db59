package handler

import (
	"github.com/gofiber/fiber/v2"

	"mapapi/internal/service"
)

// RegisterRoutes attaches the API and probe routes to the provided Fiber app.
// deps are pinged by /health.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService, mapSvc service.MapService, deps ...Pinger) {
	app.Get("/health", HealthCheck(deps...))
	app.Get("/healthz", LivenessProbe())

	app.Post("/upload", UploadMap(mapSvc))

	app.Get("/file-exists/:filename", FileExists(docSvc))
	app.Get("/get-files", GetFiles(docSvc))
	app.Post("/save-file", SaveFile(docSvc))
	app.Get("/load-file/:filename", LoadFile(docSvc))
	app.Delete("/delete-file/:filename", DeleteFile(docSvc))
}

// RegisterStatic serves uploaded maps under /maps and the public assets at the root.
// It must be registered after the API routes. The documents directory is never exposed.
func RegisterStatic(app *fiber.App, publicDir, mapsDir string) {
	app.Static("/maps", mapsDir, fiber.Static{ByteRange: true})
	app.Static("/", publicDir, fiber.Static{Index: "index.html"})
}
