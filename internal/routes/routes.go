package routes

import (
	"github.com/jochebedafua/icd-diagnosis-api/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup registers one route per (method, path) pair.
func Setup(app *fiber.App, codeHandler *handlers.CodeHandler, categoryHandler *handlers.CategoryHandler) {
	codes := app.Group("/codes")
	{
		codes.Get("/", codeHandler.ListCodes)
		codes.Post("/", codeHandler.CreateCode)
		codes.Get("/:id", codeHandler.GetCode)
		codes.Put("/:id", codeHandler.UpdateCode)
		codes.Patch("/:id", codeHandler.PatchCode)
		codes.Delete("/:id", codeHandler.DeleteCode)
	}

	categories := app.Group("/categories")
	{
		categories.Get("/", categoryHandler.ListCategories)
		categories.Post("/", categoryHandler.CreateCategory)
		categories.Get("/:id", categoryHandler.GetCategory)
		categories.Put("/:id", categoryHandler.UpdateCategory)
		categories.Delete("/:id", categoryHandler.DeleteCategory)
	}
}
