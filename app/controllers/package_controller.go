package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
)

// HandleListPackages lists subscription packages.
func HandleListPackages(c *fiber.Ctx) error {
	page := parsePage(c)
	repos := repository.GetGlobalRepositories()

	total, err := repos.Package.Count()
	if err != nil {
		return internalError(c, err)
	}
	pkgs, err := repos.Package.List(pageOffset(page), PageSize)
	if err != nil {
		return internalError(c, err)
	}
	return paginated(c, pkgs, total, page)
}

// HandleCreatePackage creates a package.
func HandleCreatePackage(c *fiber.Ctx) error {
	pkg := &models.Package{Active: true}
	if err := c.BodyParser(pkg); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(pkg); err != nil {
		return handleDBError(c, err)
	}
	if err := repository.GetGlobalRepositories().Package.Create(pkg); err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": pkg})
}

// HandleGetPackage returns a package by id.
func HandleGetPackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	pkg, err := repository.GetGlobalRepositories().Package.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": pkg})
}

// HandleUpdatePackage updates a package.
func HandleUpdatePackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	pkg, err := repos.Package.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(pkg); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	pkg.ID = id
	if err := validate.Struct(pkg); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Package.Update(pkg); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": pkg})
}

// HandleDeletePackage removes a package.
func HandleDeletePackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Package.GetByID(id); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Package.Delete(id); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Package deleted"})
}
