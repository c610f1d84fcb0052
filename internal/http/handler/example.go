package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"exampleapi/internal/model"
	"exampleapi/internal/service"
)

func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil
}

// ListExamples godoc
// @Summary List examples
// @Description Returns every example in store order, without paging
// @Tags examples
// @Produce json
// @Success 200 {array} model.Example
// @Failure 500 {object} errorPayload
// @Router /examples [get]
func ListExamples(svc service.ExampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.FindAll(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateExample godoc
// @Summary Create an example
// @Tags examples
// @Accept json
// @Produce json
// @Param example body model.CreateExampleDto true "Example to create"
// @Success 201 {object} model.Example
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /examples [post]
func CreateExample(svc service.ExampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.CreateExampleDto
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		e, err := svc.Create(c.UserContext(), dto)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// GetExample godoc
// @Summary Get an example by id
// @Tags examples
// @Produce json
// @Param id path int true "Example id"
// @Success 200 {object} model.Example
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /examples/{id} [get]
func GetExample(svc service.ExampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
		}
		e, err := svc.FindOne(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// UpdateExample godoc
// @Summary Partially update an example
// @Tags examples
// @Accept json
// @Produce json
// @Param id path int true "Example id"
// @Param example body model.UpdateExampleDto true "Fields to change"
// @Success 200 {object} model.Example
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /examples/{id} [patch]
func UpdateExample(svc service.ExampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
		}
		var dto model.UpdateExampleDto
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		e, err := svc.Update(c.UserContext(), id, dto)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// DeleteExample godoc
// @Summary Delete an example
// @Tags examples
// @Param id path int true "Example id"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /examples/{id} [delete]
func DeleteExample(svc service.ExampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
		}
		if err := svc.Remove(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
