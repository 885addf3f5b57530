package server

import (
	"context"
	"time"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListTags handles GET /tags
func (s *Server) ListTags(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("tags/index", fiber.Map{
		"Title": "Tags",
		"Tags":  tags,
	})
}

// NewTagForm handles GET /tags/new
func (s *Server) NewTagForm(c *fiber.Ctx) error {
	return c.Render("tags/new", fiber.Map{
		"Title": "New tag",
	})
}

// CreateTag handles POST /tags/new
func (s *Server) CreateTag(c *fiber.Ctx) error {
	fields, err := requireForm(c, "name")
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	tag := &models.Tag{Name: fields["name"]}
	if err := s.tagRepo.Create(c.Context(), tag); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Redirect("/tags", fiber.StatusFound)
}

// ShowTag handles GET /tags/:id
func (s *Server) ShowTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagRepo.GetByIDWithPosts(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("tags/show", fiber.Map{
		"Title": tag.Name,
		"Tag":   tag,
	})
}

// EditTagForm handles GET /tags/:id/edit
func (s *Server) EditTagForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("tags/edit", fiber.Map{
		"Title": "Edit " + tag.Name,
		"Tag":   tag,
	})
}

// UpdateTag handles POST /tags/:id/edit
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	fields, err := requireForm(c, "name")
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	if err := s.tagRepo.Rename(c.Context(), id, fields["name"]); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Redirect("/tags", fiber.StatusFound)
}

// DeleteTag handles POST /tags/:id/delete
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Redirect("/tags", fiber.StatusFound)
}
