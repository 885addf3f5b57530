package server

import (
	"strconv"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// NewPostForm handles GET /users/:id/posts/new
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	tags, err := s.tagRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("posts/new", fiber.Map{
		"Title": "New post",
		"User":  user,
		"Tags":  tags,
	})
}

// CreatePost handles POST /users/:id/posts/new
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	fields, err := requireForm(c, "title", "content")
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	post := &models.Post{
		Title:   fields["title"],
		Content: fields["content"],
		UserID:  user.ID,
	}
	if err := s.postRepo.Create(c.Context(), post, formTagIDs(c)); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return redirectToUser(c, user.ID)
}

// ShowPost handles GET /posts/:id
func (s *Server) ShowPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("posts/show", fiber.Map{
		"Title": post.Title,
		"Post":  post,
	})
}

// EditPostForm handles GET /posts/:id/edit
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("posts/edit", fiber.Map{
		"Title": "Edit post",
		"Post":  post,
	})
}

// UpdatePost handles POST /posts/:id/edit
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	fields, err := requireForm(c, "title", "content")
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	if err := s.postRepo.UpdateContent(c.Context(), id, fields["title"], fields["content"]); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Redirect("/posts/"+strconv.FormatUint(uint64(id), 10), fiber.StatusFound)
}

// DeletePost handles POST /posts/:id/delete
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Load first to capture the owning user for the redirect target.
	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	if err := s.postRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return redirectToUser(c, post.UserID)
}
