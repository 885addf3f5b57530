package server

import (
	"context"
	"strconv"
	"time"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("users/index", fiber.Map{
		"Title": "Users",
		"Users": users,
	})
}

// NewUserForm handles GET /users/new
func (s *Server) NewUserForm(c *fiber.Ctx) error {
	return c.Render("users/new", fiber.Map{
		"Title": "New user",
	})
}

// CreateUser handles POST /users/new
func (s *Server) CreateUser(c *fiber.Ctx) error {
	fields, err := requireForm(c, "first_name", "last_name")
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	imageURL := c.FormValue("image_url")
	if imageURL == "" {
		imageURL = s.config.DefaultImageURL
	}

	user := &models.User{
		FirstName: fields["first_name"],
		LastName:  fields["last_name"],
		ImageURL:  imageURL,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Redirect("/users", fiber.StatusFound)
}

// ShowUser handles GET /users/:id
func (s *Server) ShowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByIDWithPosts(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("users/show", fiber.Map{
		"Title": user.FullName(),
		"User":  user,
	})
}

// EditUserForm handles GET /users/:id/edit
func (s *Server) EditUserForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Render("users/edit", fiber.Map{
		"Title": "Edit " + user.FullName(),
		"User":  user,
	})
}

// UpdateUser handles POST /users/:id/edit
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	fields, err := requireForm(c, "first_name", "last_name")
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	user.FirstName = fields["first_name"]
	user.LastName = fields["last_name"]
	user.ImageURL = c.FormValue("image_url")
	if user.ImageURL == "" {
		user.ImageURL = s.config.DefaultImageURL
	}

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Redirect("/users", fiber.StatusFound)
}

// DeleteUser handles POST /users/:id/delete
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Redirect("/", fiber.StatusFound)
}

// redirectToUser builds the detail path for the given user ID.
func redirectToUser(c *fiber.Ctx, userID uint) error {
	return c.Redirect("/users/"+strconv.FormatUint(uint64(userID), 10), fiber.StatusFound)
}
