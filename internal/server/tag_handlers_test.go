package server

import (
	"net/http"
	"net/url"
	"testing"

	"blogly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTagConflictSurfacesAs409(t *testing.T) {
	mockRepo := new(MockTagRepository)
	s := &Server{config: testConfig(), tagRepo: mockRepo}

	app := s.NewApp()
	app.Post("/tags/new", s.CreateTag)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tag *models.Tag) bool {
		return tag.Name == "go"
	})).Return(models.NewConflictError("tag name already in use"))

	resp := postForm(t, app, "/tags/new", url.Values{"name": {"go"}})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdateTagRedirectsToListing(t *testing.T) {
	mockRepo := new(MockTagRepository)
	s := &Server{config: testConfig(), tagRepo: mockRepo}

	app := s.NewApp()
	app.Post("/tags/:id/edit", s.UpdateTag)

	mockRepo.On("Rename", mock.Anything, uint(4), "golang").Return(nil)

	resp := postForm(t, app, "/tags/4/edit", url.Values{"name": {"golang"}})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tags", resp.Header.Get("Location"))
	mockRepo.AssertExpectations(t)
}

func TestUpdateTagMissingName(t *testing.T) {
	mockRepo := new(MockTagRepository)
	s := &Server{config: testConfig(), tagRepo: mockRepo}

	app := s.NewApp()
	app.Post("/tags/:id/edit", s.UpdateTag)

	resp := postForm(t, app, "/tags/4/edit", url.Values{})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockRepo.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
}

func TestShowTagRendersPosts(t *testing.T) {
	mockRepo := new(MockTagRepository)
	s := &Server{config: testConfig(), tagRepo: mockRepo}

	app := s.NewApp()
	app.Get("/tags/:id", s.ShowTag)

	mockRepo.On("GetByIDWithPosts", mock.Anything, uint(1)).Return(&models.Tag{
		ID:   1,
		Name: "go",
		Posts: []models.Post{
			{ID: 1, Title: "Tagged post", User: models.User{FirstName: "Chris", LastName: "Alley"}},
		},
	}, nil)

	resp := get(t, app, "/tags/1")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "go")
	assert.Contains(t, body, "Tagged post")
}
