package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"blogly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestShowPost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	s := &Server{config: testConfig(), postRepo: mockRepo}

	app := s.NewApp()
	app.Get("/posts/:id", s.ShowPost)

	tests := []struct {
		name           string
		postIDParam    string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "Success",
			postIDParam: "1",
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Post{
					ID:        1,
					Title:     "First post",
					Content:   "Hello",
					UserID:    1,
					User:      models.User{ID: 1, FirstName: "Chris", LastName: "Alley"},
					CreatedAt: time.Now(),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			postIDParam:    "zero",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Not Found",
			postIDParam: "42",
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, uint(42)).
					Return(nil, models.NewNotFoundError("Post", 42))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/posts/"+tt.postIDParam, nil)
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreatePostPassesSelectedTags(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockPosts := new(MockPostRepository)
	s := &Server{config: testConfig(), userRepo: mockUsers, postRepo: mockPosts}

	app := s.NewApp()
	app.Post("/users/:id/posts/new", s.CreatePost)

	mockUsers.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, FirstName: "Chris", LastName: "Alley"}, nil)
	mockPosts.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.Title == "First post" && p.UserID == uint(1)
	}), []uint{2, 5}).Return(nil)

	resp := postForm(t, app, "/users/1/posts/new", url.Values{
		"title":   {"First post"},
		"content": {"Hello"},
		"tags":    {"2", "5"},
	})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/1", resp.Header.Get("Location"))
	mockPosts.AssertExpectations(t)
}

func TestCreatePostMissingTitle(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockPosts := new(MockPostRepository)
	s := &Server{config: testConfig(), userRepo: mockUsers, postRepo: mockPosts}

	app := s.NewApp()
	app.Post("/users/:id/posts/new", s.CreatePost)

	mockUsers.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1}, nil)

	resp := postForm(t, app, "/users/1/posts/new", url.Values{"content": {"Hello"}})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockPosts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePostRedirectsToOwningUser(t *testing.T) {
	mockRepo := new(MockPostRepository)
	s := &Server{config: testConfig(), postRepo: mockRepo}

	app := s.NewApp()
	app.Post("/posts/:id/delete", s.DeletePost)

	mockRepo.On("GetByID", mock.Anything, uint(3)).
		Return(&models.Post{ID: 3, UserID: 8}, nil)
	mockRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

	resp := postForm(t, app, "/posts/3/delete", url.Values{})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/8", resp.Header.Get("Location"))
}
