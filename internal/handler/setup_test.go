package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"craftquiz/internal/cache"
	"craftquiz/internal/handler"
	"craftquiz/internal/model"
	"craftquiz/internal/router"
	"craftquiz/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

// MockQuizService is a mock implementation of service.QuizService.
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) GenerateFromPDF(ctx context.Context, path string) (model.Quiz, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Quiz), args.Error(1)
}

// newTestServer wires mocks through the real router so tests exercise the
// routes, middleware and validator the server actually runs.
func newTestServer(t *testing.T, authSvc service.AuthService, quizSvc service.QuizService, slot *cache.QuizSlot) *echo.Echo {
	t.Helper()
	if slot == nil {
		slot = cache.NewQuizSlot()
	}
	e := echo.New()
	router.Register(e,
		handler.NewAuthHandler(authSvc),
		handler.NewQuizHandler(quizSvc, slot, t.TempDir()),
	)
	return e
}

// multipartBody builds a multipart form with a single file field.
func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
