package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"craftquiz/internal/cache"
	apperrors "craftquiz/internal/errors"
	"craftquiz/internal/model"
	"craftquiz/internal/service"
)

// QuizHandler handles PDF upload and quiz retrieval.
type QuizHandler struct {
	quizService service.QuizService
	slot        *cache.QuizSlot
	uploadDir   string
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(quizService service.QuizService, slot *cache.QuizSlot, uploadDir string) *QuizHandler {
	return &QuizHandler{quizService: quizService, slot: slot, uploadDir: uploadDir}
}

// QuizResponse wraps a quiz for the HTTP surface.
type QuizResponse struct {
	Quiz model.Quiz `json:"quiz"`
}

// UploadPDF accepts a multipart "pdf" field, generates a quiz from its text
// and stores the result in the last-quiz slot.
func (h *QuizHandler) UploadPDF(c echo.Context) error {
	file, err := c.FormFile("pdf")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "No file uploaded"})
	}

	path, err := h.saveUpload(file)
	if err != nil {
		log.Printf("uploadpdf: save upload: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Failed to generate quiz"})
	}

	quiz, err := h.quizService.GenerateFromPDF(c.Request().Context(), path)
	if err != nil {
		log.Printf("uploadpdf: %v", err)
		if errors.Is(err, service.ErrQuizParse) {
			return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Failed to parse quiz JSON from AI response"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Failed to generate quiz"})
	}

	// Respond first, then overwrite the slot; the order the original used.
	respErr := c.JSON(http.StatusOK, QuizResponse{Quiz: quiz})
	h.slot.Store(quiz)
	return respErr
}

// GetQuiz returns the most recently generated quiz, or 204 when no upload
// has succeeded in this process lifetime.
func (h *QuizHandler) GetQuiz(c echo.Context) error {
	quiz, ok := h.slot.Load()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, QuizResponse{Quiz: quiz})
}

// saveUpload writes the uploaded file under the upload directory with a
// uuid-prefixed name. Cleanup of saved files is left to external policy.
func (h *QuizHandler) saveUpload(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(h.uploadDir, uuid.New().String()+"_"+filepath.Base(file.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}
