package handlers

import (
	"StuffKeeper/internal/service"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GenericErrorMessage отдаётся вместо текста ошибки в production.
const GenericErrorMessage = "An error occured. Please try again later."

// ErrorResponse: тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorTranslator превращает ошибки сервисов в HTTP-ответы.
type ErrorTranslator struct {
	Production bool
	Logger     *zap.SugaredLogger
}

func NewErrorTranslator(production bool, logger *zap.SugaredLogger) *ErrorTranslator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ErrorTranslator{Production: production, Logger: logger}
}

// Translate возвращает статус и тело для err. Для nil: 200 без тела.
// Отсутствующий ресурс: 404 с исходным сообщением, всё остальное: 400,
// текст которого в production заменяется общим.
func (t *ErrorTranslator) Translate(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	var nf *service.NotFoundError
	if errors.As(err, &nf) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, &ErrorResponse{Error: err.Error()}
	}

	if t.Production {
		return http.StatusBadRequest, &ErrorResponse{Error: GenericErrorMessage}
	}
	return http.StatusBadRequest, &ErrorResponse{Error: err.Error()}
}

// Write логирует err и пишет переведённый ответ.
func (t *ErrorTranslator) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, body := t.Translate(err)
	if body == nil {
		w.WriteHeader(status)
		return
	}

	t.Logger.Errorw("request failed",
		"error", err,
		"status", status,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
	)

	render.Status(r, status)
	render.JSON(w, r, body)
}
