package handlers

import (
	"StuffKeeper/internal/model/view"
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// collectionService: то, что ResourceHandler требует от сервиса ресурса.
type collectionService[V any] interface {
	List(ctx context.Context, page int) (view.Page[V], error)
	Search(ctx context.Context, term string) (view.Page[V], error)
	Create(ctx context.Context, in *V) (*V, error)
	Read(ctx context.Context, id string) (*V, error)
	Update(ctx context.Context, id string, in *V) (*V, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler обслуживает одну коллекцию: список/поиск, создание, чтение, изменение, удаление.
type ResourceHandler[V any] struct {
	Service  collectionService[V]
	Errors   *ErrorTranslator
	BasePath string
	// IDOf нужен для заголовка Location у созданной записи.
	IDOf func(*V) string
}

func NewResourceHandler[V any](svc collectionService[V], errs *ErrorTranslator, basePath string, idOf func(*V) string) *ResourceHandler[V] {
	return &ResourceHandler[V]{Service: svc, Errors: errs, BasePath: basePath, IDOf: idOf}
}

// Routes монтирует чтение публично, а изменения: за protect.
func (h *ResourceHandler[V]) Routes(protect func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Read)
	r.Group(func(r chi.Router) {
		r.Use(protect)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

// List: GET ?page=N&search=S. Непустой search важнее page.
func (h *ResourceHandler[V]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		page view.Page[V]
		err  error
	)
	if search := q.Get("search"); strings.TrimSpace(search) != "" {
		page, err = h.Service.Search(r.Context(), search)
	} else {
		// нечисловой page трактуется как первая страница
		n, _ := strconv.Atoi(q.Get("page"))
		page, err = h.Service.List(r.Context(), n)
	}
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	render.JSON(w, r, page)
}

func (h *ResourceHandler[V]) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	out, err := h.Service.Create(r.Context(), in)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	w.Header().Set("Location", strings.TrimRight(h.BasePath, "/")+"/"+h.IDOf(out))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, out)
}

func (h *ResourceHandler[V]) Read(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Read(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	render.JSON(w, r, out)
}

func (h *ResourceHandler[V]) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	out, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	render.JSON(w, r, out)
}

func (h *ResourceHandler[V]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ResourceHandler[V]) decode(w http.ResponseWriter, r *http.Request) (*V, bool) {
	in := new(V)
	if err := render.DecodeJSON(r.Body, in); err != nil {
		h.Errors.Write(w, r, err)
		return nil, false
	}
	return in, true
}
