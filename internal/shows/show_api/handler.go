package show_api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"showbill/internal/logger"
	"showbill/internal/shows"
	"showbill/internal/web"
	"showbill/internal/web/forms"
)

type Handler struct {
	ShowService *shows.ShowService
	Renderer    *web.Renderer
	Flash       *web.Flash
	Logger      *logger.Logger
}

func NewHandler(service *shows.ShowService, renderer *web.Renderer, flash *web.Flash, log *logger.Logger) *Handler {
	return &Handler{
		ShowService: service,
		Renderer:    renderer,
		Flash:       flash,
		Logger:      log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/shows", h.ListShows)
	r.Get("/shows/create", h.NewShowForm)
	r.Post("/shows/create", h.CreateShow)
}

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ShowService.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListShows: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "shows", rows)
}

func (h *Handler) NewShowForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.HTML(w, r, http.StatusOK, "new_show", nil)
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: bad form: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}

	form, err := forms.DecodeShowForm(r.PostForm)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		h.Flash.Add(w, r, "Error when inserting Show!")
		h.Renderer.Home(w, r)
		return
	}

	show, err := form.Model()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		h.Flash.Add(w, r, "Error when inserting Show!")
		h.Renderer.Home(w, r)
		return
	}

	if err := h.ShowService.Create(r.Context(), show); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		h.Flash.Add(w, r, "Error when inserting Show!")
		h.Renderer.Home(w, r)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateShow: venueID=%d artistID=%d", show.VenueID, show.ArtistID))
	h.Flash.Add(w, r, "Show was successfully listed!")
	h.Renderer.Home(w, r)
}
