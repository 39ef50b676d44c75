package artist_api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"showbill/internal/artists"
	"showbill/internal/logger"
	"showbill/internal/models"
	"showbill/internal/web"
	"showbill/internal/web/forms"
)

type Handler struct {
	ArtistService *artists.ArtistService
	Renderer      *web.Renderer
	Flash         *web.Flash
	Logger        *logger.Logger
}

func NewHandler(service *artists.ArtistService, renderer *web.Renderer, flash *web.Flash, log *logger.Logger) *Handler {
	return &Handler{
		ArtistService: service,
		Renderer:      renderer,
		Flash:         flash,
		Logger:        log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/artists", h.ListArtists)
	r.Post("/artists/search", h.SearchArtists)
	r.Get("/artists/create", h.NewArtistForm)
	r.Post("/artists/create", h.CreateArtist)
	r.Get("/artists/{artistID}", h.ShowArtist)
	r.Get("/artists/{artistID}/edit", h.EditArtistForm)
	r.Post("/artists/{artistID}/edit", h.EditArtist)
}

// artistForm is the payload of the create and edit form views.
type artistForm struct {
	Artist *models.Artist
	Action string
}

func (h *Handler) artistID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.ArtistService.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListArtists: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "artists", summaries)
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists: bad form: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := h.ArtistService.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("SearchArtists: term=%q count=%d", term, results.Count))

	h.Renderer.HTML(w, r, http.StatusOK, "search_artists", struct {
		Results    *artists.SearchResults
		SearchTerm string
	}{results, term})
}

func (h *Handler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := h.artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	page, err := h.ArtistService.GetPage(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		h.Renderer.NotFound(w, r)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ShowArtist: artistID=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "show_artist", page)
}

func (h *Handler) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.HTML(w, r, http.StatusOK, "new_artist", artistForm{
		Artist: &models.Artist{},
		Action: "/artists/create",
	})
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: bad form: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	name := r.PostFormValue("name")

	form, err := forms.DecodeArtistForm(r.PostForm)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
		h.Flash.Add(w, r, fmt.Sprintf("An error occurred. Artist %s could not be listed.", name))
		h.Renderer.Home(w, r)
		return
	}

	if err := h.ArtistService.Create(r.Context(), form.Model()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
		h.Flash.Add(w, r, fmt.Sprintf("An error occurred. Artist %s could not be listed.", name))
		h.Renderer.Home(w, r)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateArtist: listed %q", name))
	h.Flash.Add(w, r, fmt.Sprintf("Artist %s was successfully listed!", name))
	h.Renderer.Home(w, r)
}

func (h *Handler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := h.artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	artist, err := h.ArtistService.GetArtist(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		h.Renderer.NotFound(w, r)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditArtistForm: artistID=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	h.Renderer.HTML(w, r, http.StatusOK, "edit_artist", artistForm{
		Artist: artist,
		Action: fmt.Sprintf("/artists/%d/edit", id),
	})
}

func (h *Handler) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, err := h.artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	artist, err := h.ArtistService.GetArtist(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		h.Renderer.NotFound(w, r)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditArtist: artistID=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditArtist: bad form: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	forms.ApplyArtistEdit(artist, r.PostForm)

	if err := h.ArtistService.Update(r.Context(), artist); err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditArtist: artistID=%d: %v", id, err))
		h.Flash.Add(w, r, fmt.Sprintf("An error occurred. Artist %s could not be updated.", artist.Name))
	} else {
		h.Flash.Add(w, r, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	}
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}
