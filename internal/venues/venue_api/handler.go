package venue_api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"showbill/internal/logger"
	"showbill/internal/models"
	"showbill/internal/venues"
	"showbill/internal/web"
	"showbill/internal/web/forms"
)

type Handler struct {
	VenueService *venues.VenueService
	Renderer     *web.Renderer
	Flash        *web.Flash
	Logger       *logger.Logger
}

func NewHandler(service *venues.VenueService, renderer *web.Renderer, flash *web.Flash, log *logger.Logger) *Handler {
	return &Handler{
		VenueService: service,
		Renderer:     renderer,
		Flash:        flash,
		Logger:       log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/venues", h.ListVenues)
	r.Post("/venues/search", h.SearchVenues)
	r.Get("/venues/create", h.NewVenueForm)
	r.Post("/venues/create", h.CreateVenue)
	r.Get("/venues/{venueID}", h.ShowVenue)
	r.Delete("/venues/{venueID}", h.DeleteVenue)
	r.Get("/venues/{venueID}/edit", h.EditVenueForm)
	r.Post("/venues/{venueID}/edit", h.EditVenue)
}

// venueForm is the payload of the create and edit form views.
type venueForm struct {
	Venue  *models.Venue
	Action string
}

func (h *Handler) venueID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := h.VenueService.ListGroupedByArea(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListVenues: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "venues", groups)
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues: bad form: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := h.VenueService.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("SearchVenues: term=%q count=%d", term, results.Count))

	h.Renderer.HTML(w, r, http.StatusOK, "search_venues", struct {
		Results    *venues.SearchResults
		SearchTerm string
	}{results, term})
}

func (h *Handler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	page, err := h.VenueService.GetPage(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		h.Renderer.NotFound(w, r)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ShowVenue: venueID=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "show_venue", page)
}

func (h *Handler) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.HTML(w, r, http.StatusOK, "new_venue", venueForm{
		Venue:  &models.Venue{},
		Action: "/venues/create",
	})
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: bad form: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	name := r.PostFormValue("name")

	form, err := forms.DecodeVenueForm(r.PostForm)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
		h.Flash.Add(w, r, fmt.Sprintf("An error occurred. Venue %s could not be listed.", name))
		h.Renderer.Home(w, r)
		return
	}

	if err := h.VenueService.Create(r.Context(), form.Model()); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
		h.Flash.Add(w, r, fmt.Sprintf("An error occurred. Venue %s could not be listed.", name))
		h.Renderer.Home(w, r)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateVenue: listed %q", name))
	h.Flash.Add(w, r, fmt.Sprintf("Venue %s was successfully listed!", name))
	h.Renderer.Home(w, r)
}

func (h *Handler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	venue, err := h.VenueService.GetVenue(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		h.Renderer.NotFound(w, r)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditVenueForm: venueID=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	h.Renderer.HTML(w, r, http.StatusOK, "edit_venue", venueForm{
		Venue:  venue,
		Action: fmt.Sprintf("/venues/%d/edit", id),
	})
}

func (h *Handler) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	venue, err := h.VenueService.GetVenue(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		h.Renderer.NotFound(w, r)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditVenue: venueID=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditVenue: bad form: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	forms.ApplyVenueEdit(venue, r.PostForm)

	if err := h.VenueService.Update(r.Context(), venue); err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditVenue: venueID=%d: %v", id, err))
		h.Flash.Add(w, r, fmt.Sprintf("An error occurred. Venue %s could not be updated.", venue.Name))
	} else {
		h.Flash.Add(w, r, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	}
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := h.venueID(r)
	if err != nil {
		h.Flash.Add(w, r, "An error occurred. The venue could not be deleted.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	name := "The venue"
	if venue, err := h.VenueService.GetVenue(r.Context(), id); err == nil {
		name = venue.Name
	}

	if err := h.VenueService.Delete(r.Context(), id); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteVenue: venueID=%d: %v", id, err))
		h.Flash.Add(w, r, fmt.Sprintf("An error occurred. %s could not be deleted.", name))
	} else {
		h.Logger.Info("API", fmt.Sprintf("DeleteVenue: venueID=%d deleted", id))
		h.Flash.Add(w, r, fmt.Sprintf("%s was successfully deleted!", name))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
