// Package handler exposes the HTTP handlers for both services.  This file
// implements the cafe directory API.  Every response is a JSON envelope with
// exactly one top-level key: "cafe", "cafes", "response" or "error", never
// mixed.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-cafe-services/internal/model"
	"github.com/iliyamo/movie-cafe-services/internal/repository"
)

const cafesEmptyMsg = "Sorry, we don't have any cafes at the moment."

// CafeHandler bundles the dependencies of the cafe API endpoints.
type CafeHandler struct {
	CafeRepo *repository.CafeRepo
}

// NewCafeHandler constructs a CafeHandler and panics if the repository is nil.
func NewCafeHandler(repo *repository.CafeRepo) *CafeHandler {
	if repo == nil {
		panic("nil repository passed to NewCafeHandler")
	}
	return &CafeHandler{CafeRepo: repo}
}

// errJSON writes the API's error envelope: {"error": {<title>: <message>}}.
func errJSON(c echo.Context, status int, title, msg string) error {
	return c.JSON(status, map[string]any{
		"error": map[string]string{title: msg},
	})
}

// okJSON writes the API's success envelope: {"response": {"success": <message>}}.
func okJSON(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, map[string]any{
		"response": map[string]string{"success": msg},
	})
}

// Index handles GET / and lists the available endpoints.
func (h *CafeHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"endpoints": []string{
			"GET /random", "GET /all", "GET /search?loc=", "GET /search_id?id=",
			"POST /add", "PATCH /update-price/:id", "DELETE /delete/:id",
		},
	})
}

// Random handles GET /random and returns one cafe chosen uniformly at random.
func (h *CafeHandler) Random(c echo.Context) error {
	cafe, err := h.CafeRepo.PickRandom(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoCafes) {
			return errJSON(c, http.StatusNotFound, "Not Found", cafesEmptyMsg)
		}
		return errJSON(c, http.StatusInternalServerError, "Internal Server Error", "could not query cafes")
	}
	return c.JSON(http.StatusOK, map[string]any{"cafe": cafe})
}

// All handles GET /all and returns every cafe ordered by name.  An empty
// table is reported as 404, mirroring /random.
func (h *CafeHandler) All(c echo.Context) error {
	cafes, err := h.CafeRepo.ListByName(c.Request().Context())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal Server Error", "could not query cafes")
	}
	if len(cafes) == 0 {
		return errJSON(c, http.StatusNotFound, "Not Found", cafesEmptyMsg)
	}
	return c.JSON(http.StatusOK, map[string]any{"cafes": cafes})
}

// Search handles GET /search?loc=X, an equality filter on location.
func (h *CafeHandler) Search(c echo.Context) error {
	cafes, err := h.CafeRepo.ListByLocation(c.Request().Context(), c.QueryParam("loc"))
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal Server Error", "could not query cafes")
	}
	if len(cafes) == 0 {
		return errJSON(c, http.StatusNotFound, "Not Found", cafesEmptyMsg)
	}
	return c.JSON(http.StatusOK, map[string]any{"cafes": cafes})
}

// SearchByID handles GET /search_id?id=X.  The match is returned as a
// one-element "cafes" list, not a bare "cafe" object; clients depend on that
// shape.
func (h *CafeHandler) SearchByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "Bad Request", "id must be an integer")
	}
	cafe, err := h.CafeRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return errJSON(c, http.StatusNotFound, "Not Found", cafesEmptyMsg)
		}
		return errJSON(c, http.StatusInternalServerError, "Internal Server Error", "could not query cafes")
	}
	return c.JSON(http.StatusOK, map[string]any{"cafes": []*model.Cafe{cafe}})
}

// addCafeRequest is the typed form payload for POST /add.  Boolean fields are
// bound as raw strings because the API's truthiness rule is "present and
// non-empty": any non-empty value, including the literal string "false",
// stores true.
type addCafeRequest struct {
	Name         string `form:"name"`
	MapURL       string `form:"map_url"`
	ImgURL       string `form:"img_url"`
	Location     string `form:"location"`
	Seats        string `form:"seats"`
	HasToilet    string `form:"has_toilet"`
	HasWifi      string `form:"has_wifi"`
	HasSockets   string `form:"has_sockets"`
	CanTakeCalls string `form:"can_take_calls"`
	CoffeePrice  string `form:"coffee_price"`
}

// Add handles POST /add with a form-encoded body.
func (h *CafeHandler) Add(c echo.Context) error {
	var req addCafeRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "Bad Request", "invalid request body")
	}
	required := []struct{ field, value string }{
		{"name", req.Name},
		{"map_url", req.MapURL},
		{"img_url", req.ImgURL},
		{"location", req.Location},
		{"seats", req.Seats},
	}
	for _, f := range required {
		if f.value == "" {
			return errJSON(c, http.StatusBadRequest, "Bad Request", "missing required field: "+f.field)
		}
	}

	cafe := &model.Cafe{
		Name:         req.Name,
		MapURL:       req.MapURL,
		ImgURL:       req.ImgURL,
		Location:     req.Location,
		Seats:        req.Seats,
		HasToilet:    req.HasToilet != "",
		HasWifi:      req.HasWifi != "",
		HasSockets:   req.HasSockets != "",
		CanTakeCalls: req.CanTakeCalls != "",
		CoffeePrice:  req.CoffeePrice,
	}
	if err := h.CafeRepo.Create(c.Request().Context(), cafe); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return errJSON(c, http.StatusConflict, "Conflict", "a cafe with that name already exists")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal Server Error", "could not add the cafe")
	}
	return okJSON(c, "Successfully added the new cafe.")
}

// UpdatePrice handles PATCH /update-price/:id?new_price=X, the only mutation
// allowed on an existing cafe.
func (h *CafeHandler) UpdatePrice(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "Bad Request", "id must be an integer")
	}
	if err := h.CafeRepo.UpdatePrice(c.Request().Context(), id, c.QueryParam("new_price")); err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return errJSON(c, http.StatusNotFound, "Not Found", cafesEmptyMsg)
		}
		return errJSON(c, http.StatusInternalServerError, "Internal Server Error", "could not update the price")
	}
	return okJSON(c, "Successfully updated the price.")
}

// Delete handles DELETE /delete/:id.  The API-key check runs in middleware
// before this handler.
func (h *CafeHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "Bad Request", "id must be an integer")
	}
	if err := h.CafeRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return errJSON(c, http.StatusNotFound, "Not Found", cafesEmptyMsg)
		}
		return errJSON(c, http.StatusInternalServerError, "Internal Server Error", "could not delete the cafe")
	}
	return okJSON(c, "Successfully deleted the cafe.")
}
