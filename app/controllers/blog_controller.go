package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/pages"
	"inkwell/app/repositories"

	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for the public blog pages. It
// parses route parameters, hands them to the page layer and writes the
// resulting payload as JSON; template rendering happens elsewhere.
type BlogController struct {
	pages *pages.Pages
}

// NewBlogController creates a new BlogController
func NewBlogController(p *pages.Pages) *BlogController {
	return &BlogController{pages: p}
}

// Home handles the homepage
func (c *BlogController) Home(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	page, err := c.pages.Home(user)
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Older handles subsequent pages of posts
func (c *BlogController) Older(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	end, err := strconv.Atoi(vars["end"])
	if err != nil {
		http.Error(w, "Invalid page window", http.StatusBadRequest)
		return
	}
	nextSet, err := strconv.Atoi(vars["next_set"])
	if err != nil {
		http.Error(w, "Invalid page window", http.StatusBadRequest)
		return
	}

	user := middleware.UserFrom(r.Context())
	page, err := c.pages.Older(user, end, nextSet)
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// About handles the about page
func (c *BlogController) About(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	page, err := c.pages.About(user)
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Archive handles the year/month archive page
func (c *BlogController) Archive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}

	user := middleware.UserFrom(r.Context())
	page, err := c.pages.Archive(user, year, month)
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Category handles the category page
func (c *BlogController) Category(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	page, err := c.pages.Category(user, mux.Vars(r)["name"])
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Tags handles the tag page
func (c *BlogController) Tags(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	page, err := c.pages.Tags(user, mux.Vars(r)["name"])
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Search handles the search results page
func (c *BlogController) Search(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	page, err := c.pages.Search(user, r.URL.Query().Get("q"))
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Show handles the detailed view of a single post
func (c *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	user := middleware.UserFrom(r.Context())
	page, err := c.pages.PostDetail(user, id)
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Posted handles the comment submission confirmation page
func (c *BlogController) Posted(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	user := middleware.UserFrom(r.Context())
	page, err := c.pages.Posted(user, id)
	if err != nil {
		c.sendError(w, err)
		return
	}
	c.sendJSON(w, page)
}

// Helper methods for consistent response handling

func (c *BlogController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (c *BlogController) sendError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	if err == repositories.ErrNotFound {
		status = http.StatusNotFound
		message = "Page not found"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
