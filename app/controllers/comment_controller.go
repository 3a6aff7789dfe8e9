package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comment submission.
// Moderation itself happens in the external back office; submitted
// comments stay hidden until approved there.
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// Create handles a new comment submission on a post
func (c *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		c.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	comment.PostID = postID

	if err := c.comments.Submit(&comment); err != nil {
		if strings.Contains(err.Error(), "post not found") {
			c.sendError(w, "Post not found", http.StatusNotFound)
			return
		}
		c.sendError(w, "Failed to submit comment: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(&comment)
}

func (c *CommentController) sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
