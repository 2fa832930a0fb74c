package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"multiblog/app/auth"
	"multiblog/app/models"
	"multiblog/app/repositories"
	"multiblog/app/services"

	"github.com/gorilla/mux"
)

// BlogController handles the post, comment and like routes
type BlogController struct {
	postService    *services.PostService
	commentService *services.CommentService
	sessions       *auth.Sessions
	templates      map[string]*template.Template
}

// NewBlogController creates a new BlogController
func NewBlogController(postService *services.PostService, commentService *services.CommentService, sessions *auth.Sessions, basePath string) *BlogController {
	return &BlogController{
		postService:    postService,
		commentService: commentService,
		sessions:       sessions,
		templates:      loadTemplates(basePath),
	}
}

// editPostData feeds the new/edit post form template
type editPostData struct {
	User    *models.User
	Title   string
	Action  string
	PostID  int
	Subject string
	Content string
	Error   string
}

// Front lists all posts, newest first
func (bc *BlogController) Front(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.postService.ListPosts()
	if err != nil {
		http.Error(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	render(w, bc.templates, "front", struct {
		User  *models.User
		Posts []*models.Post
	}{bc.sessions.CurrentUser(r), posts})
}

// OldFront redirects the legacy /blog url to /
func (bc *BlogController) OldFront(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// Show displays a single post with its comments
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}

	post, err := bc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	comments, err := bc.commentService.ListByPost(id)
	if err != nil {
		http.Error(w, "Failed to fetch comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	user := bc.sessions.CurrentUser(r)
	render(w, bc.templates, "permalink", struct {
		User     *models.User
		Post     *models.Post
		Comments []*models.Comment
		LoggedIn bool
	}{user, post, comments, user != nil})
}

// NewPostForm displays the add post form for logged-in users
func (bc *BlogController) NewPostForm(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	render(w, bc.templates, "editpost", editPostData{User: user, Title: "New", Action: "/blog/newpost"})
}

// NewPost creates a post from the submitted form
func (bc *BlogController) NewPost(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	subject := r.FormValue("subject")
	content := r.FormValue("content")
	if subject == "" || content == "" {
		render(w, bc.templates, "editpost", editPostData{
			User:    user,
			Title:   "New",
			Action:  "/blog/newpost",
			Subject: subject,
			Content: content,
			Error:   "Please enter subject and content!",
		})
		return
	}

	post, err := bc.postService.CreatePost(user.ID, subject, content)
	if err != nil {
		http.Error(w, "Failed to create post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/blog/"+strconv.Itoa(post.ID), http.StatusSeeOther)
}

// EditForm displays the edit form for a post the user owns
func (bc *BlogController) EditForm(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}

	post, err := bc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if post.OwnerID != user.ID {
		renderError(w, bc.templates, user, "You can only edit your own posts", "/blog/"+strconv.Itoa(id))
		return
	}

	render(w, bc.templates, "editpost", editPostData{
		User:    user,
		Title:   "Edit",
		Action:  "/edit",
		PostID:  id,
		Subject: post.Subject,
		Content: post.Content,
	})
}

// Edit applies a submitted edit to a post the user owns
func (bc *BlogController) Edit(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(r.FormValue("post_id"))
	if err != nil {
		notFound(w)
		return
	}

	subject := r.FormValue("subject")
	content := r.FormValue("content")
	if subject == "" || content == "" {
		render(w, bc.templates, "editpost", editPostData{
			User:    user,
			Title:   "Edit",
			Action:  "/edit",
			PostID:  id,
			Subject: subject,
			Content: content,
			Error:   "Please enter subject and content!",
		})
		return
	}

	_, err = bc.postService.UpdatePost(user.ID, id, subject, content)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		notFound(w)
	case errors.Is(err, services.ErrNotOwner):
		renderError(w, bc.templates, user, "You can only edit your own posts", "/blog/"+strconv.Itoa(id))
	case err != nil:
		http.Error(w, "Failed to update post: "+err.Error(), http.StatusInternalServerError)
	default:
		http.Redirect(w, r, "/blog/"+strconv.Itoa(id), http.StatusSeeOther)
	}
}

// Delete deletes a post the user owns after explicit confirmation
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}

	post, err := bc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if post.OwnerID != user.ID {
		renderError(w, bc.templates, user, "You can only delete your own posts!", "/blog/"+strconv.Itoa(id))
		return
	}

	if r.URL.Query().Get("confirmation") != "yes" {
		render(w, bc.templates, "confirmation", struct {
			User   *models.User
			Action string
			URL    string
		}{user, "/delete/" + strconv.Itoa(id), "/blog/" + strconv.Itoa(id)})
		return
	}

	if err := bc.postService.DeletePost(user.ID, id); err != nil {
		http.Error(w, "Failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Like records a like on someone else's post
func (bc *BlogController) Like(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}

	err = bc.postService.LikePost(user.ID, id)
	backURL := "/blog/" + strconv.Itoa(id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		notFound(w)
	case errors.Is(err, services.ErrSelfLike):
		renderError(w, bc.templates, user, "You can not like your own post.", backURL)
	case errors.Is(err, services.ErrAlreadyLiked):
		renderError(w, bc.templates, user, "You have already liked this post in the past.", backURL)
	case err != nil:
		http.Error(w, "Failed to like post: "+err.Error(), http.StatusInternalServerError)
	default:
		http.Redirect(w, r, backURL, http.StatusFound)
	}
}

// commentData feeds the comment form template
type commentData struct {
	User    *models.User
	PostID  int
	Content string
	Error   string
}

// CommentForm displays the add comment form
func (bc *BlogController) CommentForm(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}
	if _, err := bc.postService.GetPost(id); errors.Is(err, repositories.ErrNotFound) {
		notFound(w)
		return
	} else if err != nil {
		http.Error(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render(w, bc.templates, "comment", commentData{User: user, PostID: id})
}

// Comment creates a comment under a post
func (bc *BlogController) Comment(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}

	content := r.FormValue("content")
	if content == "" {
		render(w, bc.templates, "comment", commentData{
			User:   user,
			PostID: id,
			Error:  "Please enter your comment text!",
		})
		return
	}

	_, err = bc.commentService.AddComment(user.ID, id, content)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		http.Error(w, "Failed to create comment: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/blog/"+strconv.Itoa(id), http.StatusSeeOther)
}

// DeleteComment deletes a comment the user owns after explicit
// confirmation
func (bc *BlogController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := bc.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		notFound(w)
		return
	}
	commentID, err := strconv.Atoi(vars["commentId"])
	if err != nil {
		notFound(w)
		return
	}

	comment, err := bc.commentService.GetComment(postID, commentID)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	backURL := "/blog/" + strconv.Itoa(postID)
	if comment.OwnerID != user.ID {
		renderError(w, bc.templates, user, "You can only delete your own comments!", backURL)
		return
	}

	if r.URL.Query().Get("confirmation") != "yes" {
		render(w, bc.templates, "confirmation", struct {
			User   *models.User
			Action string
			URL    string
		}{user, "/deletecomment/" + strconv.Itoa(postID) + "/" + strconv.Itoa(commentID), backURL})
		return
	}

	if err := bc.commentService.DeleteComment(user.ID, postID, commentID); err != nil {
		http.Error(w, "Failed to delete comment: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, backURL, http.StatusFound)
}
