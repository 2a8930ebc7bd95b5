package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/marshallshelly/boardwalk/pkg/board"
)

// errorJSON writes the error shape the client expects: a status plus an
// optional human-readable message field.
func errorJSON(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorJSON(ctx, http.StatusBadRequest, "email and password are required")
		return
	}

	if req.Email != s.cfg.Email ||
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) != nil {
		errorJSON(ctx, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := generateToken(s.cfg.JWTSecret, s.cfg.Email, demoUserID, s.cfg.TokenTTL)
	if err != nil {
		s.log.Error("token generation failed", zap.Error(err))
		errorJSON(ctx, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.log.Info("login", zap.String("email", req.Email))
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleListPosts(ctx *gin.Context) {
	q := listQuery{
		Search: ctx.Query("search"),
		Cursor: ctx.Query("nextCursor"),
		Sort:   board.SortField(ctx.DefaultQuery("sort", string(board.SortByCreatedAt))),
		Order:  board.SortOrder(ctx.DefaultQuery("order", string(board.OrderDesc))),
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			errorJSON(ctx, http.StatusBadRequest, "invalid limit")
			return
		}
		q.Limit = limit
	}
	if raw := ctx.Query("category"); raw != "" {
		cat, err := board.ParseCategory(raw)
		if err != nil {
			errorJSON(ctx, http.StatusBadRequest, err.Error())
			return
		}
		q.Category = cat
	}
	var err error
	if q.From, err = parseBound(ctx.Query("from")); err != nil {
		errorJSON(ctx, http.StatusBadRequest, "invalid from bound")
		return
	}
	if q.To, err = parseBound(ctx.Query("to")); err != nil {
		errorJSON(ctx, http.StatusBadRequest, "invalid to bound")
		return
	}

	items, next, err := s.store.List(q)
	if err != nil {
		errorJSON(ctx, http.StatusBadRequest, err.Error())
		return
	}

	res := gin.H{"items": items}
	if next != "" {
		res["nextCursor"] = next
	} else {
		res["nextCursor"] = nil
	}
	ctx.JSON(http.StatusOK, res)
}

func parseBound(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

type createPostRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (s *Server) handleCreatePost(ctx *gin.Context) {
	var req createPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorJSON(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := board.Validate(req.Title, s.sanitizer.Sanitize(req.Body), board.Category(req.Category), board.JoinTags(req.Tags))
	if err != nil {
		errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	post := s.store.Create(ctx.GetString(contextUserIDKey), input)
	s.log.Info("post created", zap.String("id", post.ID))
	ctx.JSON(http.StatusCreated, post)
}

// updatePostRequest uses pointer fields so absent keys leave the stored
// value untouched.
type updatePostRequest struct {
	Title    *string   `json:"title"`
	Body     *string   `json:"body"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
}

func (s *Server) handleUpdatePost(ctx *gin.Context) {
	id := ctx.Param("id")
	current, ok := s.store.Get(id)
	if !ok {
		errorJSON(ctx, http.StatusNotFound, "post not found")
		return
	}

	var req updatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorJSON(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate the merged result so a partial update cannot sneak past the
	// shared rules.
	title := current.Title
	if req.Title != nil {
		title = *req.Title
	}
	body := current.Body
	if req.Body != nil {
		body = s.sanitizer.Sanitize(*req.Body)
	}
	category := current.Category
	if req.Category != nil {
		category = board.Category(*req.Category)
	}
	tags := current.Tags
	if req.Tags != nil {
		tags = *req.Tags
	}

	input, err := board.Validate(title, body, category, board.JoinTags(tags))
	if err != nil {
		errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	post, _ := s.store.Update(id, &input.Title, &input.Body, &input.Category, &input.Tags)
	ctx.JSON(http.StatusOK, post)
}

func (s *Server) handleGetPost(ctx *gin.Context) {
	post, ok := s.store.Get(ctx.Param("id"))
	if !ok {
		errorJSON(ctx, http.StatusNotFound, "post not found")
		return
	}
	ctx.JSON(http.StatusOK, post)
}

func (s *Server) handleDeletePost(ctx *gin.Context) {
	if !s.store.Delete(ctx.Param("id")) {
		errorJSON(ctx, http.StatusNotFound, "post not found")
		return
	}
	s.log.Info("post deleted", zap.String("id", ctx.Param("id")))
	ctx.Status(http.StatusNoContent)
}
