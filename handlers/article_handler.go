package handlers

import (
	"net/http"
	"strconv"

	"knowledgebase/models"
	"knowledgebase/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return 0, false
	}
	return uint(id), true
}

// GetArticle is the public detail view: published articles only, with their
// validated solutions and comments. Each hit is recorded.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	detail, err := h.articleService.GetPublishedArticle(id, optionalUserID(c), c.ClientIP())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ArticleHandler) CreateSolution(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req models.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := h.articleService.ProposeSolution(id, req.Content, userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, solution)
}

func (h *ArticleHandler) CreateComment(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.articleService.AddComment(id, req.Content, userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *ArticleHandler) CreateFeedback(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.articleService.AddFeedback(id, req, optionalUserID(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// CreateArticle accepts a multipart form so a PDF can ride along.
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdfPath, err := saveUpload(c, "pdf", "articles")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.CreateArticle(req, pdfPath, userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdfPath, err := saveUpload(c, "pdf", "articles")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.UpdateArticle(id, req, pdfPath, userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) MyArticles(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.articleService.ListMyArticles(userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}
