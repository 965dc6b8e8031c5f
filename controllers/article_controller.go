package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/services"
	"github.com/blogem/adminaudit/userctx"
)

// ArticleController handles article management requests
type ArticleController struct {
	renderer
	services *services.Services
}

// NewArticleController creates a new article controller
func NewArticleController(services *services.Services, logger logrus.FieldLogger) *ArticleController {
	return &ArticleController{
		renderer: newRenderer(logger),
		services: services,
	}
}

type articlesPage struct {
	Articles []models.Article
	Article  *models.Article
	Form     *models.ArticleForm
}

// Index handles GET /articles
func (c *ArticleController) Index(w http.ResponseWriter, r *http.Request) {
	articles, err := c.services.Articles.GetAllArticles(r.Context())
	if err != nil {
		http.Error(w, "Failed to load articles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := models.PageData{
		Title:        "Articles",
		CurrentPage:  "articles",
		Admin:        userctx.GetAdmin(r.Context()),
		FlashMessage: flashFromQuery(r),
		Data: articlesPage{
			Articles: articles,
			Form:     &models.ArticleForm{},
		},
	}

	c.renderTemplate(w, "articles", "templates/articles.html", templateData)
}

// Create handles POST /articles
func (c *ArticleController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := articleFormFromRequest(r)

	_, err := c.services.Articles.CreateArticle(r.Context(), form)
	if err != nil {
		// Reload page with form data and error
		articles, loadErr := c.services.Articles.GetAllArticles(r.Context())
		if loadErr != nil {
			http.Error(w, "Failed to load articles: "+loadErr.Error(), http.StatusInternalServerError)
			return
		}

		templateData := models.PageData{
			Title:        "Articles",
			CurrentPage:  "articles",
			Admin:        userctx.GetAdmin(r.Context()),
			FlashMessage: &models.FlashMessage{Type: "error", Message: err.Error()},
			Data: articlesPage{
				Articles: articles,
				Form:     form,
			},
		}

		c.renderTemplateWithStatus(w, http.StatusBadRequest, "articles_create_error", "templates/articles.html", templateData)
		return
	}

	http.Redirect(w, r, "/articles", http.StatusSeeOther)
}

// Edit handles GET /articles/{id}/edit
func (c *ArticleController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid article ID", http.StatusBadRequest)
		return
	}

	article, err := c.services.Articles.GetArticleByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Article not found: "+err.Error(), http.StatusNotFound)
		return
	}

	templateData := models.PageData{
		Title:       "Edit Article",
		CurrentPage: "articles",
		Admin:       userctx.GetAdmin(r.Context()),
		Data: articlesPage{
			Article: article,
			Form: &models.ArticleForm{
				Title:     article.Title,
				Slug:      article.Slug,
				Body:      article.Body,
				Published: article.Published,
			},
		},
	}

	c.renderTemplate(w, "article_edit", "templates/article_edit.html", templateData)
}

// Update handles POST /articles/{id}
func (c *ArticleController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid article ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := articleFormFromRequest(r)

	_, err = c.services.Articles.UpdateArticle(r.Context(), id, form)
	if err != nil {
		article, loadErr := c.services.Articles.GetArticleByID(r.Context(), id)
		if loadErr != nil {
			http.Error(w, "Article not found: "+loadErr.Error(), http.StatusNotFound)
			return
		}

		templateData := models.PageData{
			Title:        "Edit Article",
			CurrentPage:  "articles",
			Admin:        userctx.GetAdmin(r.Context()),
			FlashMessage: &models.FlashMessage{Type: "error", Message: err.Error()},
			Data: articlesPage{
				Article: article,
				Form:    form,
			},
		}

		c.renderTemplateWithStatus(w, http.StatusBadRequest, "article_update_error", "templates/article_edit.html", templateData)
		return
	}

	http.Redirect(w, r, "/articles", http.StatusSeeOther)
}

// Delete handles POST /articles/{id}/delete
func (c *ArticleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid article ID", http.StatusBadRequest)
		return
	}

	if err := c.services.Articles.DeleteArticle(r.Context(), id); err != nil {
		http.Redirect(w, r, "/articles?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/articles", http.StatusSeeOther)
}

// articleFormFromRequest reads an article form from a parsed request
func articleFormFromRequest(r *http.Request) *models.ArticleForm {
	// Get the last value for 'published' (checkbox will override hidden field if checked)
	published := r.Form["published"]

	return &models.ArticleForm{
		Title:     r.FormValue("title"),
		Slug:      r.FormValue("slug"),
		Body:      r.FormValue("body"),
		Published: len(published) > 0 && published[len(published)-1] == "on",
	}
}

// flashFromQuery turns an ?error= redirect parameter into a flash message
func flashFromQuery(r *http.Request) *models.FlashMessage {
	if msg := r.URL.Query().Get("error"); msg != "" {
		return &models.FlashMessage{Type: "error", Message: msg}
	}
	return nil
}
