package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/joshua-takyi/eventboard/internal/helpers"
	"github.com/joshua-takyi/eventboard/internal/models"
	"github.com/joshua-takyi/eventboard/internal/services"
)

const (
	AdminPath = "/admin"

	degradedHomepage = "<h1>Homepage OK (event store unavailable)</h1>"
)

// Health answers the platform liveness probe. It never touches the stores.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

// Homepage lists every event. With degraded set, a store failure still
// answers 200 with a placeholder page instead of 500.
func Homepage(es *services.EventService, degraded bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListEvents(c.Request.Context())
		if err != nil {
			_ = c.Error(err).SetMeta("error loading homepage")
			if degraded {
				c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(degradedHomepage))
				return
			}
			c.String(http.StatusInternalServerError, "Error loading events")
			return
		}

		c.HTML(http.StatusOK, "index.html", gin.H{"events": events})
	}
}

func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", nil)
	}
}

func AdminPage(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListEvents(c.Request.Context())
		if err != nil {
			_ = c.Error(err).SetMeta("error loading admin page")
			c.String(http.StatusInternalServerError, "Error loading admin page")
			return
		}

		c.HTML(http.StatusOK, "admin.html", gin.H{"events": events})
	}
}

// AddEvent binds title, description and date from a multipart, url-encoded
// or JSON body. An "image" file part is read into memory and uploaded.
func AddEvent(es *services.EventService, maxMemory int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		multipart := c.ContentType() == binding.MIMEMultipartPOSTForm
		if multipart {
			if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
				rejectBody(c, err)
				return
			}
		}

		var form models.EventForm
		if err := c.ShouldBind(&form); err != nil {
			rejectBody(c, err)
			return
		}

		var image *helpers.ImageUpload
		if multipart {
			var err error
			image, err = readImage(c, "image")
			if err != nil {
				_ = c.Error(err).SetMeta("error adding event")
				c.String(http.StatusInternalServerError, "Error adding event")
				return
			}
		}

		created, err := es.CreateEvent(c.Request.Context(), form, image)
		if err != nil {
			_ = c.Error(err).SetMeta("error adding event")
			c.String(http.StatusInternalServerError, "Error adding event")
			return
		}

		requestID, _ := c.Get("request_id")
		es.Logger().Info("event added", "id", created.ID, "title", created.Title, "request_id", requestID)
		c.Redirect(http.StatusFound, AdminPath)
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := es.DeleteEvent(c.Request.Context(), id); err != nil {
			_ = c.Error(err).SetMeta("error deleting event")
			c.String(http.StatusInternalServerError, "Error deleting event")
			return
		}

		requestID, _ := c.Get("request_id")
		es.Logger().Info("event deleted", "id", id, "request_id", requestID)
		c.Redirect(http.StatusFound, AdminPath)
	}
}

func readImage(c *gin.Context, field string) (*helpers.ImageUpload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s field: %w", field, err)
	}
	if fh.Size == 0 && fh.Filename == "" {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}

	return &helpers.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func rejectBody(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
		_ = c.Error(err).SetMeta("request body too large")
		c.String(http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	_ = c.Error(err).SetMeta("invalid event form")
	c.String(http.StatusBadRequest, "Invalid event form")
}
