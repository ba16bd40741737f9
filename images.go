package unopro

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/unoproservices/unopro/gallery"
)

// handleThumbnail serves a resized JPEG of an image in the static dir.
func (a *App) handleThumbnail(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("*"))
	if err != nil || name == "" {
		return echo.ErrNotFound
	}
	data, err := a.thumbs.Thumbnail(name)
	switch {
	case err == nil:
		return c.Blob(http.StatusOK, "image/jpeg", data)
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, gallery.ErrOutsideRoot):
		return echo.ErrNotFound
	case errors.Is(err, gallery.ErrNotImage):
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "not an image")
	default:
		return err
	}
}
