package http

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	middleware "promarket.com/promarket/internal/http/middlewares"
	model "promarket.com/promarket/internal/models"
)

// UploadFile stores the bytes in the file store and the metadata row in the
// database.
func (h *Handler) UploadFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := header.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}

	ctx := c.Request().Context()
	storedName := uuid.NewString()
	if err := h.fileStore.Put(ctx, storedName, content); err != nil {
		return httpError(err)
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	callerID := middleware.CurrentUser(c).ID
	record := &model.FileResource{
		OriginalName: header.Filename,
		FileName:     storedName,
		ContentType:  contentType,
		Size:         int64(len(content)),
		UserID:       &callerID,
	}
	if err := h.fileRepo.Create(ctx, record); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":  record.ID,
		"url": "/files/" + record.ID + "/download",
	})
}

func (h *Handler) DownloadFile(c echo.Context) error {
	ctx := c.Request().Context()

	record, err := h.fileRepo.FindByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	content, err := h.fileStore.Get(ctx, record.FileName)
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+record.OriginalName)
	return c.Blob(http.StatusOK, record.ContentType, content)
}

func (h *Handler) DeleteFile(c echo.Context) error {
	ctx := c.Request().Context()

	record, err := h.fileRepo.FindByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if err := h.fileStore.Delete(ctx, record.FileName); err != nil {
		return httpError(err)
	}
	if err := h.fileRepo.Delete(ctx, record.ID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
