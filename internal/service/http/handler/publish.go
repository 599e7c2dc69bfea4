package handler

import (
	"errors"
	"net/http"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/gallery"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/publish"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler/request"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler/response"
	"github.com/gin-gonic/gin"
)

func PublishImage(c *gin.Context) {
	form := request.PublishImage{}
	err := c.ShouldBindJSON(&form)
	if err != nil || form.Valid() != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.MsgNoImage))
		return
	}
	imgBytes, err := form.ImageBytes()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.MsgBadImageEncoding))
		return
	}
	record, err := publisher.Publish(c.Request.Context(), imgBytes, form.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, publish.ErrNoImage):
			c.JSON(http.StatusBadRequest, response.Error(response.MsgNoImage))
		case errors.Is(err, publish.ErrNoPrompt):
			c.JSON(http.StatusBadRequest, response.Error(response.MsgNoPrompt))
		case errors.Is(err, publish.ErrUpload):
			logs.Logger.Error().Err(err).Msg("image host upload failed")
			c.JSON(http.StatusInternalServerError, response.Error(response.MsgUploadFailed))
		case errors.Is(err, gallery.ErrPersistence):
			logs.Logger.Error().Err(err).Msg("gallery append failed")
			c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
		default:
			logs.Logger.Error().Err(err).Msg("publish failed")
			c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
		}
		return
	}
	invalidateListCache()
	c.JSON(http.StatusOK, response.PublishImage{
		URL:      record.URL,
		ThumbURL: record.ThumbURL,
		Prompt:   record.Prompt,
	})
}
