package handler

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/provider"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler/request"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler/response"
	"github.com/gin-gonic/gin"
)

func GenerateImage(c *gin.Context) {
	form := request.GenerateImage{}
	err := c.ShouldBindJSON(&form)
	if err != nil || form.Valid() != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.MsgNoPrompt))
		return
	}
	parts, err := generator.Generate(c.Request.Context(), form.Prompt)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("generation request failed")
		if errors.Is(err, provider.ErrEmptyResponse) {
			c.JSON(http.StatusInternalServerError, response.Error(response.MsgGenerationFailed))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
		return
	}
	imgBytes, err := provider.ExtractImage(parts)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("no image in generation response")
		c.JSON(http.StatusInternalServerError, response.Error(response.MsgGenerationFailed))
		return
	}
	c.JSON(http.StatusOK, response.GenerateImage{
		ImageBase64: base64.StdEncoding.EncodeToString(imgBytes),
	})
}
