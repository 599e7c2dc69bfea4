package handler

import (
	"net/http"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/cache"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler/response"
	"github.com/gin-gonic/gin"
)

const (
	listCacheKey = "list_images"
	listCacheTTL = 2 * time.Second
)

func ListImages(c *gin.Context) {
	if cached, err := cache.ListCacheManager().GetValue(listCacheKey); err == nil && cached != "" {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}
	images, err := galleryStore.List(c.Request.Context())
	if err != nil {
		logs.Logger.Error().Err(err).Msg("gallery list failed")
		c.JSON(http.StatusInternalServerError, response.Error(response.MsgListFailed))
		return
	}
	ret := response.ListImages{Images: make([]response.PublishImage, 0, len(images))}
	for _, img := range images {
		ret.Images = append(ret.Images, response.PublishImage{
			URL:      img.URL,
			ThumbURL: img.ThumbURL,
			Prompt:   img.Prompt,
		})
	}
	body, err := ret.Marsh()
	if err != nil {
		logs.Logger.Error().Err(err).Msg("list response marshal failed")
		c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
		return
	}
	if err := cache.ListCacheManager().SetWithExpiration(listCacheKey, body, listCacheTTL); err != nil {
		logs.Logger.Warn().Err(err).Msg("list cache set failed")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(body))
}

func invalidateListCache() {
	if err := cache.ListCacheManager().Delete(listCacheKey); err != nil {
		logs.Logger.Warn().Err(err).Msg("list cache invalidation failed")
	}
}
