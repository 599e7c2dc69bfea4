package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/config"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/components/mysql"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/gallery"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/hub"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/provider/gemini"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/publish"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/storage"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/storage/ali"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/storage/cloudinary"
	httpservice "github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/tools"
	"github.com/joho/godotenv"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":3000", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	config.Init(configPath)
	logs.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	var store gallery.Store
	switch config.GConfig.Gallery.Backend {
	case "mysql":
		mysql.InitMySQL(config.GConfig.MySQL)
		store = tools.PanicOnError(gallery.NewMySQLStore(mysql.DB))
	case "file":
		store = tools.PanicOnError(gallery.NewFileStore(config.GConfig.Gallery.FilePath))
	}

	var host storage.Host
	switch config.GConfig.Host.Supplier {
	case "ali_oss":
		expires := tools.PanicOnError(time.ParseDuration(config.GConfig.Host.URLExpires))
		host = ali.NewOssHost(config.GConfig.AliOss, expires)
	case "cloudinary":
		host = cloudinary.NewClient(config.GConfig.Cloudinary)
	}

	broadcastHub := hub.New()
	broadcastHub.Run(ctx, wg)

	opts := []publish.Option{}
	if config.GConfig.Gallery.RequirePrompt {
		opts = append(opts, publish.WithRequiredPrompt())
	}
	if config.GConfig.Gallery.ThumbnailRatio > 0 {
		opts = append(opts, publish.WithThumbnails(config.GConfig.Gallery.ThumbnailRatio, tools.Thumbnail))
	}
	pipeline := publish.New(host, store, broadcastHub, opts...)

	generator := gemini.NewClient(config.GConfig.Provider.BaseURL, config.GConfig.Provider.Model, config.GConfig.Provider.APIKey)
	handler.Init(generator, pipeline, store, broadcastHub)

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		cancel()
		wg.Wait()
		os.Exit(0)
	}(osSignal)
	httpservice.Serve(httpPort)
}
