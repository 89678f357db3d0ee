package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/zeroonedevs/SheRisesv1/configs"
	"github.com/zeroonedevs/SheRisesv1/internal/handlers"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx     context.Context
	router  *gin.Engine
	handler *handlers.RestHandler
	config  *configs.Config
}

func NewHttpServer(ctx context.Context, handler *handlers.RestHandler, config *configs.Config) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:     ctx,
			handler: handler,
			config:  config,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.router = gin.Default()
	RegisterRoutes(hs.router, hs.handler)

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

// RegisterRoutes wires the REST surface. Everything under /api requires an
// authenticated caller.
func RegisterRoutes(router *gin.Engine, handler *handlers.RestHandler) {
	router.POST("/login", handler.Login)
	router.POST("/register", handler.Register)

	api := router.Group("/api", handler.MustAuthenticateMiddleware())

	api.GET("/messages/conversations", handler.GetConversations)
	api.GET("/messages/conversation/:userId", handler.GetConversationWithUser)
	api.GET("/messages/unread-count", handler.GetUnreadCount)
	api.POST("/messages", handler.SendMessage)
	api.POST("/messages/attachments", handler.UploadMessageAttachment)
	api.PATCH("/messages/:id/read", handler.MarkMessageRead)
	api.DELETE("/messages/:id", handler.DeleteMessage)

	api.GET("/profile", handler.GetMyProfile)
	api.GET("/users", handler.GetAllUsersWithPagination)
	api.GET("/users/:id", handler.GetSingleUser)
	api.POST("/users/profile-photo", handler.UploadUserProfilePhoto)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Println("HTTP server started on", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
