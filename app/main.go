package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gouthampai05/the-final-empathway-sub001/internal/repository"
	mysqlRepo "github.com/gouthampai05/the-final-empathway-sub001/internal/repository/mysql"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/repository/mysql/model"
	redisCache "github.com/gouthampai05/the-final-empathway-sub001/internal/repository/redis"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/workers"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/rest/middleware"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/usecase/blog"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/usecase/like"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/usecase/newsletter"
	"github.com/gouthampai05/the-final-empathway-sub001/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
}

func main() {
	// prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	if err := db.AutoMigrate(
		&model.User{},
		&model.Blog{},
		&model.BlogLike{},
		&model.Subscriber{},
		&model.Campaign{},
	); err != nil {
		log.Fatal("failed to migrate database schema:", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err = client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare repositories
	userRepo := mysqlRepo.NewUserRepository(db)
	blogRepo := mysqlRepo.NewBlogRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	subscriberRepo := mysqlRepo.NewSubscriberRepository(db)
	campaignRepo := mysqlRepo.NewCampaignRepository(db)

	likeCache := redisCache.NewLikeCountCache(client)
	likeCounts := repository.NewLikeCountReader(likeCache, blogRepo)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	likesReconciler := workers.NewReconcileLikesWorker(likeRepo, blogRepo, likeCache)
	go likesReconciler.Start(ctx)

	// Build service layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}

	blogSvc := blog.NewService(blogRepo, userRepo, likeCounts, likeCache)
	likeSvc := like.NewService(likeRepo, blogRepo, likeCounts, likeCache, likesReconciler)
	newsletterSvc := newsletter.NewService(subscriberRepo, campaignRepo)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)

	blogHandler := rest.NewBlogHandler(blogSvc)
	likeHandler := rest.NewLikeHandler(likeSvc)
	newsletterHandler := rest.NewNewsletterHandler(newsletterSvc)
	userHandler := rest.NewUserHandler(userSvc)
	adminHandler := rest.NewAdminHandler(blogSvc, newsletterSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/blogs", blogHandler.FetchBlogs)
	route.GET("/blogs/:id", blogHandler.GetByID)
	route.GET("/blogs/slug/:slug", blogHandler.GetBySlug)

	route.GET("/api/blogs/like", likeHandler.Status)
	route.POST("/api/blogs/like", likeHandler.Toggle)

	route.POST("/subscribe", newsletterHandler.Subscribe)
	route.POST("/unsubscribe", newsletterHandler.Unsubscribe)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.PUT("/me/password", userHandler.EditPassword)

		publishers := authorized.Group("/")
		publishers.Use(middleware.RequireRole(domain.RoleTherapist, domain.RoleAdmin))
		{
			publishers.POST("/blogs", blogHandler.Store)
			publishers.PUT("/blogs/:id", blogHandler.Update)
			publishers.DELETE("/blogs/:id", blogHandler.Delete)
		}

		admin := authorized.Group("/admin")
		admin.Use(middleware.RequireRole(domain.RoleAdmin))
		{
			admin.GET("/blogs", adminHandler.ListBlogs)
			admin.GET("/subscribers", adminHandler.ListSubscribers)
			admin.GET("/campaigns", newsletterHandler.FetchCampaigns)
			admin.POST("/campaigns", newsletterHandler.CreateCampaign)
			admin.POST("/campaigns/:id/send", newsletterHandler.SendCampaign)
		}
	}

	// Start server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
