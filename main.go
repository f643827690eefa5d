package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ChurchCMS/controllers"
	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/middlewares"
	"github.com/ChurchCMS/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitEmailService()
	services.InitAIService()
}

func main() {
	router := gin.Default()
	router.Use(middlewares.CORSMiddleware())

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	api := router.Group("/api")

	// auth endpoints
	api.POST("/auth/register", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Register)
	api.POST("/auth/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Login)
	api.POST("/auth/forgot-password", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.ForgotPassword)
	api.POST("/auth/reset-password", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.ResetPassword)

	// public reads
	api.GET("/sermons", controllers.GetSermons)
	api.GET("/sermons/:id", controllers.GetSermon)
	api.GET("/events", controllers.GetEvents)
	api.GET("/events/:id", controllers.GetEvent)
	api.GET("/blogposts", controllers.GetBlogPosts)
	api.GET("/blogposts/:id", controllers.GetBlogPost)
	api.GET("/news", controllers.GetNewsItems)
	api.GET("/news/:id", controllers.GetNewsItem)
	api.GET("/ministries", controllers.GetMinistries)
	api.GET("/ministries/:id", controllers.GetMinistry)
	api.GET("/slides", controllers.GetHomeSlides)
	api.GET("/slides/:id", controllers.GetHomeSlide)
	api.GET("/aboutsections", controllers.GetAboutSections)
	api.GET("/aboutsections/:id", controllers.GetAboutSection)
	api.GET("/keypeople", controllers.GetKeyPeople)
	api.GET("/keypeople/:id", controllers.GetKeyPerson)
	api.GET("/milestones", controllers.GetHistoryMilestones)
	api.GET("/milestones/:id", controllers.GetHistoryMilestone)
	api.GET("/chapters", controllers.GetHistoryChapters)
	api.GET("/chapters/:id", controllers.GetHistoryChapter)
	api.GET("/branches", controllers.GetBranchChurches)
	api.GET("/branches/:id", controllers.GetBranchChurch)
	api.GET("/prayer-requests", controllers.GetPrayerRequests)
	api.GET("/prayer-requests/:id", controllers.GetPrayerRequest)
	api.GET("/testimonials", controllers.GetTestimonials)
	api.GET("/testimonials/:id", controllers.GetTestimonial)
	api.GET("/comments/:parentType/:parentId", controllers.GetComments)

	// anonymous interactions
	api.POST("/interactions/toggle-like/:entityType/:id", controllers.ToggleLike)
	api.POST("/contact-messages", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.CreateContactMessage)
	api.POST("/join-requests", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.CreateJoinRequest)
	api.POST("/ai/chat", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.ChatbotQuery)

	auth := api.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		auth.GET("/auth/me", controllers.GetCurrentUser)

		auth.POST("/comments", controllers.CreateComment)

		auth.POST("/prayer-requests", controllers.CreatePrayerRequest)
		auth.POST("/prayer-requests/:id/toggle-prayer", controllers.TogglePrayer)

		auth.POST("/testimonials", controllers.CreateTestimonial)

		// admin only routes
		admin := auth.Group("/")
		admin.Use(middlewares.CheckAdmin)
		{
			admin.POST("/sermons", controllers.CreateSermon)
			admin.PUT("/sermons/:id", controllers.UpdateSermon)
			admin.DELETE("/sermons/:id", controllers.DeleteSermon)

			admin.POST("/events", controllers.CreateEvent)
			admin.PUT("/events/:id", controllers.UpdateEvent)
			admin.DELETE("/events/:id", controllers.DeleteEvent)

			admin.POST("/blogposts", controllers.CreateBlogPost)
			admin.PUT("/blogposts/:id", controllers.UpdateBlogPost)
			admin.DELETE("/blogposts/:id", controllers.DeleteBlogPost)

			admin.POST("/news", controllers.CreateNewsItem)
			admin.PUT("/news/:id", controllers.UpdateNewsItem)
			admin.DELETE("/news/:id", controllers.DeleteNewsItem)

			admin.POST("/ministries", controllers.CreateMinistry)
			admin.PUT("/ministries/:id", controllers.UpdateMinistry)
			admin.DELETE("/ministries/:id", controllers.DeleteMinistry)

			admin.POST("/slides", controllers.CreateHomeSlide)
			admin.PUT("/slides/:id", controllers.UpdateHomeSlide)
			admin.DELETE("/slides/:id", controllers.DeleteHomeSlide)

			admin.POST("/aboutsections", controllers.CreateAboutSection)
			admin.PUT("/aboutsections/:id", controllers.UpdateAboutSection)
			admin.DELETE("/aboutsections/:id", controllers.DeleteAboutSection)

			admin.POST("/keypeople", controllers.CreateKeyPerson)
			admin.PUT("/keypeople/:id", controllers.UpdateKeyPerson)
			admin.DELETE("/keypeople/:id", controllers.DeleteKeyPerson)

			admin.POST("/milestones", controllers.CreateHistoryMilestone)
			admin.PUT("/milestones/:id", controllers.UpdateHistoryMilestone)
			admin.DELETE("/milestones/:id", controllers.DeleteHistoryMilestone)

			admin.POST("/chapters", controllers.CreateHistoryChapter)
			admin.PUT("/chapters/:id", controllers.UpdateHistoryChapter)
			admin.DELETE("/chapters/:id", controllers.DeleteHistoryChapter)

			admin.POST("/branches", controllers.CreateBranchChurch)
			admin.PUT("/branches/:id", controllers.UpdateBranchChurch)
			admin.DELETE("/branches/:id", controllers.DeleteBranchChurch)

			admin.PUT("/prayer-requests/:id", controllers.UpdatePrayerRequest)
			admin.PUT("/prayer-requests/:id/status", controllers.UpdatePrayerRequestStatus)
			admin.DELETE("/prayer-requests/:id", controllers.DeletePrayerRequest)

			admin.PUT("/testimonials/:id", controllers.UpdateTestimonial)
			admin.DELETE("/testimonials/:id", controllers.DeleteTestimonial)

			admin.GET("/contact-messages", controllers.GetContactMessages)
			admin.GET("/contact-messages/:id", controllers.GetContactMessage)
			admin.PUT("/contact-messages/:id/status", controllers.UpdateContactMessageStatus)
			admin.DELETE("/contact-messages/:id", controllers.DeleteContactMessage)

			admin.GET("/donations", controllers.GetDonations)
			admin.GET("/donations/:id", controllers.GetDonation)
			admin.POST("/donations", controllers.CreateDonation)
			admin.PUT("/donations/:id", controllers.UpdateDonation)
			admin.DELETE("/donations/:id", controllers.DeleteDonation)

			admin.GET("/collections", controllers.GetCollectionRecords)
			admin.GET("/collections/:id", controllers.GetCollectionRecord)
			admin.POST("/collections", controllers.CreateCollectionRecord)
			admin.PUT("/collections/:id", controllers.UpdateCollectionRecord)
			admin.DELETE("/collections/:id", controllers.DeleteCollectionRecord)

			admin.GET("/join-requests", controllers.GetJoinRequests)
			admin.GET("/join-requests/:id", controllers.GetJoinRequest)
			admin.PUT("/join-requests/:id/status", controllers.UpdateJoinRequestStatus)
			admin.DELETE("/join-requests/:id", controllers.DeleteJoinRequest)

			admin.DELETE("/comments/:id", controllers.DeleteComment)

			admin.POST("/ai/generate-ad", controllers.GenerateAdCopy)
		}
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
