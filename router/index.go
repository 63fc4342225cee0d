package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"venue_manager/handler"
	"venue_manager/middleware"
	"venue_manager/model"
	"venue_manager/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	v1 := api.Group("/v1", logger.New())

	protected := middleware.Protected()
	admin := middleware.AdminOnly()
	optional := middleware.OptionalAuth()

	order := v1.Group("/orders", protected)
	order.Get("/", handler.GetMyOrders)
	order.Post("/", validate.Body[model.CreateOrderInput](), handler.CreateOrder)
	order.Post("/checkout", validate.Body[model.CheckoutInput](), handler.Checkout)
	order.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderDetail)

	adminOrder := v1.Group("/admin/orders", protected, admin)
	adminOrder.Get("/", validate.OrderFilter(), handler.GetAdminOrders)
	adminOrder.Get("/export", validate.OrderFilter(), handler.ExportOrders)
	adminOrder.Get("/feed", handler.UpgradeOrderFeed, websocket.New(handler.OrderFeed))
	adminOrder.Patch("/:orderId/complete", validate.GetById("orderId"), handler.CompleteOrder)
	adminOrder.Patch("/:orderId/cancel", validate.GetById("orderId"), handler.CancelOrder)
	adminOrder.Delete("/", validate.Delete(), handler.DeleteOrders)

	cart := v1.Group("/cart", protected)
	cart.Get("/", handler.GetCart)
	cart.Post("/", validate.AddToCart(), handler.AddToCart)
	cart.Patch("/:cartId", validate.GetById("cartId"), validate.Body[model.UpdateCartInput](), handler.UpdateCart)
	cart.Delete("/:cartId", validate.GetById("cartId"), handler.RemoveFromCart)

	product := v1.Group("/products")
	product.Get("/", optional, handler.GetProducts)
	product.Get("/:productId", optional, validate.GetById("productId"), handler.GetProduct)
	product.Post("/", protected, admin, validate.Body[model.CreateProductInput](), handler.CreateProduct)
	product.Put("/:productId", protected, admin, validate.GetById("productId"), validate.Body[model.UpdateProductInput](), handler.UpdateProduct)
	product.Delete("/", protected, admin, validate.Delete(), handler.DeleteProducts)
	product.Post("/:productId/images", protected, admin, validate.GetById("productId"), validate.Body[model.ProductImageInput](), handler.AddProductImage)
	product.Delete("/:productId/images/:imageId", protected, admin, validate.GetById("productId"), handler.DeleteProductImage)
	product.Get("/:productId/reviews", validate.GetById("productId"), handler.GetProductReviews)
	product.Post("/:productId/reviews", protected, validate.GetById("productId"), validate.Body[model.CreateReviewInput](), handler.CreateProductReview)

	pkg := v1.Group("/packages")
	pkg.Get("/", optional, handler.GetPackages)
	pkg.Get("/:packageId", optional, validate.GetById("packageId"), handler.GetPackage)
	pkg.Post("/", protected, admin, validate.Body[model.CreatePackageInput](), handler.CreatePackage)
	pkg.Put("/:packageId", protected, admin, validate.GetById("packageId"), validate.Body[model.UpdatePackageInput](), handler.UpdatePackage)
	pkg.Delete("/", protected, admin, validate.Delete(), handler.DeletePackages)
	pkg.Get("/:packageId/reviews", validate.GetById("packageId"), handler.GetPackageReviews)
	pkg.Post("/:packageId/reviews", protected, validate.GetById("packageId"), validate.Body[model.CreateReviewInput](), handler.CreatePackageReview)

	category := v1.Group("/categories")
	category.Get("/", handler.GetCategories)
	category.Post("/", protected, admin, validate.Body[model.CreateCategoryInput](), handler.CreateCategory)
	category.Put("/:categoryId", protected, admin, validate.GetById("categoryId"), validate.Body[model.CreateCategoryInput](), handler.UpdateCategory)
	category.Delete("/", protected, admin, validate.Delete(), handler.DeleteCategories)

	comment := v1.Group("/comments")
	comment.Get("/", handler.GetComments)
	comment.Post("/", protected, validate.Body[model.CreateCommentInput](), handler.CreateComment)
	comment.Post("/:commentId/replies", protected, validate.GetById("commentId"), validate.Body[model.CreateCommentInput](), handler.CreateReply)
	comment.Delete("/", protected, admin, validate.Delete(), handler.DeleteComments)

	content := v1.Group("/content")
	content.Get("/fishing", handler.GetFishingCms)
	content.Put("/fishing", protected, admin, validate.Body[model.FishingCmsInput](), handler.UpdateFishingCms)
	content.Get("/about", handler.GetAboutPage)
	content.Put("/about", protected, admin, validate.Body[model.AboutPageInput](), handler.UpdateAboutPage)

	registerResource(v1, "/milestones", "milestoneId", handler.Milestones)
	registerResource(v1, "/team-members", "memberId", handler.TeamMembers)
	registerResource(v1, "/gallery", "galleryId", handler.Galleries)
	registerResource(v1, "/durations", "durationId", handler.Durations)
	registerResource(v1, "/tables", "tableId", handler.Tables)
}

// registerResource mounts public reads and admin writes for a list resource.
func registerResource[T any, I any](v1 fiber.Router, path, key string, r handler.Resource[T, I]) {
	protected := middleware.Protected()
	admin := middleware.AdminOnly()

	group := v1.Group(path)
	group.Get("/", r.List)
	group.Get("/:"+key, validate.GetById(key), r.Get)
	group.Post("/", protected, admin, validate.Body[I](), r.Create)
	group.Put("/:"+key, protected, admin, validate.GetById(key), validate.Body[I](), r.Update)
	group.Delete("/", protected, admin, validate.Delete(), r.Delete)
}
