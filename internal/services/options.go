package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/checkout"
	"github.com/CimeM/shellLeatherStore/internal/app/store/pricing"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/get_cart"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/get_product"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/list_products"
	"github.com/CimeM/shellLeatherStore/internal/app/store/repo"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/add_item"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/clear_cart"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/place_order"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/remove_item"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/update_quantity"
	"github.com/CimeM/shellLeatherStore/internal/config"
	"github.com/CimeM/shellLeatherStore/internal/dispatch"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/internal/pkg/committer"
	transport "github.com/CimeM/shellLeatherStore/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Engine        *gin.Engine

	dispatcher *dispatch.AMQPDispatcher
}

// NewServiceOptions creates and wires up all application dependencies.
// The catalog is read from Spanner exactly once at startup; everything
// served afterwards comes from the in-memory copy.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Load the catalog
	cat, err := catalog.NewLoader(spannerClient).Load(ctx)
	if err != nil {
		spannerClient.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.Int("products", len(cat.Products())),
		zap.Int("discounts", len(cat.Discounts())),
	)

	// 4. Create repositories and pure services
	cartRepo := repo.NewCartRepo(spannerClient, clk)
	outboxRepo := repo.NewOutboxRepo(spannerClient, clk)
	calculator := pricing.NewCalculator(cat)
	readModel := repo.NewCatalogReadModel(cat, calculator, clk)
	composer := checkout.NewComposer(cat, calculator)

	// 5. Create the order dispatcher
	opts := &ServiceOptions{SpannerClient: spannerClient}
	var dispatcher dispatch.Dispatcher
	if cfg.AMQP.URL != "" {
		amqpDispatcher, err := dispatch.NewAMQPDispatcher(cfg.AMQP.URL, cfg.AMQP.Queue, logger)
		if err != nil {
			spannerClient.Close()
			return nil, fmt.Errorf("failed to create AMQP dispatcher: %w", err)
		}
		opts.dispatcher = amqpDispatcher
		dispatcher = amqpDispatcher
	} else {
		dispatcher = dispatch.NewLogDispatcher(logger)
	}

	// 6. Create command use cases (write operations)
	addItemUseCase := add_item.NewInteractor(cat, cartRepo, outboxRepo, comm, clk)
	updateQuantityUseCase := update_quantity.NewInteractor(cartRepo, outboxRepo, comm, clk)
	removeItemUseCase := remove_item.NewInteractor(cartRepo, outboxRepo, comm, clk)
	clearCartUseCase := clear_cart.NewInteractor(cartRepo, outboxRepo, comm, clk)
	placeOrderUseCase := place_order.NewInteractor(
		composer, cartRepo, outboxRepo, comm, dispatcher, clk,
		cfg.Checkout.MailRecipient, logger,
	)

	// 7. Create query use cases (read operations)
	getCartQuery := get_cart.NewQuery(cartRepo, clk)
	getProductQuery := get_product.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(readModel)

	// 8. Create HTTP handlers and router
	catalogHandler := transport.NewCatalogHandler(listProductsQuery, getProductQuery)
	cartHandler := transport.NewCartHandler(
		getCartQuery,
		addItemUseCase,
		updateQuantityUseCase,
		removeItemUseCase,
		clearCartUseCase,
		cat,
		calculator,
		clk,
	)
	checkoutHandler := transport.NewCheckoutHandler(placeOrderUseCase)

	opts.Engine = transport.NewRouter(logger, catalogHandler, cartHandler, checkoutHandler)
	return opts, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.dispatcher != nil {
		s.dispatcher.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
