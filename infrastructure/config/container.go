package config

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tee-settlement/application/usecases"
	"tee-settlement/domain/interfaces"
	"tee-settlement/infrastructure/blockchain"
	"tee-settlement/infrastructure/compute"
	"tee-settlement/infrastructure/httpapi"
	"tee-settlement/infrastructure/logger"
	"tee-settlement/infrastructure/metrics"
	"tee-settlement/infrastructure/repository"
	"tee-settlement/utils"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// Infrastructure
	Logger           interfaces.Logger
	DB               *gorm.DB
	EthClient        *ethclient.Client
	WSClient         *ethclient.Client
	BlockchainClient interfaces.BlockchainClient
	Metrics          *metrics.Metrics

	// Repositories
	JobRepository      interfaces.JobRepository
	TreasuryRepository interfaces.TreasuryRepository

	// Services
	Marketplace        interfaces.Marketplace
	OrderAssembler     interfaces.OrderAssembler
	TaskObserver       interfaces.TaskObserver
	ResultFetcher      interfaces.ResultFetcher
	SettlementExecutor interfaces.SettlementExecutor
	TreasuryReader     interfaces.TreasuryReader
	FaucetSender       *blockchain.FaucetSender

	// Use Cases
	RunSettlementUseCase     interfaces.RunSettlementUseCase
	FetchResultUseCase       interfaces.FetchResultUseCase
	ExecuteSettlementUseCase interfaces.ExecuteSettlementUseCase
	TreasuryBalanceUseCase   interfaces.TreasuryBalanceUseCase
}

// NewContainer creates a new dependency injection container
func NewContainer(config *Config) (*Container, error) {
	container := &Container{
		Config: config,
	}

	// Initialize logger
	container.Logger = logger.NewLogrusLogger(config.LogLevel)

	// Initialize metrics
	container.Metrics = metrics.NewMetrics()

	// Initialize blockchain clients
	if err := container.initBlockchainClients(); err != nil {
		return nil, fmt.Errorf("failed to initialize blockchain client: %w", err)
	}

	// Initialize database (optional)
	if config.Database.Host != "" {
		if err := container.initDatabase(); err != nil {
			container.Logger.Warn("Failed to initialize database", "error", err)
			// Database is optional, so we continue
		}
	}

	// Initialize services
	if err := container.initServices(); err != nil {
		return nil, err
	}

	// Initialize use cases
	container.initUseCases()

	return container, nil
}

// initBlockchainClients initializes the RPC and websocket clients.
func (c *Container) initBlockchainClients() error {
	ethClient, err := ethclient.Dial(c.Config.RPCAddr)
	if err != nil {
		return fmt.Errorf("failed to dial RPC: %w", err)
	}
	c.EthClient = ethClient

	blockchainClient, err := blockchain.NewEthereumClient(c.Config.RPCAddr, c.Config.ChainID)
	if err != nil {
		return fmt.Errorf("failed to create blockchain client: %w", err)
	}
	c.BlockchainClient = blockchainClient

	// Log subscriptions need a websocket endpoint. Without one the task
	// observer subscribes over the RPC endpoint and fails fast at runtime.
	wsAddr := c.Config.WSAddr
	if wsAddr == "" {
		c.Logger.Warn("ws_addr is not set, task observation will use the RPC endpoint")
		wsAddr = c.Config.RPCAddr
	}
	wsClient, err := ethclient.Dial(wsAddr)
	if err != nil {
		return fmt.Errorf("failed to dial websocket endpoint: %w", err)
	}
	c.WSClient = wsClient

	return nil
}

// initDatabase initializes the database connection
func (c *Container) initDatabase() error {
	dsn := c.Config.Database.GetDatabaseDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)

	c.DB = db

	// Initialize repositories
	c.JobRepository = repository.NewJobRepository(db)
	c.TreasuryRepository = repository.NewTreasuryRepository(db)

	return nil
}

// initServices initializes the compute-network and settlement services.
// Each side is wired only when its configuration is present; the HTTP
// layer reports not-configured for the rest.
func (c *Container) initServices() error {
	if c.Config.Compute.MarketplaceURL != "" {
		c.Marketplace = compute.NewMarketplaceClient(c.Config.Compute.MarketplaceURL, c.Logger)
	}

	if c.Config.PipelineConfigured() {
		assembler, err := compute.NewOrderAssembler(
			c.BlockchainClient,
			c.Marketplace,
			c.Config.Compute.AppAddress,
			c.Config.Compute.RequesterKey,
			c.Logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create order assembler: %w", err)
		}
		c.OrderAssembler = assembler

		observer, err := compute.NewTaskObserver(
			c.WSClient,
			c.Config.Compute.HubAddress,
			c.Config.Compute.ObservationLimit,
			c.Logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create task observer: %w", err)
		}
		c.TaskObserver = observer
	}

	if c.Config.Compute.HubAddress != "" && c.Config.Compute.ResultsGatewayURL != "" {
		fetcher, err := compute.NewResultFetcher(
			c.EthClient,
			c.Config.Compute.HubAddress,
			c.Config.Compute.ResultsGatewayURL,
			c.Logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create result fetcher: %w", err)
		}
		c.ResultFetcher = fetcher
	}

	if c.Config.ExecutorConfigured() {
		executor, err := blockchain.NewSettlementExecutor(
			c.EthClient,
			c.Config.ChainID,
			c.Config.Settlement.ContractAddress,
			c.Config.Settlement.ExecutorKey,
			c.Config.ExplorerURL,
			c.Config.Settlement.TokenDecimals,
			c.Logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create settlement executor: %w", err)
		}
		c.SettlementExecutor = executor
	}

	if c.Config.TreasuryConfigured() {
		reader, err := blockchain.NewTreasuryReader(
			c.EthClient,
			c.Config.ChainID,
			c.Config.Settlement.TokenAddress,
		)
		if err != nil {
			return fmt.Errorf("failed to create treasury reader: %w", err)
		}
		c.TreasuryReader = reader
	}

	if c.Config.Settlement.TokenAddress != "" && c.Config.Settlement.ExecutorKey != "" {
		sender, err := blockchain.NewFaucetSender(
			c.EthClient,
			c.Config.ChainID,
			c.Config.Settlement.TokenAddress,
			c.Config.Settlement.ExecutorKey,
			c.Logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create faucet sender: %w", err)
		}
		c.FaucetSender = sender
	}

	return nil
}

// initUseCases initializes use cases
func (c *Container) initUseCases() {
	if c.OrderAssembler != nil && c.TaskObserver != nil && c.ResultFetcher != nil {
		c.RunSettlementUseCase = usecases.NewRunSettlementUseCase(
			c.OrderAssembler,
			c.TaskObserver,
			c.ResultFetcher,
			c.JobRepository,
			c.Logger,
		)
	}

	if c.ResultFetcher != nil {
		c.FetchResultUseCase = usecases.NewFetchResultUseCase(
			c.ResultFetcher,
			c.JobRepository,
			c.Logger,
		)
	}

	if c.TreasuryReader != nil {
		c.TreasuryBalanceUseCase = usecases.NewTreasuryBalanceUseCase(
			c.TreasuryReader,
			c.TreasuryRepository,
			common.HexToAddress(c.Config.Settlement.ContractAddress),
			c.Config.Settlement.TokenDecimals,
			c.Logger,
		)
	}

	c.ExecuteSettlementUseCase = usecases.NewExecuteSettlementUseCase(
		c.SettlementExecutor,
		c.JobRepository,
		c.TreasuryBalanceUseCase,
		c.Logger,
	)
}

// BuildServer assembles the HTTP server over the container's use cases.
func (c *Container) BuildServer() (*httpapi.Server, error) {
	server := &httpapi.Server{
		RunSettlement:     c.RunSettlementUseCase,
		FetchResult:       c.FetchResultUseCase,
		ExecuteSettlement: c.ExecuteSettlementUseCase,
		TreasuryBalance:   c.TreasuryBalanceUseCase,
		Jobs:              c.JobRepository,
		Datasets:          httpapi.NewBlobStore(),
		Metrics:           c.Metrics,
		Logger:            c.Logger,
	}

	if c.FaucetSender != nil {
		amount, err := utils.ParseFixedPoint(c.Config.Faucet.Amount, c.Config.Settlement.TokenDecimals)
		if err != nil {
			return nil, fmt.Errorf("invalid faucet amount: %w", err)
		}
		server.Faucet = httpapi.NewFaucet(c.FaucetSender, amount, c.Config.Faucet.Cooldown, c.Logger)
	}

	server.Health = &httpapi.HealthChecker{
		Marketplace: c.Marketplace,
		Chain:       c.BlockchainClient,
		Logger:      c.Logger,
	}
	if c.DB != nil {
		db := c.DB
		server.Health.Backend = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}

	return server, nil
}

// Close closes all resources
func (c *Container) Close() error {
	// Close blockchain clients
	if c.BlockchainClient != nil {
		if err := c.BlockchainClient.Close(); err != nil {
			c.Logger.Error("Failed to close blockchain client", "error", err)
		}
	}

	if c.EthClient != nil {
		c.EthClient.Close()
	}

	if c.WSClient != nil {
		c.WSClient.Close()
	}

	// Close database
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				c.Logger.Error("Failed to close database", "error", err)
			}
		}
	}

	return nil
}
