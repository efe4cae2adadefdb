// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/spf13/viper"

	"github.com/remitix/relayer/api"
	"github.com/remitix/relayer/auth"
	"github.com/remitix/relayer/cache"
	"github.com/remitix/relayer/chains/evm"
	"github.com/remitix/relayer/chains/evm/calls/contracts/portfolio"
	"github.com/remitix/relayer/chains/evm/calls/contracts/stablecoin"
	"github.com/remitix/relayer/chains/evm/calls/contracts/vault"
	"github.com/remitix/relayer/chains/evm/calls/contracts/yield"
	"github.com/remitix/relayer/chains/evm/evmclient"
	"github.com/remitix/relayer/chains/evm/executor"
	"github.com/remitix/relayer/config"
	"github.com/remitix/relayer/flags"
	"github.com/remitix/relayer/health"
	"github.com/remitix/relayer/jobs"
	"github.com/remitix/relayer/lvldb"
	"github.com/remitix/relayer/metrics"
	"github.com/remitix/relayer/quote"
	"github.com/remitix/relayer/relay"
	"github.com/remitix/relayer/store"
	"github.com/remitix/relayer/transfer"
)

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)

	configuration := &config.Config{}
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	configureLogger(configuration.RelayerConfig.LogLevel, configuration.RelayerConfig.LogFile)

	log.Info().Msg("Successfully loaded configuration")

	blockstorePath := viper.GetString(flags.BlockstoreFlagName)
	if viper.GetBool(flags.FreshStartFlagName) {
		panicOnError(os.RemoveAll(blockstorePath))
		log.Info().Msgf("Discarded persisted state at %s", blockstorePath)
	}

	// on rolling deploys the old instance still holds the leveldb lock
	// for a short while, so retry until it lets go
	var db *lvldb.LVLDB
	for {
		db, err = lvldb.NewLvlDB(blockstorePath)
		if err != nil {
			log.Error().Err(err).Msg("Unable to connect to blockstore file, retry in 10 seconds")
			time.Sleep(10 * time.Second)
		} else {
			log.Info().Msg("Successfully connected to blockstore file")
			break
		}
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())

	transferStore := store.NewTransferStore(db)
	nonceStore := store.NewNonceStore(db)

	var quoteCache cache.Cache
	redisConfig := configuration.RelayerConfig.RedisConfig
	if redisConfig.Address != "" {
		quoteCache = cache.NewRedisCache(redisConfig.Address, redisConfig.Password, redisConfig.DB)
		log.Info().Str("address", redisConfig.Address).Msg("Using redis quote cache")
	} else {
		quoteCache = cache.NewMemoryCache()
		log.Info().Msg("Using in-memory quote cache")
	}
	quoteEngine := quote.NewEngine(quoteCache)

	evmConfig, err := evm.NewEVMConfig(configuration.ChainConfig)
	panicOnError(err)

	client, err := evmclient.NewEVMClient(ctx, evmConfig.Endpoint)
	panicOnError(err)

	feePayerKey, err := crypto.HexToECDSA(evmConfig.FeePayerKey)
	panicOnError(err)

	relayExecutor := executor.NewExecutor(client, feePayerKey, big.NewInt(evmConfig.ChainID), evmConfig.BlockConfirmations)
	log.Info().Str("feePayer", relayExecutor.Address().Hex()).Int64("chainID", evmConfig.ChainID).Msg("Registered fee payer")

	stablecoinContract, err := stablecoin.NewStablecoinContract(evmConfig.Stablecoin, client)
	panicOnError(err)
	vaultContract, err := vault.NewVaultContract(evmConfig.Vault, client)
	panicOnError(err)
	yieldContract, err := yield.NewYieldContract(evmConfig.Yield, client)
	panicOnError(err)
	portfolioContract, err := portfolio.NewPortfolioContract(evmConfig.Portfolio, client)
	panicOnError(err)

	verifier := auth.NewVerifier()
	relayService := relay.NewService(verifier, nonceStore, relayExecutor)

	orchestrator := transfer.NewOrchestrator(
		quoteEngine,
		verifier,
		transferStore,
		nonceStore,
		stablecoinContract,
		relayExecutor,
		auth.Domain{ChainID: evmConfig.ChainID, VerifyingContract: evmConfig.Stablecoin},
	)

	meter, err := metrics.DefaultMeter(ctx, configuration.RelayerConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	telemetry, err := metrics.NewTelemetry(meter, configuration.RelayerConfig.Env, configuration.RelayerConfig.Id)
	panicOnError(err)
	orchestrator.WithMetrics(telemetry)

	go health.StartHealthEndpoint(configuration.RelayerConfig.HealthPort)

	// background loops stop on cancel; wait for them before closing the db
	var background conc.WaitGroup
	defer background.Wait()
	defer cancel()
	background.Go(func() {
		_ = relayExecutor.Start(ctx)
	})
	background.Go(func() {
		jobs.StartFeePayerBalanceJob(ctx, jobs.DefaultBalanceCheckInterval, relayExecutor, telemetry)
	})

	handler := api.NewHandler(
		quoteEngine,
		orchestrator,
		relayService,
		stablecoinContract,
		vaultContract,
		yieldContract,
		portfolioContract,
		relayExecutor,
		api.Domains{
			ChainID:    evmConfig.ChainID,
			Stablecoin: evmConfig.Stablecoin,
			Vault:      evmConfig.Vault,
			Yield:      evmConfig.Yield,
			Portfolio:  evmConfig.Portfolio,
		},
	)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", configuration.RelayerConfig.ApiPort),
		Handler: handler.Router(),
	}

	errChn := make(chan error)
	go func() {
		log.Info().Msgf("started api endpoint on port %d", configuration.RelayerConfig.ApiPort)
		errChn <- apiServer.ListenAndServe()
	}()

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started relayer: %s", configuration.RelayerConfig.Id)

	select {
	case err := <-errChn:
		log.Error().Err(err).Msg("failed to listen and serve")
		return err
	case sig := <-sysErr:
		log.Info().Msgf("terminating, got [%v] signal", sig)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = apiServer.Shutdown(shutdownCtx)
		return nil
	}
}

func configureLogger(level zerolog.Level, logFile string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(level)

	var w io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Error().Err(err).Msgf("failed to open log file %s, logging to stdout only", logFile)
		} else {
			w = io.MultiWriter(os.Stdout, file)
		}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
