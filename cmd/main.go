/**
 * @description
 * This is the main entry point for the mobile-money agent ledger service. It
 * is responsible for initializing all components: configuration, the
 * in-memory ledger store, the SMS notification sink, the core application
 * service, and the HTTP server. It wires everything together and starts the
 * service with graceful shutdown.
 *
 * @dependencies
 * - log, net/http: Standard Go libraries for logging and HTTP server functionality.
 * - github.com/joho/godotenv: For loading .env files during local development.
 * - github.com/shopspring/decimal: Opening balance arithmetic.
 * - internal/api, internal/app, internal/config, internal/notify,
 *   internal/store: Internal packages for the service.
 * - pkg/rabbitmq: Optional AMQP producer for SMS events.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/Billal143-hu/mtn-momo-api/internal/api"
	"github.com/Billal143-hu/mtn-momo-api/internal/app"
	"github.com/Billal143-hu/mtn-momo-api/internal/config"
	"github.com/Billal143-hu/mtn-momo-api/internal/notify"
	"github.com/Billal143-hu/mtn-momo-api/internal/store"
	"github.com/Billal143-hu/mtn-momo-api/pkg/rabbitmq"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		log.Println("level=info component=bootstrap msg=\"no .env file found, using environment variables\"")
	}

	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}

	log.Printf("level=info component=bootstrap msg=\"starting agent ledger service\" agent_id=%s port=%s", cfg.AgentID, cfg.ServerPort)

	// The ledger lives in process memory only; all history is lost on exit.
	ledger := store.NewMemoryStore(cfg.AgentID, decimal.NewFromFloat(cfg.OpeningBalance))

	// Wire the SMS notification sink. When RabbitMQ is configured, SMS
	// events publish to a topic exchange; otherwise delivery is simulated on
	// the console. A missing broker must never prevent the ledger from booting.
	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.RabbitMQURL != "" {
		producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL, cfg.SMSEventExchange)
		if err != nil {
			log.Printf("level=warn component=bootstrap msg=\"rabbitmq producer unavailable; falling back to log sink\" err=%v", err)
		} else {
			defer producer.Close()
			notifier = notify.NewEventNotifier(producer, cfg.SMSEventRoutingKey)
			log.Println("level=info component=bootstrap msg=\"rabbitmq producer connected\"")
		}
	}

	// Initialize the core application service with its dependencies.
	ledgerService := app.NewService(
		ledger,
		notifier,
		cfg.SMSSenderLabel,
		cfg.TransactionIDPrefix,
		cfg.Currency,
		cfg.RecentTransactionLimit,
	)

	// Initialize the API handlers and router.
	handlers := api.NewLedgerHandlers(ledgerService)
	router := api.Routes(handlers)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	// Graceful shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
