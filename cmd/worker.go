package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ankaahq/ankaa-access/internal/core/events"
	"github.com/ankaahq/ankaa-access/pkg/logger"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start worker processes",
	Long:  `Start and manage background workers, like the audit trail consumer.`,
}

// Audit worker command
var auditWorkerCmd = &cobra.Command{
	Use:   "audit",
	Short: "Start the audit trail worker",
	Long:  `Consume service-order and task events and write them to the audit log`,
	Run: func(cmd *cobra.Command, args []string) {
		startAuditWorker()
	},
}

func startAuditWorker() {
	_, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lg := logger.LoggerWrapper()

	eventBus := events.NewEventBus(lg)

	auditLog := func(ctx context.Context, event events.Event) error {
		lg.Info("audit",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	eventBus.Subscribe(events.EventTypeServiceOrderStatusChanged, auditLog)
	eventBus.Subscribe(events.EventTypeServiceOrderCancelled, auditLog)
	eventBus.Subscribe(events.EventTypeTaskClaimed, auditLog)

	lg.Info("audit worker started. Waiting for events...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	lg.Info("received signal, shutting down audit worker", "signal", sig)
	lg.Info("audit worker shutdown complete")
}

func init() {
	workerCmd.AddCommand(auditWorkerCmd)

	rootCmd.AddCommand(workerCmd)
}
