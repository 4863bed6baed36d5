package main

import (
	"log/slog"
	"os"

	"ordermodel/cmd"
	"ordermodel/internal/core/domain/model/order"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := cmd.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	if err = run(cfg, logger); err != nil {
		logger.Error("demo order failed", "error", err)
		os.Exit(1)
	}
}

// run walks one order through its mutating operations and logs the result.
func run(cfg cmd.Config, logger *slog.Logger) error {
	o := order.NewOrder(cfg.CustomerID)
	logger = logger.With("order_id", o.ID().String())

	widget := order.NewOrderItem("A1", "Widget", decimal.RequireFromString("5.00"))
	widget.Quantity = 2
	if err := o.AddItem(widget); err != nil {
		return err
	}

	repriced := order.NewOrderItem("A1", "Widget", decimal.RequireFromString("4.50"))
	repriced.Quantity = 3
	if err := o.AddItem(repriced); err != nil {
		return err
	}
	logger.Debug("items added", "items", o.ItemCount(), "subtotal", o.Subtotal().StringFixed(2))

	if err := o.ApplyDiscount(decimal.RequireFromString("5.00")); err != nil {
		return err
	}

	valid, violations := o.Validate()
	for _, v := range violations {
		logger.Warn("order constraint violated", "field", v.Field, "message", v.Message)
	}

	logger.Info(o.String(),
		"status", o.Status().String(),
		"payment_status", o.PaymentStatus().String(),
		"subtotal", o.Subtotal().StringFixed(2),
		"total", o.Total().StringFixed(2),
		"valid", valid,
	)
	return nil
}
