package main

import (
	"fmt"
	"log"

	"cafeteria-orders/pkg/cafeteria"
)

func main() {
	logger := cafeteria.NewFmtLogger()

	order, err := cafeteria.NewOrder("Maria Silva", cafeteria.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create order: %v", err)
	}

	metrics := cafeteria.NewMetricsCollector(logger)
	order.AddObserver(cafeteria.NewCustomerNotifier("Maria Silva", logger))
	order.AddObserver(cafeteria.NewStatusBoard(logger))
	order.AddObserver(metrics)

	menu := cafeteria.NewRegistry()

	espresso, err := menu.Create("espresso")
	checkErr(err)

	latte, err := menu.Create("latte")
	checkErr(err)
	latte = cafeteria.Leite(latte)
	latte = cafeteria.Chocolate(latte)

	cappuccino, err := menu.Create("cappuccino")
	checkErr(err)
	cappuccino = cafeteria.Chantilly(cappuccino)

	order.AddItem(espresso)
	order.AddItem(latte)
	order.AddItem(cappuccino)

	fmt.Println(order.Summary())

	order.SetPaymentStrategy(cafeteria.NewPixPayment("cafeteria@pix.com"))
	receipt, err := order.ProcessPayment()
	if err != nil {
		log.Fatalf("Payment failed: %v", err)
	}
	if !receipt.Approved {
		log.Fatalf("Payment declined: %s", receipt.Message)
	}
	fmt.Println(receipt.Message)
	fmt.Println()

	order.SetStatus(cafeteria.StatusPreparing)
	order.SetStatus(cafeteria.StatusReady)
	order.SetStatus(cafeteria.StatusDelivered)

	fmt.Printf("\ndeliveries recorded: %d\n", metrics.Deliveries())
}

func checkErr(err error) {
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}
