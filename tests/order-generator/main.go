package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Item struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    any    `json:"quantity"`
	Price       any    `json:"price"`
}

type OrderRequest struct {
	UserID          string  `json:"userId"`
	UserEmail       string  `json:"userEmail"`
	Items           []Item  `json:"items"`
	Branch          *string `json:"branch"`
	PaymentMethod   string  `json:"paymentMethod"`
	DeliveryAddress string  `json:"deliveryAddress"`
	TaxAmount       float64 `json:"taxAmount,omitempty"`
	DeliveryCharges float64 `json:"deliveryCharges,omitempty"`
}

var (
	branches = []string{"Main Branch", "Kandy Branch", "Galle Branch"}
	payments = []string{"Online Payment", "Cash on Delivery", "Card"}
	books    = []string{"Madol Doova", "Gamperaliya", "Viragaya", "Kaliyugaya", "Yuganthaya"}
)

func randomItem() Item {
	n := rand.Intn(len(books))
	item := Item{
		ProductID:   fmt.Sprintf("prod_%03d", n+1),
		ProductName: books[n],
		Quantity:    rand.Intn(3) + 1,
		Price:       float64(rand.Intn(40)+10) * 50,
	}

	// иногда шлём строки и мусор, как это делает фронтенд
	switch rand.Intn(10) {
	case 0:
		item.Quantity = fmt.Sprint(item.Quantity)
	case 1:
		item.Price = fmt.Sprintf("%.2f", item.Price)
	case 2:
		item.Quantity = "abc"
	}
	return item
}

func generateRandomOrder() OrderRequest {
	branch := branches[rand.Intn(len(branches))]
	order := OrderRequest{
		UserID:          fmt.Sprintf("cust%03d", rand.Intn(20)+1),
		UserEmail:       fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		Branch:          &branch,
		PaymentMethod:   payments[rand.Intn(len(payments))],
		DeliveryAddress: fmt.Sprintf("%d Galle Road, Colombo", rand.Intn(300)+1),
		DeliveryCharges: 175,
	}
	for i, n := 0, rand.Intn(4)+1; i < n; i++ {
		order.Items = append(order.Items, randomItem())
	}

	// без филиала запрос должен уйти в DLQ
	if rand.Intn(20) == 0 {
		order.Branch = nil
	}
	return order
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "order-requests",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			key := uuid.NewString()
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data}); err != nil {
				log.Println("failed to write order request:", err)
				continue
			}
			log.Println("order request generated", key, order.UserID)
		case <-ctx.Done():
			return
		}
	}
}
