package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/orders"

type createdOrder struct {
	OrderID     string  `json:"orderId"`
	FinalAmount float64 `json:"finalAmount"`
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func orderBody() []byte {
	body := map[string]any{
		"userId":          fmt.Sprintf("cust%03d", rand.Intn(20)+1),
		"branch":          "Main Branch",
		"paymentMethod":   "Online Payment",
		"deliveryAddress": "123 Test Street, Colombo",
		"items": []map[string]any{
			{"productId": "prod_001", "productName": "Sample Book 1", "quantity": rand.Intn(3) + 1, "price": 1500},
			{"productId": "prod_002", "productName": "Sample Book 2", "quantity": "1", "price": "2000"},
		},
	}
	data, _ := json.Marshal(body)
	return data
}

func doRequest() {
	resp, err := http.Post(baseURL, "application/json", bytes.NewReader(orderBody()))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()

	var created createdOrder
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil || resp.StatusCode != http.StatusCreated {
		fmt.Println("POST", baseURL, "->", resp.Status)
		return
	}
	fmt.Println("POST", baseURL, "->", resp.Status, created.OrderID, created.FinalAmount)

	url := baseURL + "/" + created.OrderID
	if rand.Intn(5) == 0 {
		url = baseURL + "/ord_missing"
	}

	get, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", get.Status)
	get.Body.Close()
}
