package main

import (
	"net/http"
	"os"
	"time"
)

func main() {
	addr := os.Getenv("BOXING_HEALTH_URL")
	if addr == "" {
		addr = "http://127.0.0.1:8080/api/health"
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(addr)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
