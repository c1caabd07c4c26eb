//go:build ignore
// +build ignore

// Manual smoke test against a running instance:
//
//	go run scripts/smoke.go -addr http://localhost:8080
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "API base URL")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	get(client, *addr+"/api/v1/health")
	get(client, *addr+"/api/v1/resources/lodging?min_capacity=4")
	get(client, *addr+"/api/v1/resources/facility/types")
	get(client, *addr+"/api/v1/nearby?lat=29.5577&lon=34.9519&radius=1000&type=lodging")

	body, err := json.Marshal(map[string]interface{}{
		"evacuate_areas": []int{101, 102},
		"resource_areas": []int{205},
	})
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	resp, err := client.Post(*addr+"/api/v1/evacuation/analyze", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("POST /evacuation/analyze failed: %v", err)
	}
	dump("POST /api/v1/evacuation/analyze", resp)
}

func get(client *http.Client, url string) {
	resp, err := client.Get(url)
	if err != nil {
		log.Fatalf("GET %s failed: %v", url, err)
	}
	dump("GET "+url, resp)
}

func dump(label string, resp *http.Response) {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if err != nil {
		log.Fatalf("%s: read body: %v", label, err)
	}

	fmt.Printf("%s -> %d\n%s\n\n", label, resp.StatusCode, body)
}
