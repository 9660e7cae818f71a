package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// chartcheck is a smoke test against a running vedic-chart-api server:
// it calculates a sample chart and asks one interpretation question.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: no .env file loaded: %v", err)
	}

	serverURL := os.Getenv("SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}
	apiKey := os.Getenv("API_KEY")

	client := &http.Client{Timeout: 90 * time.Second}

	birthData := map[string]interface{}{
		"fullName":  "Smoke Test",
		"birthDate": "1985-11-16",
		"birthTime": "07:50",
		"timezone":  -3,
		"latitude":  -23.567102,
		"longitude": -46.626801,
	}

	log.Println("--- POST /api/v1/calculate ---")
	chartBody := post(client, serverURL+"/api/v1/calculate", apiKey, birthData)

	var chart struct {
		Ascendant struct {
			Degree string `json:"degree"`
			Sign   string `json:"sign"`
		} `json:"ascendant"`
		Nakshatra string `json:"nakshatra"`
	}
	if err := json.Unmarshal(chartBody, &chart); err != nil {
		log.Fatalf("FATAL: chart response did not parse: %v", err)
	}
	fmt.Printf("Ascendant: %s %s\n", chart.Ascendant.Sign, chart.Ascendant.Degree)
	fmt.Printf("Nakshatra: %s\n", chart.Nakshatra)

	log.Println("--- POST /api/v1/interpret ---")
	interpretBody := post(client, serverURL+"/api/v1/interpret", apiKey, map[string]interface{}{
		"question":  "What stands out in this chart?",
		"chartData": json.RawMessage(chartBody),
		"initial":   true,
	})

	var interpretation struct {
		Interpretation string `json:"interpretation"`
	}
	if err := json.Unmarshal(interpretBody, &interpretation); err != nil {
		log.Fatalf("FATAL: interpret response did not parse: %v", err)
	}
	fmt.Printf("Interpretation: %s\n", interpretation.Interpretation)

	log.Println("smoke test passed")
}

func post(client *http.Client, url, apiKey string, payload interface{}) []byte {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("FATAL: failed to encode payload: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		log.Fatalf("FATAL: failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("FATAL: request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("FATAL: failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("FATAL: %s returned status %d: %s", url, resp.StatusCode, string(respBody))
	}
	return respBody
}
